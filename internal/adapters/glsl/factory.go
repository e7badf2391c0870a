package glsl

import "go.trai.ch/relink/internal/core/ports"

// Factory creates one Validator per program.
type Factory struct{}

var _ ports.CompilerFactory = Factory{}

// NewCompiler returns a fresh Validator for program.
func (Factory) NewCompiler(program string) ports.ShaderCompiler {
	return NewValidator(program)
}
