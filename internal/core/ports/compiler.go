// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/relink/internal/core/domain"

// ShaderCompiler is the GPU-side compile and link service for a single program.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type ShaderCompiler interface {
	// CompileStage compiles one stage from its source text.
	CompileStage(kind domain.StageKind, source string) error
	// BindDefaults binds default attribute and uniform locations before linking.
	BindDefaults()
	// Link links the compiled stages into a program.
	Link() error
	// Unload releases every compiled stage and the linked program.
	Unload()
	// SetGeometry configures the geometry-stage primitive parameters.
	// It must be applied before a geometry stage is compiled.
	SetGeometry(cfg domain.GeometryConfig)
}

// CompilerFactory creates one ShaderCompiler per program.
type CompilerFactory interface {
	NewCompiler(program string) ShaderCompiler
}
