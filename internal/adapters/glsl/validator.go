// Package glsl implements a GPU-less shader compiler that validates GLSL
// sources structurally and fingerprints them.
package glsl

import (
	"encoding/binary"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/relink/internal/core/domain"
	"go.trai.ch/relink/internal/core/ports"
	"go.trai.ch/zerr"
)

var mainEntry = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(void)?\s*\)`)

// Validator implements ports.ShaderCompiler for a single program.
type Validator struct {
	program  string
	geometry domain.GeometryConfig
	stages   map[domain.StageKind]uint64
	bound    bool
	linked   uint64
}

var _ ports.ShaderCompiler = (*Validator)(nil)

// NewValidator creates a Validator for the named program with default
// geometry parameters.
func NewValidator(program string) *Validator {
	return &Validator{
		program:  program,
		geometry: domain.DefaultGeometryConfig(),
		stages:   make(map[domain.StageKind]uint64, domain.StageCount),
	}
}

// SetGeometry stores the primitive parameters used by the geometry stage.
func (v *Validator) SetGeometry(cfg domain.GeometryConfig) {
	v.geometry = cfg
}

// CompileStage validates source and records its fingerprint. A failing stage
// leaves any previously compiled version of it in place.
func (v *Validator) CompileStage(kind domain.StageKind, source string) error {
	if err := validate(source); err != nil {
		return zerr.With(zerr.With(err, "stage", kind.String()), "program", v.program)
	}
	v.stages[kind] = xxhash.Sum64String(source)
	v.linked = 0
	return nil
}

// BindDefaults marks the default attribute locations as bound.
func (v *Validator) BindDefaults() {
	v.bound = true
}

// Link combines the compiled stages. Vertex and fragment stages are required;
// a geometry stage additionally needs a positive output vertex count.
func (v *Validator) Link() error {
	for _, kind := range []domain.StageKind{domain.StageVertex, domain.StageFragment} {
		if _, ok := v.stages[kind]; !ok {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrMissingStage, "failed to link program"),
				"stage", kind.String()), "program", v.program)
		}
	}

	_, hasGeometry := v.stages[domain.StageGeometry]
	if hasGeometry && (v.geometry.OutputCount <= 0 || !v.geometry.OutputType.IsOutput()) {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrLinkFailed, "invalid geometry parameters"),
			"output_type", string(v.geometry.OutputType)), "output_count", v.geometry.OutputCount)
	}

	d := xxhash.New()
	var buf [8]byte
	for _, kind := range []domain.StageKind{domain.StageVertex, domain.StageFragment, domain.StageGeometry} {
		sum, ok := v.stages[kind]
		if !ok {
			continue
		}
		binary.LittleEndian.PutUint64(buf[:], sum)
		_, _ = d.Write([]byte{byte(kind)})
		_, _ = d.Write(buf[:])
	}
	if hasGeometry {
		_, _ = d.WriteString(string(v.geometry.InputType))
		_, _ = d.WriteString(string(v.geometry.OutputType))
		binary.LittleEndian.PutUint64(buf[:], uint64(v.geometry.OutputCount))
		_, _ = d.Write(buf[:])
	}
	v.linked = d.Sum64()
	return nil
}

// Unload discards every compiled stage and the linked program.
func (v *Validator) Unload() {
	clear(v.stages)
	v.bound = false
	v.linked = 0
}

// Linked reports whether the program is currently linked.
func (v *Validator) Linked() bool {
	return v.linked != 0
}

// Fingerprint returns the identity of the linked program, or zero.
func (v *Validator) Fingerprint() uint64 {
	return v.linked
}

// StageFingerprint returns the fingerprint of a compiled stage.
func (v *Validator) StageFingerprint(kind domain.StageKind) (uint64, bool) {
	sum, ok := v.stages[kind]
	return sum, ok
}

// Bound reports whether BindDefaults was called since the last Unload.
func (v *Validator) Bound() bool {
	return v.bound
}

// validate checks the directive, entry point and bracket balance of source.
func validate(source string) error {
	code := stripComments(source)
	if strings.TrimSpace(code) == "" {
		return zerr.Wrap(domain.ErrShaderSyntax, "empty source")
	}

	first := firstLine(code)
	if !strings.HasPrefix(first.text, "#version") {
		return zerr.With(zerr.Wrap(domain.ErrShaderSyntax, "missing #version directive"), "line", first.number)
	}

	if !mainEntry.MatchString(code) {
		return zerr.Wrap(domain.ErrShaderSyntax, "missing main entry point")
	}

	return checkBalance(code)
}

type line struct {
	number int
	text   string
}

func firstLine(code string) line {
	for i, l := range strings.Split(code, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			return line{number: i + 1, text: t}
		}
	}
	return line{}
}

var closers = map[rune]rune{')': '(', ']': '[', '}': '{'}

// checkBalance verifies that brackets nest properly outside preprocessor lines.
func checkBalance(code string) error {
	type open struct {
		r    rune
		line int
	}
	var stack []open

	for i, l := range strings.Split(code, "\n") {
		if strings.HasPrefix(strings.TrimSpace(l), "#") {
			continue
		}
		for _, r := range l {
			switch r {
			case '(', '[', '{':
				stack = append(stack, open{r: r, line: i + 1})
			case ')', ']', '}':
				if len(stack) == 0 || stack[len(stack)-1].r != closers[r] {
					return zerr.With(zerr.With(zerr.Wrap(domain.ErrShaderSyntax, "unexpected closing bracket"),
						"bracket", string(r)), "line", i+1)
				}
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrShaderSyntax, "unclosed bracket"),
			"bracket", string(top.r)), "line", top.line)
	}
	return nil
}

// stripComments blanks out // and /* */ comments while keeping line breaks,
// so line numbers in the result match the source.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	inLine, inBlock := false, false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case inLine:
			if c == '\n' {
				inLine = false
				b.WriteByte(c)
			}
		case inBlock:
			if c == '*' && i+1 < len(src) && src[i+1] == '/' {
				inBlock = false
				i++
				b.WriteByte(' ')
			} else if c == '\n' {
				b.WriteByte(c)
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			inLine = true
			i++
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			inBlock = true
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
