package glsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relink/internal/adapters/glsl"
	"go.trai.ch/relink/internal/core/domain"
)

const (
	vertexSrc = `#version 330 core
// passthrough
layout(location = 0) in vec3 position;
void main() {
	gl_Position = vec4(position, 1.0);
}
`
	fragmentSrc = `/* bloom */
#version 330 core
out vec4 color;
void main(void) {
	color = vec4(1.0, 0.5, 0.25, 1.0);
}
`
	geometrySrc = `#version 330 core
layout(triangles) in;
layout(triangle_strip, max_vertices = 3) out;
void main() {
	for (int i = 0; i < 3; i++) {
		gl_Position = gl_in[i].gl_Position;
		EmitVertex();
	}
	EndPrimitive();
}
`
)

func TestValidator_CompileStage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{"empty", "  \n// only a comment\n", "empty source"},
		{"no version", "void main() {}\n", "missing #version directive"},
		{"no main", "#version 330\nvoid helper() {}\n", "missing main entry point"},
		{"unclosed brace", "#version 330\nvoid main() {\n", "unclosed bracket"},
		{"stray paren", "#version 330\nvoid main() { f()); }\n", "unexpected closing bracket"},
		{"mismatched", "#version 330\nvoid main() { a[0}; }\n", "unexpected closing bracket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := glsl.NewValidator("bloom")
			err := v.CompileStage(domain.StageVertex, tt.source)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrShaderSyntax)
			assert.Contains(t, err.Error(), tt.wantMsg)

			_, ok := v.StageFingerprint(domain.StageVertex)
			assert.False(t, ok)
		})
	}
}

func TestValidator_CompileStage_IgnoresCommentedBrackets(t *testing.T) {
	v := glsl.NewValidator("bloom")
	src := "#version 330\n// {\n/* ( [ */\nvoid main() {}\n"

	require.NoError(t, v.CompileStage(domain.StageVertex, src))
}

func TestValidator_Link(t *testing.T) {
	v := glsl.NewValidator("bloom")

	require.NoError(t, v.CompileStage(domain.StageVertex, vertexSrc))
	require.NoError(t, v.CompileStage(domain.StageFragment, fragmentSrc))
	v.BindDefaults()
	require.NoError(t, v.Link())

	assert.True(t, v.Linked())
	assert.True(t, v.Bound())
	assert.NotZero(t, v.Fingerprint())
}

func TestValidator_Link_MissingStage(t *testing.T) {
	v := glsl.NewValidator("bloom")
	require.NoError(t, v.CompileStage(domain.StageVertex, vertexSrc))

	err := v.Link()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingStage)
	assert.False(t, v.Linked())
}

func TestValidator_Link_Geometry(t *testing.T) {
	v := glsl.NewValidator("bloom")
	require.NoError(t, v.CompileStage(domain.StageVertex, vertexSrc))
	require.NoError(t, v.CompileStage(domain.StageFragment, fragmentSrc))
	require.NoError(t, v.Link())
	withoutGeometry := v.Fingerprint()

	require.NoError(t, v.CompileStage(domain.StageGeometry, geometrySrc))
	assert.False(t, v.Linked(), "compiling a stage invalidates the linked program")
	require.NoError(t, v.Link())
	assert.NotEqual(t, withoutGeometry, v.Fingerprint())
}

func TestValidator_Link_InvalidGeometry(t *testing.T) {
	v := glsl.NewValidator("bloom")
	v.SetGeometry(domain.GeometryConfig{
		InputType:   domain.PrimitiveTriangles,
		OutputType:  domain.PrimitiveTriangleStrip,
		OutputCount: 0,
	})
	require.NoError(t, v.CompileStage(domain.StageVertex, vertexSrc))
	require.NoError(t, v.CompileStage(domain.StageFragment, fragmentSrc))
	require.NoError(t, v.CompileStage(domain.StageGeometry, geometrySrc))

	err := v.Link()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLinkFailed)
}

func TestValidator_FingerprintTracksGeometryConfig(t *testing.T) {
	build := func(cfg domain.GeometryConfig) uint64 {
		v := glsl.NewValidator("bloom")
		v.SetGeometry(cfg)
		require.NoError(t, v.CompileStage(domain.StageVertex, vertexSrc))
		require.NoError(t, v.CompileStage(domain.StageFragment, fragmentSrc))
		require.NoError(t, v.CompileStage(domain.StageGeometry, geometrySrc))
		require.NoError(t, v.Link())
		return v.Fingerprint()
	}

	a := build(domain.DefaultGeometryConfig())
	b := build(domain.GeometryConfig{
		InputType:   domain.PrimitivePoints,
		OutputType:  domain.PrimitivePoints,
		OutputCount: 1,
	})
	assert.Equal(t, a, build(domain.DefaultGeometryConfig()))
	assert.NotEqual(t, a, b)
}

func TestValidator_Unload(t *testing.T) {
	v := glsl.NewValidator("bloom")
	require.NoError(t, v.CompileStage(domain.StageVertex, vertexSrc))
	require.NoError(t, v.CompileStage(domain.StageFragment, fragmentSrc))
	v.BindDefaults()
	require.NoError(t, v.Link())

	v.Unload()

	assert.False(t, v.Linked())
	assert.False(t, v.Bound())
	_, ok := v.StageFingerprint(domain.StageVertex)
	assert.False(t, ok)
	assert.ErrorIs(t, v.Link(), domain.ErrMissingStage)
}

func TestFactory_NewCompiler(t *testing.T) {
	a := glsl.Factory{}.NewCompiler("a")
	b := glsl.Factory{}.NewCompiler("b")

	require.NoError(t, a.CompileStage(domain.StageVertex, vertexSrc))
	require.NoError(t, a.CompileStage(domain.StageFragment, fragmentSrc))
	require.NoError(t, a.Link())

	assert.ErrorIs(t, b.Link(), domain.ErrMissingStage, "compilers do not share state")
}
