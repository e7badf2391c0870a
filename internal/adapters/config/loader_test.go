package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relink/internal/adapters/config"
	"go.trai.ch/relink/internal/adapters/fs"
	"go.trai.ch/relink/internal/core/domain"
	"go.trai.ch/relink/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, files fstest.MapFS) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger, fs.NewMapFSAdapter("/project", files))
}

func TestLoad_Success(t *testing.T) {
	content := `
version: "1"
dataDir: data
frameRate: 30
pollInterval: 500ms
log:
  level: debug
  json: true
  file: logs/relink.log
metrics:
  addr: ":9464"
programs:
  - shader: shaders/blur
  - name: particles
    vertex: shaders/particles.vert
    fragment: shaders/particles.frag
    geometry: shaders/particles.geom
    pollInterval: 1s
    geometryInput: points
    geometryOutput: triangle_strip
    geometryOutputCount: 4
`
	loader := newLoader(t, fstest.MapFS{
		"relink.yaml":            &fstest.MapFile{Data: []byte(content)},
		"data/shaders/blur.vert": &fstest.MapFile{Data: []byte("v")},
		"data/shaders/blur.frag": &fstest.MapFile{Data: []byte("f")},
	})

	cfg, err := loader.Load("/project/relink.yaml")
	require.NoError(t, err)

	assert.Equal(t, "/project/data", cfg.DataDir)
	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, domain.LogLevelDebug, cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "/project/logs/relink.log", cfg.Log.File)
	assert.Equal(t, ":9464", cfg.Metrics.Addr)

	require.Len(t, cfg.Programs, 2)

	blur := cfg.Programs[0]
	assert.Equal(t, "blur", blur.Name)
	assert.Equal(t, "/project/data/shaders/blur.vert", blur.Files.Vertex)
	assert.Equal(t, "/project/data/shaders/blur.frag", blur.Files.Fragment)
	assert.Empty(t, blur.Files.Geometry, "missing .geom must drop the geometry stage")
	assert.Equal(t, 500*time.Millisecond, blur.PollInterval)
	assert.Equal(t, domain.DefaultGeometryConfig(), blur.Geometry)

	particles := cfg.Programs[1]
	assert.Equal(t, "particles", particles.Name)
	assert.Equal(t, "/project/data/shaders/particles.geom", particles.Files.Geometry)
	assert.Equal(t, time.Second, particles.PollInterval)
	assert.Equal(t, domain.GeometryConfig{
		InputType:   domain.PrimitivePoints,
		OutputType:  domain.PrimitiveTriangleStrip,
		OutputCount: 4,
	}, particles.Geometry)
}

func TestLoad_ShaderWithGeometry(t *testing.T) {
	content := `
programs:
  - shader: fx/wave
`
	loader := newLoader(t, fstest.MapFS{
		"relink.yaml":  &fstest.MapFile{Data: []byte(content)},
		"fx/wave.geom": &fstest.MapFile{Data: []byte("g")},
	})

	cfg, err := loader.Load("/project/relink.yaml")
	require.NoError(t, err)

	require.Len(t, cfg.Programs, 1)
	assert.Equal(t, "/project/fx/wave.geom", cfg.Programs[0].Files.Geometry)
	assert.Equal(t, domain.DefaultPollInterval, cfg.Programs[0].PollInterval)
	assert.Equal(t, domain.DefaultFrameRate, cfg.FrameRate)
	assert.Equal(t, "/project", cfg.DataDir)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no programs",
			content: `version: "1"`,
			wantErr: domain.ErrNoPrograms,
		},
		{
			name: "duplicate names",
			content: `
programs:
  - shader: a/blur
  - shader: b/blur
`,
			wantErr: domain.ErrDuplicateProgram,
		},
		{
			name: "shader and explicit paths",
			content: `
programs:
  - shader: blur
    vertex: blur.vert
`,
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name: "missing fragment",
			content: `
programs:
  - name: blur
    vertex: blur.vert
`,
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name: "invalid name",
			content: `
programs:
  - name: "blur shader"
    vertex: blur.vert
    fragment: blur.frag
`,
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name: "unknown primitive",
			content: `
programs:
  - shader: blur
    geometryInput: quads
`,
			wantErr: domain.ErrUnknownPrimitive,
		},
		{
			name: "input-only primitive as output",
			content: `
programs:
  - shader: blur
    geometryOutput: triangles
`,
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name: "negative output count",
			content: `
programs:
  - shader: blur
    geometryOutputCount: -1
`,
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name: "zero poll interval",
			content: `
pollInterval: 0s
programs:
  - shader: blur
`,
			wantErr: domain.ErrInvalidPollInterval,
		},
		{
			name: "negative frame rate",
			content: `
frameRate: -5
programs:
  - shader: blur
`,
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name: "unknown log level",
			content: `
log:
  level: chatty
programs:
  - shader: blur
`,
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newLoader(t, fstest.MapFS{
				"relink.yaml": &fstest.MapFile{Data: []byte(tt.content)},
			})

			_, err := loader.Load("/project/relink.yaml")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{
		"relink.yaml": &fstest.MapFile{Data: []byte("programs: [")},
	})

	_, err := loader.Load("/project/relink.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_BadDuration(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{
		"relink.yaml": &fstest.MapFile{Data: []byte("pollInterval: soon\nprograms:\n  - shader: blur\n")},
	})

	_, err := loader.Load("/project/relink.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid poll interval")
}

func TestDiscover(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{
		"relink.yaml":           &fstest.MapFile{Data: []byte("programs: []")},
		"shaders/nested/a.vert": &fstest.MapFile{Data: []byte("v")},
	})

	path, err := loader.Discover("/project/shaders/nested")
	require.NoError(t, err)
	assert.Equal(t, "/project/relink.yaml", path)
}

func TestDiscover_NotFound(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{})

	_, err := loader.Discover("/project/shaders")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoad_DiscoversFromWorkingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	content := "programs:\n  - shader: blur\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, domain.ConfigFileName), []byte(content), 0o600))

	subDir := filepath.Join(tmpDir, "sub")
	require.NoError(t, os.MkdirAll(subDir, 0o750))
	t.Chdir(subDir)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	loader := config.NewLoader(mockLogger, fs.NewOSFS())
	cfg, err := loader.Load("")
	require.NoError(t, err)

	require.Len(t, cfg.Programs, 1)
	assert.Equal(t, "blur", cfg.Programs[0].Name)
}
