package scheduler_test

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relink/internal/adapters/frameloop"
	fsadapter "go.trai.ch/relink/internal/adapters/fs"
	"go.trai.ch/relink/internal/core/domain"
	"go.trai.ch/relink/internal/core/ports/mocks"
	"go.trai.ch/relink/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func newBuilder(t *testing.T) (*scheduler.Builder, *mocks.MockCompilerFactory, *mocks.MockShaderCompiler) {
	t.Helper()
	ctrl := gomock.NewController(t)

	factory := mocks.NewMockCompilerFactory(ctrl)
	compiler := mocks.NewMockShaderCompiler(ctrl)
	b := scheduler.NewBuilder(
		factory,
		fsadapter.NewMapFSAdapter("/", fstest.MapFS{}),
		mocks.NewMockLogger(ctrl),
		mocks.NewMockTelemetry(ctrl),
		mocks.NewMockMetrics(ctrl),
	)
	return b, factory, compiler
}

func TestBuilder_Build(t *testing.T) {
	b, factory, compiler := newBuilder(t)

	geometry := domain.GeometryConfig{
		InputType:   domain.PrimitiveLines,
		OutputType:  domain.PrimitiveLineStrip,
		OutputCount: 4,
	}
	factory.EXPECT().NewCompiler("glow").Return(compiler)
	compiler.EXPECT().SetGeometry(geometry)

	s, err := b.Build(domain.ProgramConfig{
		Name:         "glow",
		Files:        domain.ShaderFilesFromName("/data/glow"),
		Geometry:     geometry,
		PollInterval: 500 * time.Millisecond,
	}, frameloop.NewManual())
	require.NoError(t, err)

	assert.Equal(t, "glow", s.Name())
	assert.Equal(t, 500*time.Millisecond, s.State().PollInterval)
	assert.Equal(t, geometry, s.Geometry())
	assert.Equal(t, domain.StatusUnloaded, s.Status())
}

func TestBuilder_Build_Defaults(t *testing.T) {
	b, factory, compiler := newBuilder(t)
	factory.EXPECT().NewCompiler("glow").Return(compiler)

	s, err := b.Build(domain.ProgramConfig{Name: "glow"}, frameloop.NewManual())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPollInterval, s.State().PollInterval)
	assert.Equal(t, domain.DefaultGeometryConfig(), s.Geometry())
}

func TestBuilder_Build_InvalidInterval(t *testing.T) {
	b, factory, compiler := newBuilder(t)
	factory.EXPECT().NewCompiler("glow").Return(compiler)

	_, err := b.Build(domain.ProgramConfig{Name: "glow", PollInterval: -time.Second}, frameloop.NewManual())
	assert.ErrorIs(t, err, domain.ErrInvalidPollInterval)
}
