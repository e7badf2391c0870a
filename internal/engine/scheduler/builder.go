package scheduler

import (
	"go.trai.ch/relink/internal/core/domain"
	"go.trai.ch/relink/internal/core/ports"
)

// Builder creates Schedulers sharing the same collaborators.
type Builder struct {
	compilers ports.CompilerFactory
	fs        ports.FileSystem
	logger    ports.Logger
	telemetry ports.Telemetry
	metrics   ports.Metrics
}

// NewBuilder creates a Builder.
func NewBuilder(
	compilers ports.CompilerFactory,
	fsys ports.FileSystem,
	logger ports.Logger,
	telemetry ports.Telemetry,
	metrics ports.Metrics,
) *Builder {
	return &Builder{
		compilers: compilers,
		fs:        fsys,
		logger:    logger,
		telemetry: telemetry,
		metrics:   metrics,
	}
}

// Build creates an unloaded Scheduler for cfg driven by ticks.
// Zero poll interval and geometry values keep the defaults.
func (b *Builder) Build(cfg domain.ProgramConfig, ticks ports.TickSource) (*Scheduler, error) {
	s := New(cfg.Name, ticks, b.compilers.NewCompiler(cfg.Name), b.fs,
		WithLogger(b.logger),
		WithTelemetry(b.telemetry),
		WithMetrics(b.metrics),
	)
	if cfg.PollInterval != 0 {
		if err := s.SetPollInterval(cfg.PollInterval); err != nil {
			return nil, err
		}
	}
	if cfg.Geometry != (domain.GeometryConfig{}) {
		s.SetGeometry(cfg.Geometry)
	}
	return s, nil
}
