// Package scheduler drives the hot-reload state machine of one shader program.
//
// A Scheduler runs inside the host's per-tick callback. It polls the program's
// source files at a bounded rate and, after detecting a change, reloads the
// program on the following tick so that detection and GPU-side mutation never
// happen within the same callback.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.trai.ch/relink/internal/core/domain"
	"go.trai.ch/relink/internal/core/ports"
	"go.trai.ch/relink/internal/engine/tracker"
	"go.trai.ch/zerr"
)

// Scheduler owns the reload state of one program. All methods must be called
// from the goroutine that dispatches host ticks.
type Scheduler struct {
	name      string
	ticks     ports.TickSource
	compiler  ports.ShaderCompiler
	fs        ports.FileSystem
	tracker   *tracker.Tracker
	logger    ports.Logger
	telemetry ports.Telemetry
	metrics   ports.Metrics
	clock     func() time.Time

	files        domain.ShaderFiles
	geometry     domain.GeometryConfig
	pollInterval time.Duration
	state        domain.ReloadState
	attempted    bool
	loaded       bool
}

// Option configures optional collaborators of a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger used for tick-driven reload outcomes.
func WithLogger(l ports.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// WithTelemetry records every (re)load as a vertex.
func WithTelemetry(t ports.Telemetry) Option {
	return func(s *Scheduler) { s.telemetry = t }
}

// WithMetrics reports polls, reloads and the watching flag.
func WithMetrics(m ports.Metrics) Option {
	return func(s *Scheduler) { s.metrics = m }
}

// New creates an unloaded Scheduler for the program name. The name doubles as
// the tick subscription id, so it must be unique per tick source.
func New(
	name string,
	ticks ports.TickSource,
	compiler ports.ShaderCompiler,
	fsys ports.FileSystem,
	opts ...Option,
) *Scheduler {
	s := &Scheduler{
		name:         name,
		ticks:        ticks,
		compiler:     compiler,
		fs:           fsys,
		tracker:      tracker.New(fsys),
		logger:       nopLogger{},
		telemetry:    nopTelemetry{},
		metrics:      nopMetrics{},
		clock:        time.Now,
		geometry:     domain.DefaultGeometryConfig(),
		pollInterval: domain.DefaultPollInterval,
	}
	s.state.PollInterval = s.pollInterval
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnTick is the per-frame callback. A pending reload takes precedence over
// polling; otherwise the files are polled once the poll interval has elapsed
// since the previous poll.
func (s *Scheduler) OnTick(ctx context.Context, now time.Duration) {
	if !s.state.Watching {
		return
	}

	if s.state.Phase == domain.PhaseReloadPending {
		if err := s.Reload(ctx); err != nil {
			s.logger.Error(err)
		} else {
			s.logger.Info(fmt.Sprintf("reloaded %s", s.name))
		}
		s.state.Phase = domain.PhaseIdle
		return
	}

	if !s.state.PollDue(now) {
		return
	}

	changed := s.tracker.Poll()
	s.state.LastPollAt = now
	s.metrics.ObservePoll(s.name, len(changed) > 0)

	if len(changed) > 0 {
		s.state.Phase = domain.PhaseReloadPending
		s.logger.Debug(fmt.Sprintf("%s: %s changed, reload scheduled", s.name, changed[0]))
	}
}

// EnableWatching subscribes the scheduler to host ticks. It does nothing when
// already watching.
func (s *Scheduler) EnableWatching() {
	if s.state.Watching {
		return
	}
	s.ticks.Subscribe(s.name, s.OnTick)
	s.state.Watching = true
	s.metrics.SetWatching(s.name, true)
}

// DisableWatching unsubscribes the scheduler from host ticks. It does nothing
// when not watching.
func (s *Scheduler) DisableWatching() {
	if !s.state.Watching {
		return
	}
	s.ticks.Unsubscribe(s.name)
	s.state.Watching = false
	s.metrics.SetWatching(s.name, false)
}

// SetPollInterval changes the minimum time between two polls. It applies from
// the next comparison and is kept across reloads.
func (s *Scheduler) SetPollInterval(d time.Duration) error {
	if d <= 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidPollInterval, "failed to set poll interval"), "interval", d.String())
	}
	s.pollInterval = d
	s.state.PollInterval = d
	return nil
}

// SetGeometry replaces all geometry-stage parameters.
func (s *Scheduler) SetGeometry(cfg domain.GeometryConfig) {
	s.geometry = cfg
	s.compiler.SetGeometry(cfg)
}

// SetGeometryInputType sets the primitive type consumed by the geometry stage.
func (s *Scheduler) SetGeometryInputType(p domain.Primitive) {
	s.geometry.InputType = p
	s.compiler.SetGeometry(s.geometry)
}

// SetGeometryOutputType sets the primitive type emitted by the geometry stage.
func (s *Scheduler) SetGeometryOutputType(p domain.Primitive) {
	s.geometry.OutputType = p
	s.compiler.SetGeometry(s.geometry)
}

// SetGeometryOutputCount sets the maximum number of vertices the geometry stage emits.
func (s *Scheduler) SetGeometryOutputCount(n int) {
	s.geometry.OutputCount = n
	s.compiler.SetGeometry(s.geometry)
}

// Load releases the current program, starts watching files and compiles them.
// The geometry stage is compiled only when its path is set. Every stage is
// attempted; if any fails, linking is skipped. Watching continues on failure.
func (s *Scheduler) Load(ctx context.Context, files domain.ShaderFiles) (err error) {
	start := s.clock()
	_, vertex := s.telemetry.Record(ctx, "load "+s.name)
	defer func() {
		vertex.Complete(err)
		s.metrics.ObserveReload(s.name, s.clock().Sub(start), err)
	}()

	s.compiler.Unload()
	s.loaded = false
	s.attempted = true

	s.state.LastPollAt = s.ticks.Elapsed()
	s.state.PollInterval = s.pollInterval
	s.state.Phase = domain.PhaseIdle
	s.EnableWatching()

	s.files = files
	s.tracker.Reset(files)

	s.compiler.SetGeometry(s.geometry)

	var stageErrs []error
	for kind, path := range files.Stages() {
		if kind == domain.StageGeometry && path == "" {
			continue
		}
		if err := s.compileStage(kind, path, vertex.Stdout()); err != nil {
			stageErrs = append(stageErrs, err)
		}
	}
	if len(stageErrs) > 0 {
		joined := errors.Join(append([]error{domain.ErrCompileFailed}, stageErrs...)...)
		return zerr.With(zerr.Wrap(joined, "failed to load program"), "program", s.name)
	}

	s.compiler.BindDefaults()
	if err := s.compiler.Link(); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrLinkFailed, err), "failed to load program"), "program", s.name)
	}

	s.loaded = true
	vertex.Log(domain.LogLevelInfo, "linked "+s.name)
	return nil
}

// LoadNamed loads <base>.vert and <base>.frag, plus <base>.geom when that
// file exists.
func (s *Scheduler) LoadNamed(ctx context.Context, base string) error {
	files := domain.ShaderFilesFromName(base)
	if _, err := s.fs.Stat(files.Geometry); err != nil {
		files.Geometry = ""
	}
	return s.Load(ctx, files)
}

// Reload loads the currently recorded files again with the latest geometry
// parameters.
func (s *Scheduler) Reload(ctx context.Context) error {
	return s.Load(ctx, s.files)
}

// Close stops watching and releases the program.
func (s *Scheduler) Close() {
	s.DisableWatching()
	s.compiler.Unload()
	s.loaded = false
}

func (s *Scheduler) compileStage(kind domain.StageKind, path string, out io.Writer) error {
	src, err := s.fs.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to read stage source"), "stage", kind.String()), "path", path)
	}
	if err := s.compiler.CompileStage(kind, string(src)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to compile "+kind.String()+" stage"), "path", path)
	}
	_, _ = fmt.Fprintf(out, "compiled %s stage from %s\n", kind, path)
	return nil
}

// Name returns the program name.
func (s *Scheduler) Name() string {
	return s.name
}

// State returns a copy of the reload state.
func (s *Scheduler) State() domain.ReloadState {
	return s.state
}

// Files returns the watched file records in stage order.
func (s *Scheduler) Files() []domain.WatchedFile {
	return s.tracker.Files()
}

// Geometry returns the geometry-stage parameters applied on every load.
func (s *Scheduler) Geometry() domain.GeometryConfig {
	return s.geometry
}

// Loaded reports whether the most recent load linked successfully.
func (s *Scheduler) Loaded() bool {
	return s.loaded
}

// Status summarizes the scheduler state.
func (s *Scheduler) Status() domain.ProgramStatus {
	switch {
	case s.state.Watching && s.state.Phase == domain.PhaseReloadPending:
		return domain.StatusReloadPending
	case s.state.Watching:
		return domain.StatusWatching
	case s.attempted:
		return domain.StatusStopped
	default:
		return domain.StatusUnloaded
	}
}
