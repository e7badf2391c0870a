// Package app implements the application layer for relink.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.trai.ch/relink/internal/adapters/frameloop"
	"go.trai.ch/relink/internal/core/domain"
	"go.trai.ch/relink/internal/core/ports"
	"go.trai.ch/relink/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// logConfigurer is implemented by loggers that accept runtime configuration.
type logConfigurer interface {
	Configure(cfg domain.LogConfig) error
}

// MetricsHandler exposes collected metrics over HTTP.
type MetricsHandler interface {
	Handler() http.Handler
}

// App represents the main application logic.
type App struct {
	loader  ports.ConfigLoader
	builder *scheduler.Builder
	logger  ports.Logger
	metrics MetricsHandler
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	builder *scheduler.Builder,
	log ports.Logger,
	metrics MetricsHandler,
) *App {
	return &App{
		loader:  loader,
		builder: builder,
		logger:  log,
		metrics: metrics,
	}
}

// Options configures Watch and Check.
type Options struct {
	// ConfigPath is the configuration file. Empty means discovery from the
	// working directory.
	ConfigPath string
	// JSONLogs forces JSON log output.
	JSONLogs bool
	// Verbose lowers the log level to debug.
	Verbose bool
}

// CheckResult is the outcome of compiling one program once.
type CheckResult struct {
	Program string
	Files   domain.ShaderFiles
	Err     error
}

// OK reports whether the program compiled and linked.
func (r CheckResult) OK() bool {
	return r.Err == nil
}

// Watch loads every configured program and hot-reloads them until ctx is
// cancelled. A program that fails its initial load is still watched.
func (a *App) Watch(ctx context.Context, opts Options) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	loop, err := frameloop.NewLoop(cfg.FrameInterval())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start frame loop"), "frame_rate", cfg.FrameRate)
	}

	schedulers := make([]*scheduler.Scheduler, 0, len(cfg.Programs))
	defer func() {
		for _, s := range schedulers {
			s.Close()
		}
	}()

	for _, program := range cfg.Programs {
		s, err := a.builder.Build(program, loop)
		if err != nil {
			return zerr.With(err, "program", program.Name)
		}
		schedulers = append(schedulers, s)

		if err := s.Load(ctx, program.Files); err != nil {
			a.logger.Error(err)
			continue
		}
		a.logger.Info(fmt.Sprintf("watching %s", program.Name))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})

	if cfg.Metrics.Addr != "" {
		a.serveMetrics(gctx, g, cfg.Metrics.Addr)
	}

	return g.Wait()
}

// serveMetrics runs the metrics endpoint on g until ctx is done.
func (a *App) serveMetrics(ctx context.Context, g *errgroup.Group, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		a.logger.Info(fmt.Sprintf("serving metrics on %s", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.With(zerr.Wrap(err, "metrics server failed"), "addr", addr)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}

// Check compiles and links every configured program once. The returned error
// wraps domain.ErrCheckFailed when at least one program failed.
func (a *App) Check(ctx context.Context, opts Options) ([]CheckResult, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	ticks := frameloop.NewManual()
	results := make([]CheckResult, 0, len(cfg.Programs))
	failed := 0

	for _, program := range cfg.Programs {
		s, err := a.builder.Build(program, ticks)
		if err != nil {
			return nil, zerr.With(err, "program", program.Name)
		}

		result := CheckResult{Program: program.Name, Files: program.Files}
		result.Err = s.Load(ctx, program.Files)
		s.Close()

		if result.Err != nil {
			failed++
		}
		results = append(results, result)
	}

	if failed > 0 {
		return results, zerr.With(zerr.Wrap(domain.ErrCheckFailed, "check failed"), "failed", failed)
	}
	return results, nil
}

func (a *App) loadConfig(opts Options) (*domain.Config, error) {
	cfg, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logCfg := cfg.Log
	if opts.JSONLogs {
		logCfg.JSON = true
	}
	if opts.Verbose {
		logCfg.Level = domain.LogLevelDebug
	}
	if lc, ok := a.logger.(logConfigurer); ok {
		if err := lc.Configure(logCfg); err != nil {
			return nil, zerr.Wrap(err, "failed to configure logging")
		}
	}

	return cfg, nil
}
