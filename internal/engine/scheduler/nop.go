package scheduler

import (
	"context"
	"io"
	"time"

	"go.trai.ch/relink/internal/core/domain"
	"go.trai.ch/relink/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(error)  {}

type nopTelemetry struct{}

func (nopTelemetry) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, nopVertex{}
}

type nopVertex struct{}

func (nopVertex) Stdout() io.Writer           { return io.Discard }
func (nopVertex) Log(domain.LogLevel, string) {}
func (nopVertex) Complete(error)              {}

type nopMetrics struct{}

func (nopMetrics) ObservePoll(string, bool)                   {}
func (nopMetrics) ObserveReload(string, time.Duration, error) {}
func (nopMetrics) SetWatching(string, bool)                   {}
