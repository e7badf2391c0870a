// Package telemetry holds telemetry adapters that need no backing recorder.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/relink/internal/core/domain"
	"go.trai.ch/relink/internal/core/ports"
)

// NoOp is a ports.Telemetry that discards everything.
type NoOp struct{}

var _ ports.Telemetry = NoOp{}

// Record returns ctx unchanged and a vertex that discards output.
func (NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, NoOpVertex{}
}

// NoOpVertex is a ports.Vertex that discards everything.
type NoOpVertex struct{}

// Stdout returns io.Discard.
func (NoOpVertex) Stdout() io.Writer { return io.Discard }

// Log does nothing.
func (NoOpVertex) Log(domain.LogLevel, string) {}

// Complete does nothing.
func (NoOpVertex) Complete(error) {}
