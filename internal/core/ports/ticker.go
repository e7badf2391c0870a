package ports

import (
	"context"
	"time"
)

// TickFunc is invoked once per host frame with the host's elapsed time since start.
type TickFunc func(ctx context.Context, now time.Duration)

// TickSource is the host's per-frame notification hub.
//
//go:generate mockgen -source=ticker.go -destination=mocks/mock_ticker.go -package=mocks
type TickSource interface {
	// Subscribe registers fn under id. Subscribing an id twice replaces the callback.
	Subscribe(id string, fn TickFunc)
	// Unsubscribe removes the callback registered under id, if any.
	Unsubscribe(id string)
	// Elapsed returns the host's elapsed time since start.
	Elapsed() time.Duration
}
