package frameloop

import (
	"context"
	"sync/atomic"
	"time"

	"go.trai.ch/relink/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loop drives subscribers from a wall-clock ticker.
type Loop struct {
	hub
	interval time.Duration
	elapsed  atomic.Int64
}

var _ ports.TickSource = (*Loop)(nil)

// NewLoop creates a Loop firing once per interval.
func NewLoop(interval time.Duration) (*Loop, error) {
	if interval <= 0 {
		return nil, zerr.With(zerr.New("frame interval must be positive"), "interval", interval.String())
	}
	return &Loop{interval: interval}, nil
}

// Interval returns the time between frames.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Elapsed returns the time since Run started, as seen by the latest frame.
func (l *Loop) Elapsed() time.Duration {
	return time.Duration(l.elapsed.Load())
}

// Run ticks until ctx is cancelled. Every frame dispatches the elapsed time
// since Run was called to all subscribers on the calling goroutine.
func (l *Loop) Run(ctx context.Context) error {
	start := time.Now()
	l.elapsed.Store(0)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			now := t.Sub(start)
			l.elapsed.Store(int64(now))
			l.dispatch(ctx, now)
		}
	}
}
