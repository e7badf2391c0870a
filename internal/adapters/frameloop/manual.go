package frameloop

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/relink/internal/core/ports"
)

// Manual is a tick source advanced explicitly by its owner.
type Manual struct {
	hub
	clock sync.Mutex
	now   time.Duration
}

var _ ports.TickSource = (*Manual)(nil)

// NewManual creates a Manual source at elapsed time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Elapsed returns the time of the most recent frame.
func (m *Manual) Elapsed() time.Duration {
	m.clock.Lock()
	defer m.clock.Unlock()
	return m.now
}

// Advance moves time forward by d and dispatches one frame.
func (m *Manual) Advance(ctx context.Context, d time.Duration) {
	m.clock.Lock()
	m.now += d
	now := m.now
	m.clock.Unlock()

	m.dispatch(ctx, now)
}

// TickAt sets the elapsed time to now and dispatches one frame.
// Moving backwards is allowed.
func (m *Manual) TickAt(ctx context.Context, now time.Duration) {
	m.clock.Lock()
	m.now = now
	m.clock.Unlock()

	m.dispatch(ctx, now)
}
