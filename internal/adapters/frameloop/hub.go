// Package frameloop provides host tick sources that notify subscribers once
// per frame with the elapsed time since the loop started.
package frameloop

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.trai.ch/relink/internal/core/ports"
)

type subscription struct {
	id string
	fn ports.TickFunc
}

// hub keeps subscriptions in registration order.
type hub struct {
	mu   sync.Mutex
	subs []subscription
}

// Subscribe registers fn under id. Re-subscribing an id replaces its callback
// and keeps its position.
func (h *hub) Subscribe(id string, fn ports.TickFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if i := h.index(id); i >= 0 {
		h.subs[i].fn = fn
		return
	}
	h.subs = append(h.subs, subscription{id: id, fn: fn})
}

// Unsubscribe removes id. Removing an unknown id does nothing.
func (h *hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if i := h.index(id); i >= 0 {
		h.subs = slices.Delete(h.subs, i, i+1)
	}
}

// Len returns the number of active subscriptions.
func (h *hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *hub) index(id string) int {
	return slices.IndexFunc(h.subs, func(s subscription) bool { return s.id == id })
}

// dispatch calls every subscriber in order. Callbacks run without the lock
// held, so they may subscribe or unsubscribe. A subscriber removed during the
// dispatch is skipped; one added during it waits for the next frame.
func (h *hub) dispatch(ctx context.Context, now time.Duration) {
	h.mu.Lock()
	snapshot := slices.Clone(h.subs)
	h.mu.Unlock()

	for _, s := range snapshot {
		if ctx.Err() != nil {
			return
		}
		h.mu.Lock()
		i := h.index(s.id)
		var fn ports.TickFunc
		if i >= 0 {
			fn = h.subs[i].fn
		}
		h.mu.Unlock()

		if fn != nil {
			fn(ctx, now)
		}
	}
}
