package scheduler

import "time"

// SetClock replaces the wall clock used to time loads.
// This is exported for testing purposes only.
func (s *Scheduler) SetClock(clock func() time.Time) {
	s.clock = clock
}
