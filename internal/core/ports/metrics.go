package ports

import "time"

// Metrics records reload activity.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObservePoll records one poll of a program's source files.
	ObservePoll(program string, changed bool)
	// ObserveReload records one (re)load attempt and its outcome.
	ObserveReload(program string, elapsed time.Duration, err error)
	// SetWatching records whether a program is currently subscribed to host ticks.
	SetWatching(program string, watching bool)
}
