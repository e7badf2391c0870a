package domain

import "time"

// DefaultPollInterval is the time between two file checks unless configured otherwise.
const DefaultPollInterval = 2 * time.Second

// ReloadPhase is the deferral state of a program's reload state machine.
type ReloadPhase uint8

const (
	// PhaseIdle means no reload is scheduled.
	PhaseIdle ReloadPhase = iota
	// PhaseReloadPending means a change was detected and the reload runs on the next tick.
	PhaseReloadPending
)

// String returns the phase name.
func (p ReloadPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseReloadPending:
		return "reload-pending"
	default:
		return "unknown"
	}
}

// ReloadState is the per-program scheduling state.
// Watching mirrors the tick subscription: subscribed if and only if Watching is true.
type ReloadState struct {
	Watching     bool
	PollInterval time.Duration
	// LastPollAt is the host elapsed time of the last poll (or of the last load).
	LastPollAt time.Duration
	Phase      ReloadPhase
}

// PollDue reports whether the poll interval has strictly elapsed at now.
func (s ReloadState) PollDue(now time.Duration) bool {
	return now-s.LastPollAt > s.PollInterval
}

// ProgramStatus is the externally visible state of a hot-reloaded program.
type ProgramStatus string

const (
	// StatusUnloaded indicates the program has never been loaded.
	StatusUnloaded ProgramStatus = "unloaded"
	// StatusWatching indicates the program is loaded and polled for changes.
	StatusWatching ProgramStatus = "watching"
	// StatusReloadPending indicates a change was detected and a reload is scheduled.
	StatusReloadPending ProgramStatus = "reload-pending"
	// StatusStopped indicates watching was disabled.
	StatusStopped ProgramStatus = "stopped"
)
