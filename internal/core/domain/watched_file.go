package domain

import "time"

// WatchedFile is the change-detection record for one stage source file.
// Records have no lifecycle of their own: they are replaced wholesale on every (re)load.
type WatchedFile struct {
	Kind StageKind
	Path string
	// LastModified is the baseline used for change detection.
	// It is the zero time when the file did not exist at the last reset.
	LastModified time.Time
	Exists       bool
}
