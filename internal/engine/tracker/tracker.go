// Package tracker detects modification of the source files of one shader program.
package tracker

import (
	"time"

	"go.trai.ch/relink/internal/core/domain"
	"go.trai.ch/relink/internal/core/ports"
)

// Tracker holds one baseline per stage and compares it with the file system
// on every poll. It is not safe for concurrent use.
type Tracker struct {
	fs    ports.FileSystem
	files [domain.StageCount]domain.WatchedFile
}

// New creates a Tracker with no files.
func New(fsys ports.FileSystem) *Tracker {
	t := &Tracker{fs: fsys}
	t.Reset(domain.ShaderFiles{})
	return t
}

// Reset discards every baseline and reads fresh ones for files.
// A missing or unreadable file gets the zero baseline.
func (t *Tracker) Reset(files domain.ShaderFiles) {
	for kind, path := range files.Stages() {
		wf := domain.WatchedFile{Kind: kind, Path: path}
		if mod, ok := t.modTime(path); ok {
			wf.LastModified = mod
			wf.Exists = true
		}
		t.files[kind] = wf
	}
}

// Poll compares every existing file with its baseline, adopts the new
// modification time of each file that differs and returns the changed stages.
// Missing or unreadable files are marked absent and keep their baseline.
func (t *Tracker) Poll() []domain.StageKind {
	var changed []domain.StageKind
	for i := range t.files {
		wf := &t.files[i]
		mod, ok := t.modTime(wf.Path)
		if !ok {
			wf.Exists = false
			continue
		}
		wf.Exists = true
		if !mod.Equal(wf.LastModified) {
			wf.LastModified = mod
			changed = append(changed, wf.Kind)
		}
	}
	return changed
}

// Changed reports whether any tracked file changed since the last poll or reset.
func (t *Tracker) Changed() bool {
	return len(t.Poll()) > 0
}

// Files returns a copy of the tracked records in stage order.
func (t *Tracker) Files() []domain.WatchedFile {
	return append([]domain.WatchedFile(nil), t.files[:]...)
}

func (t *Tracker) modTime(path string) (time.Time, bool) {
	if path == "" {
		return time.Time{}, false
	}
	info, err := t.fs.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
