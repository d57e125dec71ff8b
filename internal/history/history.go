package history

import (
	"fmt"

	"github.com/sizetrack/sizetrack-go/internal/size"
)

// Snapshot is the set of artifact measurements recorded for one revision.
// Artifact names are unique within a snapshot; Record enforces this.
type Snapshot struct {
	ID    string      `json:"id"`
	Sizes []size.Size `json:"sizes"`
}

// History is the ordered list of snapshots, oldest first. The tail is the
// most recently touched revision.
type History []*Snapshot

// DuplicateMeasurementError reports that an artifact was already measured
// for the current revision and overwriting was not enabled.
type DuplicateMeasurementError struct {
	Name string
	ID   string
}

func (e *DuplicateMeasurementError) Error() string {
	return fmt.Sprintf("artifact %q already measured for revision %q; enable overwrite to replace it", e.Name, e.ID)
}

// Resolve locates the snapshot to diff against and the snapshot to write
// into for the given revision id.
//
// An empty history gains a fresh snapshot with no previous one. When the
// tail already belongs to currentID the same build is being re-run: the
// tail keeps collecting measurements and the element before it (if any) is
// the previous snapshot. Otherwise a new revision has started: the old tail
// becomes the previous snapshot and a fresh one is appended. Older
// snapshots that happen to share currentID are never touched; only the
// tail is special.
func Resolve(h History, currentID string) (prev *Snapshot, cur *Snapshot, out History) {
	if len(h) == 0 {
		cur = &Snapshot{ID: currentID}
		return nil, cur, append(h, cur)
	}

	tail := h[len(h)-1]
	if tail.ID == currentID {
		if len(h) > 1 {
			prev = h[len(h)-2]
		}
		return prev, tail, h
	}

	cur = &Snapshot{ID: currentID}
	return tail, cur, append(h, cur)
}

// Record inserts a measurement into the snapshot. An existing entry with
// the same name fails with DuplicateMeasurementError unless overwrite is
// set, in which case it is replaced at its current position.
func (s *Snapshot) Record(sz size.Size, overwrite bool) error {
	for i, existing := range s.Sizes {
		if existing.Name != sz.Name {
			continue
		}
		if !overwrite {
			return &DuplicateMeasurementError{Name: sz.Name, ID: s.ID}
		}
		s.Sizes[i] = sz
		return nil
	}

	s.Sizes = append(s.Sizes, sz)
	return nil
}

// Lookup returns the measurement recorded under name, if any.
func (s *Snapshot) Lookup(name string) (size.Size, bool) {
	if s == nil {
		return size.Size{}, false
	}
	for _, sz := range s.Sizes {
		if sz.Name == name {
			return sz, true
		}
	}
	return size.Size{}, false
}

// Diff returns the signed per-field delta between cur and the entry sharing
// its name in prev. A nil prev, or a prev without the artifact, yields the
// zero baseline and flags the result New.
func Diff(prev *Snapshot, cur size.Size) size.Size {
	baseline, found := prev.Lookup(cur.Name)

	return size.Size{
		Name:     cur.Name,
		Original: cur.Original - baseline.Original,
		Gzip:     cur.Gzip - baseline.Gzip,
		Brotli:   cur.Brotli - baseline.Brotli,
		New:      !found,
	}
}
