package workspace

import "notewell/models"

// noteList caches the ordered notes matching the current filter. Every
// refresh is a full replace; the cache is never patched in place.
//
// Stale responses are detected with a monotonically increasing sequence
// number: next() stamps each outgoing refresh, and apply() discards any
// result whose stamp is no longer the most recently issued one
// (last-request-wins). Access is guarded by the coordinator's mutex.
type noteList struct {
	notes []models.Note

	issued uint64
}

// next registers a new refresh and returns its sequence stamp.
func (l *noteList) next() uint64 {
	l.issued++
	return l.issued
}

// apply installs notes if seq still identifies the latest issued refresh.
// It reports whether the result was applied or discarded as stale.
func (l *noteList) apply(seq uint64, notes []models.Note) bool {
	if seq != l.issued {
		return false
	}
	l.notes = notes
	return true
}

// snapshot returns a copy of the cached list so callers can render without
// holding the coordinator's lock.
func (l *noteList) snapshot() []models.Note {
	out := make([]models.Note, len(l.notes))
	copy(out, l.notes)
	return out
}
