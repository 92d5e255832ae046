// Package transcript maintains the ordered transcript view for one session.
//
// The log is a small state machine driven by three events: partial updates
// that revise an in-progress utterance in place, finals that close the
// utterance with authoritative text, and translations that attach to the most
// recently finalized entry. It is the sole mutator of entries; everything
// else observes snapshots.
package transcript

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Entry is one row of the transcript view.
type Entry struct {
	// ID is unique per entry and stable across in-place revisions.
	ID string
	// Timestamp records when the entry was created, for display only.
	Timestamp time.Time
	Text      string
	// IsFinal distinguishes completed utterances from the single in-progress
	// one.
	IsFinal bool
	// Translation is attached after finalization; a partial entry never has
	// one.
	Translation string
}

// Log owns the ordered entry list. Invariant: at most one non-final entry
// exists at any time.
type Log struct {
	mu      sync.Mutex
	entries []Entry

	// hasPartial reports whether the last entry is the open partial.
	hasPartial bool
	// lastFinalID points at the entry the next translation attaches to.
	lastFinalID string

	now func() time.Time
}

func NewLog() *Log {
	return &Log{now: time.Now}
}

// ApplyPartial creates the open partial entry on the first partial event
// after a final, and revises its text in place on every subsequent one. The
// entry keeps its id across revisions.
func (l *Log) ApplyPartial(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.hasPartial {
		l.entries[len(l.entries)-1].Text = text
		return
	}

	l.entries = append(l.entries, Entry{
		ID:        uuid.NewString(),
		Timestamp: l.now(),
		Text:      text,
	})
	l.hasPartial = true
}

// ApplyFinal discards the open partial entry if one exists and appends a new
// final entry. The final text is authoritative; partial content is never
// merged into it.
func (l *Log) ApplyFinal(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.hasPartial {
		l.entries = l.entries[:len(l.entries)-1]
		l.hasPartial = false
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: l.now(),
		Text:      text,
		IsFinal:   true,
	}
	l.entries = append(l.entries, entry)
	l.lastFinalID = entry.ID
}

// ApplyTranslation attaches (or replaces) the translation on the most
// recently finalized entry. A translation arriving before any final is a
// benign race and is dropped.
func (l *Log) ApplyTranslation(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.lastFinalID == "" {
		return
	}

	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].ID == l.lastFinalID {
			l.entries[i].Translation = text
			return
		}
	}
}

// Clear resets the entry list and the translation attachment point.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
	l.hasPartial = false
	l.lastFinalID = ""
}

// Entries returns a snapshot of the transcript in display order, newest
// first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := []Entry{}
	copier.Copy(&snapshot, l.entries)

	for i, j := 0, len(snapshot)-1; i < j; i, j = i+1, j-1 {
		snapshot[i], snapshot[j] = snapshot[j], snapshot[i]
	}
	return snapshot
}

// OpenPartial returns the in-progress entry, if any.
func (l *Log) OpenPartial() (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.hasPartial {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
