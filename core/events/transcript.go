package events

import "github.com/koscakluka/liveroom-core/core/transcript"

const (
	// KindTranscriptUpdated identifies transcript view changes.
	KindTranscriptUpdated Kind = "transcript.updated"
)

// TranscriptUpdated carries a newest-first snapshot of the transcript after
// a partial, final, translation, or clear was applied.
type TranscriptUpdated struct {
	Base
	Entries []transcript.Entry
}

// NewTranscriptUpdated creates a transcript update event.
func NewTranscriptUpdated(entries []transcript.Entry) TranscriptUpdated {
	return TranscriptUpdated{Base: NewBase(KindTranscriptUpdated), Entries: entries}
}
