package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	session "github.com/koscakluka/liveroom-core/core"
	"github.com/koscakluka/liveroom-core/core/transcript"
)

// Feed bridges coordinator callbacks into the terminal view's message loop.
// Callbacks fire on the channel's read goroutine; pushes never block it, an
// update is dropped when the view lags behind.
type Feed struct {
	updates chan tea.Msg
}

func NewFeed() *Feed {
	return &Feed{updates: make(chan tea.Msg, 32)}
}

// Options returns the coordinator options that route session updates into
// this feed.
func (f *Feed) Options() []session.CoordinatorOption {
	return []session.CoordinatorOption{
		session.WithTranscriptCallback(func(entries []transcript.Entry) {
			f.push(TranscriptMsg(entries))
		}),
		session.WithConnectionStateCallback(func(state string) {
			f.push(ConnectionMsg(state))
		}),
		session.WithHostStatusCallback(func(status string) {
			f.push(HostStatusMsg(status))
		}),
		session.WithParticipantCountCallback(func(count int) {
			f.push(ParticipantCountMsg(count))
		}),
		session.WithNoticeCallback(func(text string) {
			f.push(NoticeMsg(text))
		}),
		session.WithRoomLeftCallback(func() {
			f.push(RoomLeftMsg{})
		}),
	}
}

func (f *Feed) push(msg tea.Msg) {
	select {
	case f.updates <- msg:
	default:
	}
}
