package session

import (
	"time"

	"github.com/koscakluka/liveroom-core/core/channel"
	"github.com/koscakluka/liveroom-core/core/protocol"
	"github.com/koscakluka/liveroom-core/core/rooms"
	"github.com/koscakluka/liveroom-core/core/transcript"
)

type coordinatorCallbacks struct {
	onConnectionStateChanged  func(state string)
	onHostStatusUpdated       func(status string)
	onParticipantCountUpdated func(count int)
	onLanguageConfirmed       func(language string)
	onNotice                  func(text string)
	onRoomLeft                func()
	onUnknownMessage          func(msg protocol.Message)
	onTranscriptUpdated       func(entries []transcript.Entry)
}

type CoordinatorOption func(*Coordinator, *coordinatorCallbacks)

// WithRoomRegistry wires the external room registry used by CreateRoom and
// JoinRoom.
func WithRoomRegistry(registry rooms.Registry) CoordinatorOption {
	return func(c *Coordinator, _ *coordinatorCallbacks) {
		c.registry = registry
	}
}

// WithDialer wires the transport used to open session channels.
func WithDialer(dialer channel.Dialer) CoordinatorOption {
	return func(c *Coordinator, _ *coordinatorCallbacks) {
		c.dialer = dialer
	}
}

// WithAudioInput wires the microphone capture client used by the host.
func WithAudioInput(client AudioInput) CoordinatorOption {
	return func(c *Coordinator, _ *coordinatorCallbacks) {
		c.capture.Set(client)
	}
}

// WithFrameSize overrides the binary audio frame size pushed to the channel.
func WithFrameSize(size int) CoordinatorOption {
	return func(c *Coordinator, _ *coordinatorCallbacks) {
		c.capture.SetFrameSize(size)
	}
}

// WithKeepaliveInterval overrides the participant keepalive interval.
func WithKeepaliveInterval(interval time.Duration) CoordinatorOption {
	return func(c *Coordinator, _ *coordinatorCallbacks) {
		if interval > 0 {
			c.keepaliveInterval = interval
		}
	}
}

// WithConnectionStateCallback registers a callback for channel state
// transitions.
func WithConnectionStateCallback(callback func(state string)) CoordinatorOption {
	return func(_ *Coordinator, callbacks *coordinatorCallbacks) {
		callbacks.onConnectionStateChanged = callback
	}
}

// WithHostStatusCallback registers a callback for server-reported host
// status updates.
func WithHostStatusCallback(callback func(status string)) CoordinatorOption {
	return func(_ *Coordinator, callbacks *coordinatorCallbacks) {
		callbacks.onHostStatusUpdated = callback
	}
}

// WithParticipantCountCallback registers a callback for room size updates.
func WithParticipantCountCallback(callback func(count int)) CoordinatorOption {
	return func(_ *Coordinator, callbacks *coordinatorCallbacks) {
		callbacks.onParticipantCountUpdated = callback
	}
}

// WithLanguageConfirmedCallback registers a callback for acknowledged
// language preferences.
func WithLanguageConfirmedCallback(callback func(language string)) CoordinatorOption {
	return func(_ *Coordinator, callbacks *coordinatorCallbacks) {
		callbacks.onLanguageConfirmed = callback
	}
}

// WithNoticeCallback registers a callback for user-visible notices,
// including server-reported errors passed through verbatim.
func WithNoticeCallback(callback func(text string)) CoordinatorOption {
	return func(_ *Coordinator, callbacks *coordinatorCallbacks) {
		callbacks.onNotice = callback
	}
}

// WithRoomLeftCallback registers a callback fired when the session resets
// out of its room.
func WithRoomLeftCallback(callback func()) CoordinatorOption {
	return func(_ *Coordinator, callbacks *coordinatorCallbacks) {
		callbacks.onRoomLeft = callback
	}
}

// WithUnknownMessageCallback registers the generic handler for inbound
// messages of unknown type. They are forwarded verbatim, never dropped at
// the dispatch layer.
func WithUnknownMessageCallback(callback func(msg protocol.Message)) CoordinatorOption {
	return func(_ *Coordinator, callbacks *coordinatorCallbacks) {
		callbacks.onUnknownMessage = callback
	}
}

// WithTranscriptCallback registers a callback for transcript view changes.
// It receives a newest-first snapshot of the entries.
func WithTranscriptCallback(callback func(entries []transcript.Entry)) CoordinatorOption {
	return func(_ *Coordinator, callbacks *coordinatorCallbacks) {
		callbacks.onTranscriptUpdated = callback
	}
}
