package events

import "github.com/koscakluka/liveroom-core/core/protocol"

const (
	// KindRoomConnectionStateChanged identifies channel state transitions.
	KindRoomConnectionStateChanged Kind = "room.connection_state_changed"
	// KindRoomHostStatusUpdated identifies server-reported host status changes.
	KindRoomHostStatusUpdated Kind = "room.host_status_updated"
	// KindRoomParticipantCountUpdated identifies room size changes.
	KindRoomParticipantCountUpdated Kind = "room.participant_count_updated"
	// KindRoomLanguageConfirmed identifies acknowledged language preferences.
	KindRoomLanguageConfirmed Kind = "room.language_confirmed"
	// KindRoomNotice identifies user-visible notices, including server errors.
	KindRoomNotice Kind = "room.notice"
	// KindRoomLeft identifies the session resetting out of its room.
	KindRoomLeft Kind = "room.left"
	// KindRoomUnknownMessage identifies forwarded messages of unknown type.
	KindRoomUnknownMessage Kind = "room.unknown_message"
)

// RoomConnectionStateChanged carries the new channel state.
type RoomConnectionStateChanged struct {
	Base
	State string
}

// NewRoomConnectionStateChanged creates a connection state change event.
func NewRoomConnectionStateChanged(state string) RoomConnectionStateChanged {
	return RoomConnectionStateChanged{Base: NewBase(KindRoomConnectionStateChanged), State: state}
}

// RoomHostStatusUpdated carries the server-reported host status.
type RoomHostStatusUpdated struct {
	Base
	Status string
}

// NewRoomHostStatusUpdated creates a host status event.
func NewRoomHostStatusUpdated(status string) RoomHostStatusUpdated {
	return RoomHostStatusUpdated{Base: NewBase(KindRoomHostStatusUpdated), Status: status}
}

// RoomParticipantCountUpdated carries the current room size.
type RoomParticipantCountUpdated struct {
	Base
	Count int
}

// NewRoomParticipantCountUpdated creates a participant count event.
func NewRoomParticipantCountUpdated(count int) RoomParticipantCountUpdated {
	return RoomParticipantCountUpdated{Base: NewBase(KindRoomParticipantCountUpdated), Count: count}
}

// RoomLanguageConfirmed carries the acknowledged language code.
type RoomLanguageConfirmed struct {
	Base
	Language string
}

// NewRoomLanguageConfirmed creates a language confirmation event.
func NewRoomLanguageConfirmed(language string) RoomLanguageConfirmed {
	return RoomLanguageConfirmed{Base: NewBase(KindRoomLanguageConfirmed), Language: language}
}

// RoomNotice carries user-visible notice text.
type RoomNotice struct {
	Base
	Text string
}

// NewRoomNotice creates a notice event.
func NewRoomNotice(text string) RoomNotice {
	return RoomNotice{Base: NewBase(KindRoomNotice), Text: text}
}

// RoomLeft marks the session resetting to its initial, no-room state.
type RoomLeft struct{ Base }

// NewRoomLeft creates a room left event.
func NewRoomLeft() RoomLeft {
	return RoomLeft{Base: NewBase(KindRoomLeft)}
}

// RoomUnknownMessage carries an inbound message of unknown type, verbatim.
type RoomUnknownMessage struct {
	Base
	Message protocol.Message
}

// NewRoomUnknownMessage creates a forwarded unknown message event.
func NewRoomUnknownMessage(msg protocol.Message) RoomUnknownMessage {
	return RoomUnknownMessage{Base: NewBase(KindRoomUnknownMessage), Message: msg}
}
