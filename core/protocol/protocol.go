package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedMessage marks inbound frames that cannot be decoded into a
// message. Callers are expected to drop the frame and keep the connection
// open.
var ErrMalformedMessage = errors.New("malformed message")

type Type string

const (
	TypePing               Type = "ping"
	TypeHostStatus         Type = "host_status"
	TypeUserLeft           Type = "user_left"
	TypeParticipantCount   Type = "participant_count"
	TypeLanguagePreference Type = "language_preference"
	TypeLanguageConfirmed  Type = "language_confirmed"
	TypePartial            Type = "partial"
	TypeFinal              Type = "final"
	TypeTranslation        Type = "translation"
	TypeError              Type = "error"
)

// Message is the wire record exchanged over a room channel. Exactly one type
// discriminant is set per message; the remaining fields are populated
// depending on the type. Binary audio frames never pass through this codec,
// the channel distinguishes them by framing alone.
type Message struct {
	Type Type `json:"type"`

	// Status carries the host connection status for host_status messages.
	Status string `json:"status,omitempty"`
	// UserID identifies the departing user for user_left messages.
	UserID string `json:"user_id,omitempty"`
	// ParticipantCount carries the remaining room size on user_left messages.
	ParticipantCount *int `json:"participant_count,omitempty"`
	// Count carries the room size for participant_count messages.
	Count *int `json:"count,omitempty"`
	// Language carries a language code for language_preference and
	// language_confirmed messages.
	Language string `json:"language,omitempty"`
	// Text carries transcript, translation, or error text.
	Text string `json:"text,omitempty"`

	// Raw holds the original frame as delivered by the transport. Decode
	// always sets it so messages of unknown type can be forwarded verbatim.
	Raw json.RawMessage `json:"-"`
}

// Known reports whether the message type is part of the enumerated contract.
// Unknown types are still valid messages and must be forwarded to a generic
// handler rather than rejected.
func (m Message) Known() bool {
	switch m.Type {
	case TypePing, TypeHostStatus, TypeUserLeft, TypeParticipantCount,
		TypeLanguagePreference, TypeLanguageConfirmed,
		TypePartial, TypeFinal, TypeTranslation, TypeError:
		return true
	}
	return false
}

func NewPing() Message {
	return Message{Type: TypePing}
}

func NewLanguagePreference(language string) Message {
	return Message{Type: TypeLanguagePreference, Language: language}
}

// Encode serializes a message into a text frame.
func Encode(msg Message) ([]byte, error) {
	if msg.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedMessage)
	}

	frame, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q message: %w", msg.Type, err)
	}
	return frame, nil
}

// Decode parses a text frame into a message. The frame must be a JSON object
// with a non-empty "type" field; anything else fails with
// [ErrMalformedMessage].
func Decode(frame []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(frame, &msg); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if msg.Type == "" {
		return Message{}, fmt.Errorf("%w: missing type", ErrMalformedMessage)
	}

	msg.Raw = make(json.RawMessage, len(frame))
	copy(msg.Raw, frame)
	return msg, nil
}
