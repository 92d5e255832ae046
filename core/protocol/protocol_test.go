package protocol

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeKnownMessage(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"partial","text":"hel"}`))
	if err != nil {
		t.Fatalf("expected decode to succeed, got %v", err)
	}

	if msg.Type != TypePartial {
		t.Fatalf("expected type %q, got %q", TypePartial, msg.Type)
	}
	if msg.Text != "hel" {
		t.Fatalf("expected text %q, got %q", "hel", msg.Text)
	}
	if !msg.Known() {
		t.Fatalf("expected partial message to be a known type")
	}
}

func TestDecodeUserLeftCarriesOptionalCount(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"user_left","user_id":"u1","participant_count":3}`))
	if err != nil {
		t.Fatalf("expected decode to succeed, got %v", err)
	}

	if msg.UserID != "u1" {
		t.Fatalf("expected user id %q, got %q", "u1", msg.UserID)
	}
	if msg.ParticipantCount == nil || *msg.ParticipantCount != 3 {
		t.Fatalf("expected participant count 3, got %v", msg.ParticipantCount)
	}

	msg, err = Decode([]byte(`{"type":"user_left","user_id":"u1"}`))
	if err != nil {
		t.Fatalf("expected decode to succeed, got %v", err)
	}
	if msg.ParticipantCount != nil {
		t.Fatalf("expected absent participant count to stay nil, got %v", *msg.ParticipantCount)
	}
}

func TestDecodeUnknownTypePreservesRawFrame(t *testing.T) {
	frame := []byte(`{"type":"room_renamed","name":"standup"}`)

	msg, err := Decode(frame)
	if err != nil {
		t.Fatalf("expected unknown types to decode, got %v", err)
	}

	if msg.Known() {
		t.Fatalf("expected %q to be reported as unknown", msg.Type)
	}
	if string(msg.Raw) != string(frame) {
		t.Fatalf("expected raw frame to be preserved verbatim, got %s", msg.Raw)
	}
}

func TestDecodeMalformedFrames(t *testing.T) {
	for _, frame := range []string{
		`not json`,
		`{"text":"no type"}`,
		`{"type":""}`,
		`42`,
	} {
		if _, err := Decode([]byte(frame)); !errors.Is(err, ErrMalformedMessage) {
			t.Fatalf("expected ErrMalformedMessage for %q, got %v", frame, err)
		}
	}
}

func TestEncodeLanguagePreference(t *testing.T) {
	frame, err := Encode(NewLanguagePreference("es"))
	if err != nil {
		t.Fatalf("expected encode to succeed, got %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(frame, &decoded); err != nil {
		t.Fatalf("expected encoded frame to be valid JSON, got %v", err)
	}
	if decoded["type"] != "language_preference" || decoded["language"] != "es" {
		t.Fatalf("expected language_preference frame, got %v", decoded)
	}
	if _, ok := decoded["text"]; ok {
		t.Fatalf("expected empty fields to be omitted, got %v", decoded)
	}
}

func TestEncodeRejectsMissingType(t *testing.T) {
	if _, err := Encode(Message{Text: "hello"}); !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage, got %v", err)
	}
}
