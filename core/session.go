// Package session coordinates one client's participation in a live caption
// room: identity, room membership, the single active channel, host audio
// capture, and the transcript view.
package session

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"

	"github.com/koscakluka/liveroom-core/core/channel"
	"github.com/koscakluka/liveroom-core/core/events"
	"github.com/koscakluka/liveroom-core/core/protocol"
	"github.com/koscakluka/liveroom-core/core/rooms"
	"github.com/koscakluka/liveroom-core/core/transcript"
)

type Role string

const (
	RoleNone        Role = ""
	RoleHost        Role = "host"
	RoleParticipant Role = "participant"
)

var roomCodePattern = regexp.MustCompile(`^[A-Z]{5}$`)

// Coordinator owns one session: a stable identity, at most one room
// membership at a time, and the single active channel for it. It is
// constructed explicitly and passed to collaborators; there is no ambient
// session state.
type Coordinator struct {
	identity string

	registry          rooms.Registry
	dialer            channel.Dialer
	keepaliveInterval time.Duration

	transcripts *transcript.Log
	capture     *audioCapture
	emitEvent   eventEmitter

	mu       sync.Mutex
	roomCode string
	role     Role
	language string
	ch       *channel.Duplex
}

func NewCoordinator(opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		identity:          uuid.NewString(),
		keepaliveInterval: channel.DefaultKeepaliveInterval,
		transcripts:       transcript.NewLog(),
		emitEvent:         noopEventEmitter,
	}

	c.capture = newAudioCapture(nil, c.sendAudioFrame)

	callbacks := coordinatorCallbacks{}
	for _, opt := range opts {
		opt(c, &callbacks)
	}
	c.emitEvent = newCallbackEventEmitter(callbacks)

	return c
}

// Identity returns the opaque id generated once for this coordinator and
// stable for its lifetime.
func (c *Coordinator) Identity() string { return c.identity }

func (c *Coordinator) RoomCode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roomCode
}

func (c *Coordinator) Role() Role {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.role
}

func (c *Coordinator) Language() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.language
}

// ConnectionState reports the state of the active channel, or Disconnected
// when there is none.
func (c *Coordinator) ConnectionState() channel.State {
	c.mu.Lock()
	ch := c.ch
	c.mu.Unlock()

	if ch == nil {
		return channel.Disconnected
	}
	return ch.State()
}

// Transcript returns a newest-first snapshot of the transcript view.
func (c *Coordinator) Transcript() []transcript.Entry {
	return c.transcripts.Entries()
}

// ClearTranscript resets the transcript view unconditionally.
func (c *Coordinator) ClearTranscript() {
	c.transcripts.Clear()
	c.emitEvent(events.NewTranscriptUpdated(c.transcripts.Entries()))
}

// CreateRoom allocates a room for this identity, assumes the host role, and
// joins the session. On registry failure the session is left in its pre-call
// state and the error wraps [ErrRoomCreateFailed].
func (c *Coordinator) CreateRoom(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "create room")
	defer span.End()

	c.mu.Lock()
	if c.roomCode != "" {
		c.mu.Unlock()
		return nil
	}
	registry := c.registry
	c.mu.Unlock()

	if registry == nil {
		return fmt.Errorf("%w: no room registry configured", ErrRoomCreateFailed)
	}

	code, err := registry.CreateRoom(ctx, c.identity)
	if err != nil {
		recordedErr := fmt.Errorf("%w: %v", ErrRoomCreateFailed, err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return recordedErr
	}

	c.mu.Lock()
	c.roomCode = code
	c.role = RoleHost
	c.mu.Unlock()

	if err := c.joinSession(ctx); err != nil {
		c.resetSession()
		recordedErr := fmt.Errorf("%w: %v", ErrRoomCreateFailed, err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return recordedErr
	}
	return nil
}

// JoinRoom normalizes and validates the code, joins the room as a
// participant, and joins the session. A join attempt while already in a room
// returns immediately with no error. Registry failure wraps
// [ErrRoomJoinFailed] and leaves the session unchanged.
func (c *Coordinator) JoinRoom(ctx context.Context, code string) error {
	ctx, span := tracer.Start(ctx, "join room")
	defer span.End()

	code = strings.ToUpper(strings.TrimSpace(code))
	if !roomCodePattern.MatchString(code) {
		return fmt.Errorf("%w: room code must be exactly 5 letters", ErrRoomJoinFailed)
	}

	c.mu.Lock()
	if c.roomCode != "" {
		c.mu.Unlock()
		return nil
	}
	registry := c.registry
	c.mu.Unlock()

	if registry == nil {
		return fmt.Errorf("%w: no room registry configured", ErrRoomJoinFailed)
	}

	joined, err := registry.JoinRoom(ctx, code, c.identity)
	if err != nil {
		recordedErr := fmt.Errorf("%w: %v", ErrRoomJoinFailed, err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return recordedErr
	}

	c.mu.Lock()
	c.roomCode = joined
	c.role = RoleParticipant
	c.mu.Unlock()

	if err := c.joinSession(ctx); err != nil {
		c.resetSession()
		recordedErr := fmt.Errorf("%w: %v", ErrRoomJoinFailed, err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return recordedErr
	}
	return nil
}

// joinSession opens a fresh channel for the current room. Channels are
// single-use; every join gets a new instance.
func (c *Coordinator) joinSession(ctx context.Context) error {
	c.mu.Lock()
	role := c.role
	dialer := c.dialer

	opts := []channel.Option{
		channel.WithConnectedCallback(c.onConnected),
		channel.WithClosedCallback(c.onClosed),
		channel.WithMessageCallback(c.dispatch),
	}
	if role == RoleParticipant {
		opts = append(opts, channel.WithKeepalive(c.keepaliveInterval))
	}

	ch := channel.New(c.identity, dialer, opts...)
	c.ch = ch
	c.mu.Unlock()

	return ch.Open(ctx)
}

// resetSession clears room membership without emitting a room-left event.
// The channel, if any, already fired its closed callback.
func (c *Coordinator) resetSession() {
	c.mu.Lock()
	ch := c.ch
	c.ch = nil
	c.roomCode = ""
	c.role = RoleNone
	c.mu.Unlock()

	if ch != nil {
		ch.Close()
	}
}

// SetLanguage records the translation preference. When connected as a
// participant it is sent immediately; otherwise it is remembered and sent
// exactly once on the next successful connection.
func (c *Coordinator) SetLanguage(code string) {
	c.mu.Lock()
	c.language = code
	ch := c.ch
	role := c.role
	c.mu.Unlock()

	if role == RoleParticipant && ch != nil && ch.State() == channel.Connected {
		if err := ch.Send(protocol.NewLanguagePreference(code)); err != nil {
			logger.Warn("failed to send language preference", "language", code, "error", err)
		}
	}
}

// LeaveRoom closes the channel and resets the session to its initial
// state, clearing room code, role, and language preference. Idempotent.
func (c *Coordinator) LeaveRoom() {
	c.capture.Stop()

	c.mu.Lock()
	ch := c.ch
	wasInRoom := c.roomCode != "" || ch != nil
	c.ch = nil
	c.roomCode = ""
	c.role = RoleNone
	c.language = ""
	c.mu.Unlock()

	if ch != nil {
		ch.Close()
	}
	if wasInRoom {
		c.emitEvent(events.NewRoomLeft())
	}
}

// StartCapture begins streaming microphone audio into the room. Only the
// host may capture; frames produced before the channel is connected are
// dropped.
func (c *Coordinator) StartCapture(ctx context.Context) error {
	if c.Role() != RoleHost {
		return fmt.Errorf("audio capture requires the host role")
	}
	return c.capture.Start(ctx)
}

// StopCapture releases the capture stream. Idempotent and safe to call when
// capture never started.
func (c *Coordinator) StopCapture() {
	c.capture.Stop()
}

func (c *Coordinator) sendAudioFrame(frame []byte) {
	c.mu.Lock()
	ch := c.ch
	c.mu.Unlock()

	if ch == nil {
		return
	}
	if err := ch.SendAudio(frame); err != nil {
		logger.Warn("failed to send audio frame", "error", err)
	}
}

func (c *Coordinator) onConnected() {
	c.mu.Lock()
	role := c.role
	language := c.language
	ch := c.ch
	c.mu.Unlock()

	// The pending-preference contract: a language selected before the
	// channel finished connecting is sent now, exactly once.
	if role == RoleParticipant && language != "" && ch != nil {
		if err := ch.Send(protocol.NewLanguagePreference(language)); err != nil {
			logger.Warn("failed to send pending language preference", "language", language, "error", err)
		}
	}

	c.emitEvent(events.NewRoomConnectionStateChanged(string(channel.Connected)))
}

func (c *Coordinator) onClosed() {
	c.emitEvent(events.NewRoomConnectionStateChanged(string(channel.Disconnected)))
}
