package session

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestStartCaptureRequiresHostRole(t *testing.T) {
	registry := &registryStub{}
	coordinator := NewCoordinator(
		WithRoomRegistry(registry),
		WithDialer(&dialerStub{}),
		WithAudioInput(&captureStub{}),
	)

	if err := coordinator.StartCapture(context.Background()); err == nil {
		t.Fatalf("expected capture to be refused outside a room")
	}

	if err := coordinator.JoinRoom(context.Background(), "ABCDE"); err != nil {
		t.Fatalf("expected join to succeed, got %v", err)
	}
	if err := coordinator.StartCapture(context.Background()); err == nil {
		t.Fatalf("expected capture to be refused for a participant")
	}
}

func TestStartCaptureWithoutInputFails(t *testing.T) {
	registry := &registryStub{code: "ABCDE"}
	coordinator := NewCoordinator(WithRoomRegistry(registry), WithDialer(&dialerStub{}))

	if err := coordinator.CreateRoom(context.Background()); err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if err := coordinator.StartCapture(context.Background()); !errors.Is(err, ErrCaptureInitFailed) {
		t.Fatalf("expected ErrCaptureInitFailed, got %v", err)
	}
}

func TestStartCaptureFailureLeavesControlsResettable(t *testing.T) {
	registry := &registryStub{code: "ABCDE"}
	input := &captureStub{startErr: errors.New("device busy")}
	coordinator := NewCoordinator(
		WithRoomRegistry(registry),
		WithDialer(&dialerStub{}),
		WithAudioInput(input),
	)

	if err := coordinator.CreateRoom(context.Background()); err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	if err := coordinator.StartCapture(context.Background()); !errors.Is(err, ErrCaptureInitFailed) {
		t.Fatalf("expected ErrCaptureInitFailed, got %v", err)
	}
	if coordinator.capture.IsCapturing() {
		t.Fatalf("expected capture to be off after a failed start")
	}

	input.mu.Lock()
	input.startErr = nil
	input.mu.Unlock()

	if err := coordinator.StartCapture(context.Background()); err != nil {
		t.Fatalf("expected a retry to succeed once the device frees up, got %v", err)
	}
	if !coordinator.capture.IsCapturing() {
		t.Fatalf("expected capture to be on after a successful start")
	}
}

func TestCaptureFramesForwardedInFixedSizes(t *testing.T) {
	registry := &registryStub{code: "ABCDE"}
	dialer := &dialerStub{}
	input := &captureStub{}

	coordinator := NewCoordinator(
		WithRoomRegistry(registry),
		WithDialer(dialer),
		WithAudioInput(input),
		WithFrameSize(4),
	)

	if err := coordinator.CreateRoom(context.Background()); err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if err := coordinator.StartCapture(context.Background()); err != nil {
		t.Fatalf("expected capture to start, got %v", err)
	}

	input.push([]byte{1, 2, 3})
	input.push([]byte{4, 5, 6, 7, 8, 9})

	frames := dialer.latest().binaryFrames()
	if len(frames) != 2 {
		t.Fatalf("expected 2 full frames, got %d", len(frames))
	}
	if !bytes.Equal(frames[0], []byte{1, 2, 3, 4}) || !bytes.Equal(frames[1], []byte{5, 6, 7, 8}) {
		t.Fatalf("expected fixed-size frames in capture order, got %v", frames)
	}
}

func TestStopCaptureIsIdempotentAndDropsLeftover(t *testing.T) {
	registry := &registryStub{code: "ABCDE"}
	dialer := &dialerStub{}
	input := &captureStub{}

	coordinator := NewCoordinator(
		WithRoomRegistry(registry),
		WithDialer(dialer),
		WithAudioInput(input),
		WithFrameSize(4),
	)

	coordinator.StopCapture()

	if err := coordinator.CreateRoom(context.Background()); err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if err := coordinator.StartCapture(context.Background()); err != nil {
		t.Fatalf("expected capture to start, got %v", err)
	}

	input.push([]byte{1, 2, 3})
	coordinator.StopCapture()
	coordinator.StopCapture()

	input.mu.Lock()
	stops := input.stopped
	input.mu.Unlock()
	if stops != 1 {
		t.Fatalf("expected exactly one device stop, got %d", stops)
	}

	if err := coordinator.StartCapture(context.Background()); err != nil {
		t.Fatalf("expected capture to restart, got %v", err)
	}
	input.push([]byte{9, 9, 9, 9})

	frames := dialer.latest().binaryFrames()
	if len(frames) != 1 || !bytes.Equal(frames[0], []byte{9, 9, 9, 9}) {
		t.Fatalf("expected the pre-stop leftover to be dropped, got %v", frames)
	}
}

func TestLeaveRoomStopsCapture(t *testing.T) {
	registry := &registryStub{code: "ABCDE"}
	input := &captureStub{}
	coordinator := NewCoordinator(
		WithRoomRegistry(registry),
		WithDialer(&dialerStub{}),
		WithAudioInput(input),
	)

	if err := coordinator.CreateRoom(context.Background()); err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if err := coordinator.StartCapture(context.Background()); err != nil {
		t.Fatalf("expected capture to start, got %v", err)
	}

	coordinator.LeaveRoom()

	if coordinator.capture.IsCapturing() {
		t.Fatalf("expected leaving the room to stop capture")
	}

	deadline := time.Now().Add(time.Second)
	for {
		input.mu.Lock()
		stops := input.stopped
		input.mu.Unlock()
		if stops == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected the device to be stopped on leave, got %d stops", stops)
		}
		time.Sleep(time.Millisecond)
	}
}
