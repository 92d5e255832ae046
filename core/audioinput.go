package session

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/koscakluka/liveroom-core/core/audio"
)

// AudioInput is the microphone capture surface the coordinator needs.
// Concrete clients live in core/audio/miniaudio and core/audio/portaudio.
type AudioInput interface {
	EncodingInfo() audio.EncodingInfo
	StartCapture(ctx context.Context, onAudio func(audio []byte)) error
	StopCapture() error
	Close()
}

// audioCapture normalizes capture behavior over the configured input
// client: it slices device callbacks into fixed-size frames and forwards
// them, in order, to the session channel. Frames produced while the channel
// is not connected are dropped by the channel itself; there is no
// backpressure buffer.
type audioCapture struct {
	client AudioInput
	framer *audio.Framer

	// capturing reports whether the input client is currently capturing.
	capturing atomic.Bool

	onFrame func(frame []byte)
}

func newAudioCapture(client AudioInput, onFrame func(frame []byte)) *audioCapture {
	if onFrame == nil {
		onFrame = func([]byte) {}
	}

	return &audioCapture{
		client:  client,
		framer:  audio.NewFramer(audio.DefaultFrameSize),
		onFrame: onFrame,
	}
}

func (a *audioCapture) Set(client AudioInput) {
	if a == nil {
		return
	}
	a.client = client
}

func (a *audioCapture) SetFrameSize(size int) {
	if a == nil {
		return
	}
	a.framer = audio.NewFramer(size)
}

func (a *audioCapture) IsCapturing() bool { return a != nil && a.capturing.Load() }

// Start acquires the capture stream. On any setup failure the controls are
// left in their pre-start state and the error wraps [ErrCaptureInitFailed].
func (a *audioCapture) Start(ctx context.Context) error {
	if a.client == nil {
		return fmt.Errorf("%w: no audio input configured", ErrCaptureInitFailed)
	}

	if !a.capturing.CompareAndSwap(false, true) {
		return nil
	}

	if err := a.client.StartCapture(ctx, a.onAudio); err != nil {
		a.capturing.Store(false)
		a.framer.Reset()
		return fmt.Errorf("%w: %v", ErrCaptureInitFailed, err)
	}

	return nil
}

// Stop releases the capture stream and drops any partially accumulated
// frame. Idempotent and safe to call when capture never started.
func (a *audioCapture) Stop() {
	if a == nil || !a.capturing.CompareAndSwap(true, false) {
		return
	}

	if err := a.client.StopCapture(); err != nil {
		logger.Warn("failed to stop audio capture", "error", err)
	}
	a.framer.Reset()
}

func (a *audioCapture) onAudio(chunk []byte) {
	if !a.capturing.Load() {
		return
	}

	a.framer.Push(chunk, a.onFrame)
}
