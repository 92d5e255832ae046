package audio

import (
	"bytes"
	"testing"
)

func TestFramerEmitsFixedSizeFramesInOrder(t *testing.T) {
	framer := NewFramer(4)

	frames := [][]byte{}
	emit := func(frame []byte) { frames = append(frames, frame) }

	framer.Push([]byte{1, 2, 3}, emit)
	if len(frames) != 0 {
		t.Fatalf("expected no frame before enough bytes accumulate, got %d", len(frames))
	}

	framer.Push([]byte{4, 5, 6, 7, 8, 9}, emit)
	if len(frames) != 2 {
		t.Fatalf("expected two complete frames, got %d", len(frames))
	}
	if !bytes.Equal(frames[0], []byte{1, 2, 3, 4}) || !bytes.Equal(frames[1], []byte{5, 6, 7, 8}) {
		t.Fatalf("expected byte order to be preserved, got %v", frames)
	}

	framer.Push([]byte{10, 11, 12}, emit)
	if len(frames) != 3 || !bytes.Equal(frames[2], []byte{9, 10, 11, 12}) {
		t.Fatalf("expected leftover bytes to carry over, got %v", frames)
	}
}

func TestFramerResetDropsLeftover(t *testing.T) {
	framer := NewFramer(4)

	frames := 0
	emit := func([]byte) { frames++ }

	framer.Push([]byte{1, 2, 3}, emit)
	framer.Reset()
	framer.Push([]byte{4, 5, 6, 7}, emit)

	if frames != 1 {
		t.Fatalf("expected exactly one frame after reset, got %d", frames)
	}
}

func TestFramerEmittedFramesAreDetached(t *testing.T) {
	framer := NewFramer(2)

	var captured []byte
	source := []byte{1, 2}
	framer.Push(source, func(frame []byte) { captured = frame })

	source[0] = 99
	if captured[0] != 1 {
		t.Fatalf("expected emitted frame to be detached from the input, got %v", captured)
	}
}
