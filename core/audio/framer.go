package audio

// DefaultFrameSize is 100ms of linear16 audio at the default sample rate.
const DefaultFrameSize = DefaultSampleRate * 2 / 10

// Framer slices an arbitrary stream of capture callbacks into fixed-size
// binary frames, preserving byte order. Device callbacks rarely line up with
// the wire frame size, so leftovers are carried into the next push.
type Framer struct {
	size     int
	leftover []byte
}

func NewFramer(size int) *Framer {
	if size <= 0 {
		size = DefaultFrameSize
	}
	return &Framer{size: size}
}

// Push appends the chunk to any leftover bytes and emits complete frames in
// order. The emitted slices are detached from the input.
func (f *Framer) Push(chunk []byte, emit func(frame []byte)) {
	f.leftover = append(f.leftover, chunk...)

	for len(f.leftover) >= f.size {
		frame := make([]byte, f.size)
		copy(frame, f.leftover[:f.size])
		f.leftover = f.leftover[f.size:]
		emit(frame)
	}
}

// Reset drops any partially accumulated frame. Called when capture stops so
// a later session never starts with stale audio.
func (f *Framer) Reset() {
	f.leftover = nil
}
