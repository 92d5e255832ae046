package channel

import (
	"time"

	"github.com/koscakluka/liveroom-core/core/protocol"
)

type Option func(*Duplex)

// WithKeepalive enables the participant keepalive ping. Host channels run
// without one: a host is presumed continuously active while streaming audio.
func WithKeepalive(interval time.Duration) Option {
	return func(d *Duplex) {
		d.keepalive = true
		if interval > 0 {
			d.keepaliveInterval = interval
		}
	}
}

// WithConnectedCallback registers a callback fired once the handshake
// completes.
func WithConnectedCallback(callback func()) Option {
	return func(d *Duplex) {
		if callback != nil {
			d.onConnected = callback
		}
	}
}

// WithClosedCallback registers a callback fired exactly once when the
// channel reaches Disconnected, regardless of which side closed it.
func WithClosedCallback(callback func()) Option {
	return func(d *Duplex) {
		if callback != nil {
			d.onClosed = callback
		}
	}
}

// WithMessageCallback registers the inbound message handler. Messages are
// delivered one at a time in transport order.
func WithMessageCallback(callback func(protocol.Message)) Option {
	return func(d *Duplex) {
		if callback != nil {
			d.onMessage = callback
		}
	}
}
