// Package channel owns the single bidirectional connection carrying protocol
// messages and audio frames for one session.
//
// A Duplex is single-use: Open moves it through Connecting into Connected,
// and any close or transport error, local or remote, lands it in
// Disconnected for good. Re-establishing a session requires a fresh room
// join with a fresh Duplex.
package channel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/codes"

	"github.com/koscakluka/liveroom-core/core/protocol"
)

type State string

const (
	Disconnected State = "disconnected"
	Connecting   State = "connecting"
	Connected    State = "connected"
)

// DefaultKeepaliveInterval is how often a participant channel pings the
// server to keep an otherwise idle connection open.
const DefaultKeepaliveInterval = 30 * time.Second

// Conn is the transport surface the channel needs. *websocket.Conn satisfies
// it; tests substitute scripted fakes so delivery order and cancellation can
// be exercised without a live transport.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Dialer establishes the transport connection for one session identity.
type Dialer interface {
	Dial(ctx context.Context, identity string) (Conn, error)
}

// Duplex is one physical connection per session, addressed by the session's
// identity at open time.
type Duplex struct {
	identity string
	dialer   Dialer

	keepalive         bool
	keepaliveInterval time.Duration

	onConnected func()
	onClosed    func()
	onMessage   func(protocol.Message)

	mu     sync.Mutex
	conn   Conn
	state  State
	opened bool

	keepaliveStop chan struct{}
	closeOnce     sync.Once
}

func New(identity string, dialer Dialer, opts ...Option) *Duplex {
	d := &Duplex{
		identity:          identity,
		dialer:            dialer,
		keepaliveInterval: DefaultKeepaliveInterval,
		state:             Disconnected,
		keepaliveStop:     make(chan struct{}),
		onConnected:       func() {},
		onClosed:          func() {},
		onMessage:         func(protocol.Message) {},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Duplex) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Open dials the transport and transitions the channel to Connected. The
// connected callback fires before Open returns; a failed handshake lands the
// channel in Disconnected and fires the closed callback, same as any later
// close.
func (d *Duplex) Open(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "open channel")
	defer span.End()

	d.mu.Lock()
	if d.opened {
		d.mu.Unlock()
		return fmt.Errorf("channel instances are single-use, open a new one")
	}
	if d.dialer == nil {
		d.mu.Unlock()
		return fmt.Errorf("no dialer configured")
	}
	d.opened = true
	d.state = Connecting
	d.mu.Unlock()

	conn, err := d.dialer.Dial(ctx, d.identity)
	if err != nil {
		d.transitionClosed()
		recordedErr := fmt.Errorf("failed to open channel: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return recordedErr
	}

	d.mu.Lock()
	d.conn = conn
	d.state = Connected
	d.mu.Unlock()

	if d.keepalive {
		go d.runKeepalive()
	}
	go d.readLoop(conn)

	d.onConnected()
	return nil
}

// Send encodes and writes a text frame. A send on a channel that is not
// Connected is a silent no-op; callers are expected to check state, but the
// channel tolerates races.
func (d *Duplex) Send(msg protocol.Message) error {
	frame, err := protocol.Encode(msg)
	if err != nil {
		return err
	}
	return d.write(websocket.TextMessage, frame)
}

// SendAudio writes one raw binary audio frame. Frames sent before the
// channel is Connected are dropped, not queued.
func (d *Duplex) SendAudio(frame []byte) error {
	return d.write(websocket.BinaryMessage, frame)
}

func (d *Duplex) write(messageType int, frame []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != Connected || d.conn == nil {
		return nil
	}

	if err := d.conn.WriteMessage(messageType, frame); err != nil {
		return fmt.Errorf("failed to write to channel: %w", err)
	}
	return nil
}

// Close tears the connection down. It is idempotent; the closed callback and
// the Disconnected transition happen exactly once no matter which side
// initiated the close.
func (d *Duplex) Close() {
	d.mu.Lock()
	conn := d.conn
	d.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
	d.transitionClosed()
}

func (d *Duplex) readLoop(conn Conn) {
	defer func() {
		conn.Close()
		d.transitionClosed()
	}()

	for {
		messageType, frame, err := conn.ReadMessage()
		if err != nil {
			if !errors.Is(err, websocket.ErrCloseSent) &&
				!websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				logger.Debug("channel read ended", "identity", d.identity, "error", err)
			}
			return
		}

		if messageType == websocket.BinaryMessage {
			// Binary frames are host-outbound only; an inbound one carries
			// nothing we can route.
			continue
		}

		msg, err := protocol.Decode(frame)
		if err != nil {
			logger.Warn("dropping malformed frame", "identity", d.identity, "error", err)
			continue
		}

		d.onMessage(msg)
	}
}

// transitionClosed performs the one-shot Disconnected transition: state,
// keepalive cancellation, closed callback.
func (d *Duplex) transitionClosed() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.state = Disconnected
		d.conn = nil
		d.mu.Unlock()

		close(d.keepaliveStop)
		d.onClosed()
	})
}

func (d *Duplex) runKeepalive() {
	ticker := time.NewTicker(d.keepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.keepaliveStop:
			return
		case <-ticker.C:
			if err := d.Send(protocol.NewPing()); err != nil {
				logger.Warn("failed to send keepalive ping", "identity", d.identity, "error", err)
			}
		}
	}
}
