package channel

import (
	"context"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"
)

// WebsocketDialer opens gorilla websocket connections against a room server.
// The session identity is appended to the endpoint path, one connection per
// identity.
type WebsocketDialer struct {
	// Endpoint is the websocket base, e.g. "wss://example.com/ws".
	Endpoint string
}

func (d WebsocketDialer) Dial(ctx context.Context, identity string) (Conn, error) {
	endpoint := strings.TrimRight(d.Endpoint, "/") + "/" + identity

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}
	return conn, nil
}
