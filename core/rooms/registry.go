// Package rooms consumes the external room registry: the service that maps
// five-letter room codes to sets of participant identities.
package rooms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/codes"
)

// Registry is the two-call surface the session layer needs. Both calls are
// idempotent on success.
type Registry interface {
	// CreateRoom allocates a room hosted by the given identity and returns
	// its code.
	CreateRoom(ctx context.Context, identity string) (string, error)
	// JoinRoom adds the identity to an existing room and returns the
	// canonical room code.
	JoinRoom(ctx context.Context, code, identity string) (string, error)
}

// HTTPRegistry talks to the registry's create/join endpoints.
type HTTPRegistry struct {
	baseURL string
	client  *http.Client
}

type HTTPRegistryOption func(*HTTPRegistry)

// WithHTTPClient overrides the default instrumented client.
func WithHTTPClient(client *http.Client) HTTPRegistryOption {
	return func(r *HTTPRegistry) {
		if client != nil {
			r.client = client
		}
	}
}

func NewHTTPRegistry(baseURL string, opts ...HTTPRegistryOption) *HTTPRegistry {
	registry := &HTTPRegistry{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}

	for _, opt := range opts {
		opt(registry)
	}

	return registry
}

func (r *HTTPRegistry) CreateRoom(ctx context.Context, identity string) (string, error) {
	ctx, span := tracer.Start(ctx, "create room")
	defer span.End()

	code, err := r.post(ctx, fmt.Sprintf("%s/api/rooms/create/%s", r.baseURL, url.PathEscape(identity)))
	if err != nil {
		recordedErr := fmt.Errorf("failed to create room: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return "", recordedErr
	}
	return code, nil
}

func (r *HTTPRegistry) JoinRoom(ctx context.Context, code, identity string) (string, error) {
	ctx, span := tracer.Start(ctx, "join room")
	defer span.End()

	roomCode, err := r.post(ctx, fmt.Sprintf("%s/api/rooms/join/%s/%s",
		r.baseURL, url.PathEscape(code), url.PathEscape(identity)))
	if err != nil {
		recordedErr := fmt.Errorf("failed to join room %s: %w", code, err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return "", recordedErr
	}
	return roomCode, nil
}

func (r *HTTPRegistry) post(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build registry request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("registry returned %s", resp.Status)
	}

	var body struct {
		RoomCode string `json:"room_code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode registry response: %w", err)
	}
	if body.RoomCode == "" {
		return "", fmt.Errorf("registry response is missing a room code")
	}

	return body.RoomCode, nil
}
