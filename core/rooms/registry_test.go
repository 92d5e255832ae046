package rooms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateRoomReturnsAllocatedCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/rooms/create/user-1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"room_code":"ABCDE"}`))
	}))
	defer server.Close()

	registry := NewHTTPRegistry(server.URL)

	code, err := registry.CreateRoom(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if code != "ABCDE" {
		t.Fatalf("expected room code ABCDE, got %q", code)
	}
}

func TestJoinRoomReturnsCanonicalCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rooms/join/ABCDE/user-2" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"room_code":"ABCDE"}`))
	}))
	defer server.Close()

	registry := NewHTTPRegistry(server.URL)

	code, err := registry.JoinRoom(context.Background(), "ABCDE", "user-2")
	if err != nil {
		t.Fatalf("expected join to succeed, got %v", err)
	}
	if code != "ABCDE" {
		t.Fatalf("expected room code ABCDE, got %q", code)
	}
}

func TestRegistryErrorsSurfaceStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "room not found", http.StatusNotFound)
	}))
	defer server.Close()

	registry := NewHTTPRegistry(server.URL)

	if _, err := registry.JoinRoom(context.Background(), "ZZZZZ", "user-2"); err == nil {
		t.Fatalf("expected join against a missing room to fail")
	}
}

func TestRegistryRejectsEmptyRoomCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	registry := NewHTTPRegistry(server.URL)

	if _, err := registry.CreateRoom(context.Background(), "user-1"); err == nil {
		t.Fatalf("expected a response without a room code to fail")
	}
}
