package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gws "github.com/gorilla/websocket"
)

func dialHub(t *testing.T, hub *Hub) (*httptest.Server, *gws.Conn) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(hub.Serve))
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial error: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return srv, conn
}

func TestHubBroadcastReachesClient(t *testing.T) {
	hub := NewHub()
	srv, conn := dialHub(t, hub)
	defer srv.Close()
	defer conn.Close()

	hub.BroadcastLocation(map[string]any{"salesName": "Andi", "latitude": -6.2})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read error: %v", err)
	}

	var evt Event
	if err := json.Unmarshal(msg, &evt); err != nil {
		t.Fatalf("bad event payload: %v", err)
	}
	if evt.Type != "location" {
		t.Fatalf("unexpected event type %q", evt.Type)
	}
}

func TestHubUnregistersOnClose(t *testing.T) {
	hub := NewHub()
	srv, conn := dialHub(t, hub)
	defer srv.Close()

	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client never unregistered after close")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
