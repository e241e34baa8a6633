package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealtimeHub_Broadcast(t *testing.T) {
	hub := NewRealtimeHub()
	registered := make(chan *WSClient, 1)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := &WSClient{Conn: conn}
		hub.Register(cl)
		registered <- cl
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	cl := <-registered
	assert.Equal(t, 1, hub.Len())

	hub.Broadcast(DiaryEvent{Kind: "water.deleted", ID: "abc"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev map[string]any
	require.NoError(t, json.Unmarshal(msg, &ev))
	assert.Equal(t, "water.deleted", ev["kind"])
	assert.Equal(t, "abc", ev["id"])
	assert.NotContains(t, ev, "entry")

	hub.Unregister(cl)
	hub.Unregister(cl)
	assert.Equal(t, 0, hub.Len())
}

func wsPair(t *testing.T) (server, client *websocket.Conn) {
	t.Helper()
	accepted := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		accepted <- conn
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	return <-accepted, client
}

func TestRealtimeHub_StalledClientDoesNotBlockBroadcast(t *testing.T) {
	hub := NewRealtimeHub()
	server, client := wsPair(t)
	defer client.Close()

	// no writer drains this queue
	stalled := &WSClient{Conn: server, send: make(chan []byte)}
	hub.mu.Lock()
	hub.clients[stalled] = struct{}{}
	hub.mu.Unlock()

	done := make(chan struct{})
	go func() {
		hub.Broadcast(DiaryEvent{Kind: "food.created", ID: "1"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast waited on a stalled client")
	}
	assert.Equal(t, 0, hub.Len())

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := client.ReadMessage()
	assert.Error(t, err)
}

func TestRealtimeHub_DeliversInOrder(t *testing.T) {
	hub := NewRealtimeHub()
	server, client := wsPair(t)
	defer client.Close()

	cl := &WSClient{Conn: server}
	hub.Register(cl)
	hub.Register(cl)
	defer hub.Unregister(cl)

	for _, id := range []string{"1", "2", "3"} {
		hub.Broadcast(DiaryEvent{Kind: "water.created", ID: id})
	}

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	for _, want := range []string{"1", "2", "3"} {
		_, msg, err := client.ReadMessage()
		require.NoError(t, err)
		var ev DiaryEvent
		require.NoError(t, json.Unmarshal(msg, &ev))
		assert.Equal(t, want, ev.ID)
	}
}
