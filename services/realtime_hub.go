package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsWriteWait = 10 * time.Second
	// events queued per client before it is dropped as too slow
	wsSendBuffer = 32
)

// DiaryEvent is pushed to feed subscribers after an entry changes.
type DiaryEvent struct {
	Kind  string `json:"kind"` // "food.created" | "food.deleted" | "water.created" | "water.deleted"
	ID    string `json:"id"`
	Entry any    `json:"entry,omitempty"`
}

type WSClient struct {
	Conn *websocket.Conn
	mu   sync.Mutex
	send chan []byte
}

// Write serializes writes; a websocket connection allows one writer at a time.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.Conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return c.Conn.WriteMessage(messageType, data)
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{})}
}

// Register adds c and starts its writer. Events reach each client in
// broadcast order.
func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		h.mu.Unlock()
		return
	}
	if c.send == nil {
		c.send = make(chan []byte, wsSendBuffer)
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(c)
}

func (h *RealtimeHub) writeLoop(c *WSClient) {
	for msg := range c.send {
		if err := c.Write(websocket.TextMessage, msg); err != nil {
			h.Unregister(c)
			return
		}
	}
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	if ok {
		_ = c.Conn.Close()
	}
}

func (h *RealtimeHub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues ev for every connected client without waiting on the
// network. A client whose queue is full is disconnected.
func (h *RealtimeHub) Broadcast(ev DiaryEvent) {
	msg, err := json.Marshal(ev)
	if err != nil {
		return
	}
	var slow []*WSClient
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.Unregister(c)
	}
}
