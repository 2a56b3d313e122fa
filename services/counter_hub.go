// services/counter_hub.go
package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSClient is one connected page.
type WSClient struct {
	Conn *websocket.Conn
}

// CounterHub fans the authoritative daily counter out to every open page,
// so no page keeps its own cached dedup set. Single-user app: one broadcast
// group.
type CounterHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

// Counter is the process-wide hub.
var Counter = NewCounterHub()

func NewCounterHub() *CounterHub {
	return &CounterHub{clients: make(map[*WSClient]struct{})}
}

func (h *CounterHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *CounterHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastCount pushes the current ledger day and count to every client.
func (h *CounterHub) BroadcastCount(date string, count int) {
	msg, _ := json.Marshal(map[string]interface{}{"date": date, "count": count})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
