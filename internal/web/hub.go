package web

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Hub tracks connected browsers and fans frames out to them.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	timeout time.Duration
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{}), timeout: 3 * time.Second}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) snapshot() []*websocket.Conn {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	return conns
}

// Broadcast writes message to every client in parallel and returns once each
// write finished or timed out. Clients that failed are closed and dropped.
func (h *Hub) Broadcast(message []byte) {
	conns := h.snapshot()

	var wg sync.WaitGroup
	failed := make([]bool, len(conns))
	for i, conn := range conns {
		wg.Add(1)
		go func(i int, conn *websocket.Conn) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
			defer cancel()
			failed[i] = conn.Write(ctx, websocket.MessageText, message) != nil
		}(i, conn)
	}
	wg.Wait()

	for i, conn := range conns {
		if failed[i] {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			h.Remove(conn)
		}
	}
}
