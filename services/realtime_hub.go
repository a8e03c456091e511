package services

import (
	"encoding/json"
	"sync"

	"github.com/ahmad-zhafir/ReFeed-sub001/models"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub pushes listing changes to subscribed farmer sessions, standing
// in for the document-store snapshot listeners the web client used to hold.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	if c.Conn != nil {
		_ = c.Conn.Close()
	}
}

func (h *RealtimeHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastListing fans a listing event out to every subscriber. Write
// failures are left for each connection's read loop to clean up.
func (h *RealtimeHub) BroadcastListing(kind string, listing *models.Listing) {
	msg, _ := json.Marshal(map[string]any{
		"kind":    kind,
		"listing": listing,
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c.Conn != nil {
			_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
		}
	}
}
