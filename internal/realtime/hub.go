package realtime

import (
	"encoding/json"
	"sync"

	"github.com/vitrina-app/vitrina-backend/pkg/logger"
)

// Event tells connected storefront clients that a collection changed and
// should be re-fetched. Best-effort fan-out: no replay, no acks.
type Event struct {
	Event string `json:"event"`
}

// Hub manages websocket connections and broadcasts change events.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		broadcast:  make(chan []byte, 256),
	}
}

// Run processes registrations and broadcasts. Call in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("Realtime client connected", map[string]interface{}{
				"total_clients": total,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("Realtime client disconnected", map[string]interface{}{
				"total_clients": total,
			})

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Send buffer full: drop the client asynchronously.
					go h.Unregister(client)
					logger.Warn("Realtime client send buffer full, disconnecting", nil)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Notify broadcasts that a collection was updated ("products.updated",
// "reviews.updated", ...). Messages are dropped if the broadcast buffer
// is full; clients will catch up on their next reload.
func (h *Hub) Notify(collection string) {
	data, err := json.Marshal(Event{Event: collection + ".updated"})
	if err != nil {
		logger.Error("Failed to marshal realtime event", err, nil)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		logger.Warn("Realtime broadcast buffer full, event dropped", map[string]interface{}{
			"collection": collection,
		})
	}
}

// Register queues a client for registration
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister queues a client for removal
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
