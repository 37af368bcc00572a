package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/xelth-com/eckportgo/internal/models"
)

// Hub maintains the set of connected dashboards and pushes alert updates to
// all of them.
type Hub struct {
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]*Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			log.Printf("📡 Suscriptor de alertas conectado: %s", client.ID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
				log.Printf("📴 Suscriptor de alertas desconectado: %s", client.ID)
			}
			h.mu.Unlock()
		}
	}
}

type alertaMensaje struct {
	Type   string         `json:"type"`
	Alerta *models.Alerta `json:"alerta"`
}

// AlertaActualizada broadcasts an alert status change to every subscriber.
// Slow subscribers are dropped rather than blocking the update path.
func (h *Hub) AlertaActualizada(a *models.Alerta) {
	payload, err := json.Marshal(alertaMensaje{Type: "alerta_actualizada", Alerta: a})
	if err != nil {
		log.Printf("⚠️  No se pudo serializar la alerta %d: %v", a.ID, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, client := range h.clients {
		select {
		case client.send <- payload:
		default:
			log.Printf("⚠️  Suscriptor %s no responde, descartando mensaje", id)
		}
	}
}

// Count returns the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
