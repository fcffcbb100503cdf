// Package ws pushes entity-changed events to connected dashboards over
// WebSocket. The owner dashboard refetches dependent views when an event for
// its owner arrives; no polling.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/events"
	"github.com/skyharboraero/flightline-backend/internal/models"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// Message is the wire envelope for pushed events.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Client is one connected dashboard. Owners only receive events scoped to
// their own records; admins receive everything.
type Client struct {
	send    chan []byte
	userID  uuid.UUID
	isAdmin bool
}

// Hub fans bus events out to WebSocket clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	bus     *events.Bus
}

func NewHub(bus *events.Bus) *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		bus:     bus,
	}
}

// Run subscribes to all bus topics and forwards events until done closes.
func (h *Hub) Run(done chan struct{}) {
	ch, unsubscribe := h.bus.Subscribe()
	defer unsubscribe()

	for {
		select {
		case evt := <-ch:
			h.broadcast(evt)
		case <-done:
			return
		}
	}
}

func (h *Hub) broadcast(evt events.Event) {
	payload, err := json.Marshal(Message{Type: evt.Topic + "-changed", Data: evt})
	if err != nil {
		slog.Error("failed to marshal ws event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if !client.isAdmin && client.userID != evt.OwnerID {
			continue
		}
		select {
		case client.send <- payload:
		default:
			// client buffer full, drop the event; the next refetch catches up
		}
	}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
	slog.Info("ws client connected", "user_id", client.userID)
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	if h.clients[client] {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()
	slog.Info("ws client disconnected", "user_id", client.userID)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Serve upgrades the connection and pumps events to it. userID and role come
// from the JWT validated before the upgrade.
func (h *Hub) Serve(conn *websocket.Conn, userID uuid.UUID, role string) {
	client := &Client{
		send:    make(chan []byte, 64),
		userID:  userID,
		isAdmin: role == models.RoleAdmin,
	}
	h.register(client)
	defer h.unregister(client)

	if welcome, err := json.Marshal(Message{Type: "welcome"}); err == nil {
		conn.WriteMessage(websocket.TextMessage, welcome)
	}

	// reader: we ignore inbound payloads, but need the read loop for close
	// and pong handling
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case payload, ok := <-client.send:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
