package websocket

import (
	"context"
	"sync"
	"time"
	"vigia/models"

	"github.com/sirupsen/logrus"
)

// Hub fans refreshed view models out to connected dashboard clients.
// There are no rooms: every client gets every broadcast, filtered only
// by its own subscriptions.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Broadcast messages to all clients
	broadcast chan models.WSMessage

	// Hub statistics
	stats HubStats

	// Mutex for thread safety
	mutex sync.RWMutex

	// Context for shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

type HubStats struct {
	TotalConnections  int64
	ActiveConnections int
	MessagesSent      int64
	StartTime         time.Time

	mutex sync.RWMutex
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan models.WSMessage, 64),
		stats: HubStats{
			StartTime: time.Now(),
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

func (h *Hub) Run() {
	logrus.Info("WebSocket Hub starting...")

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastToClients(message)

		case <-h.ctx.Done():
			logrus.Info("WebSocket Hub shutting down...")
			h.closeAllClients()
			return
		}
	}
}

func (h *Hub) Shutdown() {
	h.cancel()
}

// BroadcastDashboard pushes a fresh dashboard snapshot to every client.
func (h *Hub) BroadcastDashboard(snapshot models.DashboardSnapshot, sequence uint64) {
	h.enqueue(models.WSMessage{
		Type:      models.WSEventDashboard,
		Data:      snapshot,
		Sequence:  sequence,
		Timestamp: time.Now(),
	})
}

// BroadcastAlertFeed pushes a fresh alert feed to every client.
func (h *Hub) BroadcastAlertFeed(feed models.AlertFeed, sequence uint64) {
	h.enqueue(models.WSMessage{
		Type:      models.WSEventAlertFeed,
		Data:      feed,
		Sequence:  sequence,
		Timestamp: time.Now(),
	})
}

func (h *Hub) enqueue(message models.WSMessage) {
	select {
	case h.broadcast <- message:
	default:
		logrus.Warn("WebSocket broadcast queue full, dropping message")
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	h.clients[client] = true
	h.mutex.Unlock()

	h.stats.mutex.Lock()
	h.stats.TotalConnections++
	h.stats.ActiveConnections = len(h.clients)
	h.stats.mutex.Unlock()

	logrus.Debugf("WebSocket client %s connected (%d active)", client.connectionID, len(h.clients))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	active := len(h.clients)
	h.mutex.Unlock()

	h.stats.mutex.Lock()
	h.stats.ActiveConnections = active
	h.stats.mutex.Unlock()

	logrus.Debugf("WebSocket client %s disconnected (%d active)", client.connectionID, active)
}

func (h *Hub) broadcastToClients(message models.WSMessage) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	sent := int64(0)
	for client := range h.clients {
		if !client.wants(message.Type) {
			continue
		}
		select {
		case client.send <- message:
			sent++
		default:
			// Slow consumer: drop the frame rather than block the hub.
			logrus.Debugf("Dropping frame for slow client %s", client.connectionID)
		}
	}

	h.stats.mutex.Lock()
	h.stats.MessagesSent += sent
	h.stats.mutex.Unlock()
}

func (h *Hub) closeAllClients() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
}

// GetStats returns a copy of the hub counters for the health endpoint.
func (h *Hub) GetStats() HubStats {
	h.stats.mutex.RLock()
	defer h.stats.mutex.RUnlock()

	return HubStats{
		TotalConnections:  h.stats.TotalConnections,
		ActiveConnections: h.stats.ActiveConnections,
		MessagesSent:      h.stats.MessagesSent,
		StartTime:         h.stats.StartTime,
	}
}
