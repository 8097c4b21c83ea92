package websocket

import (
	"net/http"
	"strings"
	"time"
	"vigia/models"
	"vigia/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 1024

	// Buffer size for client send channel
	sendBufferSize = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// The dashboard is served from known origins; CORS middleware
		// already gates the HTTP surface.
		return true
	},
}

// Client is one connected dashboard. Dashboards are read-mostly: the
// only inbound traffic is the subscription list on the query string and
// keepalive pongs.
type Client struct {
	conn *websocket.Conn
	hub  *Hub

	connectionID string
	connectedAt  time.Time

	// Buffered channel of outbound messages
	send chan models.WSMessage

	// Event types this client asked for; empty means everything.
	subscriptions map[string]bool

	limiter *utils.RateLimiter
}

// Serve upgrades the request and runs the read/write pumps. The optional
// "events" query parameter narrows which broadcasts the client receives
// (comma-separated event types).
func Serve(hub *Hub, w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		conn:          conn,
		hub:           hub,
		connectionID:  utils.GenerateUUID(),
		connectedAt:   time.Now(),
		send:          make(chan models.WSMessage, sendBufferSize),
		subscriptions: parseSubscriptions(r.URL.Query().Get("events")),
		limiter:       utils.NewRateLimiter(60, time.Minute),
	}

	hub.register <- client

	go client.writePump()
	go client.readPump()

	return nil
}

func parseSubscriptions(raw string) map[string]bool {
	subs := make(map[string]bool)
	for _, event := range strings.Split(raw, ",") {
		event = strings.TrimSpace(event)
		if event != "" {
			subs[event] = true
		}
	}
	return subs
}

func (c *Client) wants(eventType string) bool {
	if len(c.subscriptions) == 0 {
		return true
	}
	return c.subscriptions[eventType]
}

// readPump drains inbound frames to keep the connection's control
// handlers running; dashboards send nothing we act on.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.Debugf("WebSocket client %s read error: %v", c.connectionID, err)
			}
			return
		}
		if !c.limiter.Allow() {
			logrus.Warnf("WebSocket client %s exceeded inbound rate limit", c.connectionID)
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				logrus.Debugf("WebSocket client %s write error: %v", c.connectionID, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
