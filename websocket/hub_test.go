package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"vigia/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, string, func()) {
	t.Helper()

	hub := NewHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := Serve(hub, w, r); err != nil {
			t.Errorf("upgrade failed: %v", err)
		}
	}))

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	return hub, wsURL, func() {
		hub.Shutdown()
		server.Close()
	}
}

func dial(t *testing.T, wsURL string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) models.WSMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var message models.WSMessage
	require.NoError(t, conn.ReadJSON(&message))
	return message
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.GetStats().ActiveConnections == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("never reached %d active connections", want)
}

func TestHub_BroadcastReachesClient(t *testing.T) {
	hub, wsURL, teardown := startHub(t)
	defer teardown()

	conn := dial(t, wsURL)
	defer conn.Close()
	waitForClients(t, hub, 1)

	hub.BroadcastDashboard(models.DashboardSnapshot{TotalDrivers: 3}, 7)

	message := readMessage(t, conn)
	assert.Equal(t, models.WSEventDashboard, message.Type)
	assert.Equal(t, uint64(7), message.Sequence)

	data, ok := message.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), data["total_conductores"])
}

func TestHub_SubscriptionFiltering(t *testing.T) {
	hub, wsURL, teardown := startHub(t)
	defer teardown()

	conn := dial(t, wsURL+"?events="+models.WSEventAlertFeed)
	defer conn.Close()
	waitForClients(t, hub, 1)

	// The dashboard frame is filtered out; only the feed arrives.
	hub.BroadcastDashboard(models.DashboardSnapshot{}, 1)
	hub.BroadcastAlertFeed(models.AlertFeed{}, 2)

	message := readMessage(t, conn)
	assert.Equal(t, models.WSEventAlertFeed, message.Type)
	assert.Equal(t, uint64(2), message.Sequence)
}

func TestHub_TracksConnections(t *testing.T) {
	hub, wsURL, teardown := startHub(t)
	defer teardown()

	first := dial(t, wsURL)
	second := dial(t, wsURL)
	waitForClients(t, hub, 2)

	assert.Equal(t, int64(2), hub.GetStats().TotalConnections)

	first.Close()
	waitForClients(t, hub, 1)
	second.Close()
	waitForClients(t, hub, 0)

	// Total is cumulative, not current.
	assert.Equal(t, int64(2), hub.GetStats().TotalConnections)
}
