package controllers

import (
	"vigia/utils"
	"vigia/websocket"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type WebSocketController struct {
	hub *websocket.Hub
}

func NewWebSocketController(hub *websocket.Hub) *WebSocketController {
	return &WebSocketController{
		hub: hub,
	}
}

// HandleConnection upgrades the request to a WebSocket connection
// @Summary Live updates
// @Description Subscribe to dashboard and alert-feed pushes; filter with ?events=dashboard_snapshot,alert_feed
// @Tags WebSocket
// @Param events query string false "Comma-separated event types"
// @Success 101
// @Router /ws [get]
func (wc *WebSocketController) HandleConnection(c *gin.Context) {
	if err := websocket.Serve(wc.hub, c.Writer, c.Request); err != nil {
		logrus.Errorf("WebSocket upgrade failed: %v", err)
	}
}

// GetHubStats reports live connection counters
// @Summary WebSocket stats
// @Description Get connection and broadcast counters for the live hub
// @Tags WebSocket
// @Produce json
// @Success 200 {object} models.APIResponse{data=websocket.HubStats}
// @Router /ws/stats [get]
func (wc *WebSocketController) GetHubStats(c *gin.Context) {
	stats := wc.hub.GetStats()
	utils.SuccessResponse(c, "Hub stats retrieved", &stats)
}
