package controllers

import (
	"context"
	"time"

	"vigia/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"net/http"
)

type HealthController struct {
	redis     *redis.Client
	version   string
	startTime time.Time
}

func NewHealthController(redisClient *redis.Client, version string) *HealthController {
	return &HealthController{
		redis:     redisClient,
		version:   version,
		startTime: time.Now(),
	}
}

// HealthCheck reports service health
// @Summary Health check
// @Description Get service health and dependency status
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (hc *HealthController) HealthCheck(c *gin.Context) {
	services := make(map[string]string)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if hc.redis != nil {
		if err := hc.redis.Ping(ctx).Err(); err != nil {
			services["redis"] = "unhealthy"
		} else {
			services["redis"] = "healthy"
		}
	}

	uptime := time.Since(hc.startTime).Round(time.Second).String()
	response := utils.HealthCheckResponse(services, hc.version, uptime)

	c.JSON(http.StatusOK, response)
}
