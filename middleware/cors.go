package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowAllOrigins  bool
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// DefaultCORSConfig allows the local dashboard dev servers
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowAllOrigins: false,
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
		},
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Accept",
			"Cache-Control",
			"X-Requested-With",
		},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// CORS returns a CORS middleware with the given configuration
func CORS(config CORSConfig) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if c.Request.Method == "OPTIONS" {
			handlePreflightRequest(c, config, origin)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		handleActualRequest(c, config, origin)
		c.Next()
	})
}

func handlePreflightRequest(c *gin.Context, config CORSConfig, origin string) {
	if !isOriginAllowed(config, origin) {
		logrus.Warnf("CORS: Origin not allowed: %s", origin)
		return
	}

	setAllowOrigin(c, config, origin)

	if config.AllowCredentials {
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if len(config.AllowMethods) > 0 {
		c.Header("Access-Control-Allow-Methods", strings.Join(config.AllowMethods, ", "))
	}
	if len(config.AllowHeaders) > 0 {
		c.Header("Access-Control-Allow-Headers", strings.Join(config.AllowHeaders, ", "))
	}
	if config.MaxAge > 0 {
		c.Header("Access-Control-Max-Age", strconv.Itoa(int(config.MaxAge.Seconds())))
	}
}

func handleActualRequest(c *gin.Context, config CORSConfig, origin string) {
	if !isOriginAllowed(config, origin) {
		return
	}

	setAllowOrigin(c, config, origin)

	if config.AllowCredentials {
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if len(config.ExposeHeaders) > 0 {
		c.Header("Access-Control-Expose-Headers", strings.Join(config.ExposeHeaders, ", "))
	}

	// Vary ensures caches keep per-origin responses apart
	c.Header("Vary", "Origin")
}

func setAllowOrigin(c *gin.Context, config CORSConfig, origin string) {
	if config.AllowCredentials {
		c.Header("Access-Control-Allow-Origin", origin)
	} else if config.AllowAllOrigins {
		c.Header("Access-Control-Allow-Origin", "*")
	} else if origin != "" {
		c.Header("Access-Control-Allow-Origin", origin)
	}
}

// isOriginAllowed checks if the origin is allowed
func isOriginAllowed(config CORSConfig, origin string) bool {
	if config.AllowAllOrigins {
		return true
	}
	if origin == "" {
		return false
	}

	for _, allowedOrigin := range config.AllowOrigins {
		if allowedOrigin == "*" || allowedOrigin == origin {
			return true
		}
		// Support wildcard subdomains (e.g., *.example.com)
		if strings.HasPrefix(allowedOrigin, "*.") {
			domain := allowedOrigin[2:]
			if strings.HasSuffix(origin, "."+domain) || origin == domain {
				return true
			}
		}
	}

	return false
}

// DevelopmentCORS returns permissive CORS for development
func DevelopmentCORS() gin.HandlerFunc {
	config := CORSConfig{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return CORS(config)
}

// CORSMiddleware selects the CORS configuration for the environment
func CORSMiddleware(environment string) gin.HandlerFunc {
	switch environment {
	case "development":
		return DevelopmentCORS()
	default:
		return CORS(DefaultCORSConfig())
	}
}
