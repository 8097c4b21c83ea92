package models

import "time"

// Standard API Response wrapper
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Health Check Response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
}

// WSMessage is the envelope pushed to dashboard clients over the live feed.
type WSMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Sequence  uint64      `json:"sequence,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Live feed event types.
const (
	WSEventDashboard = "dashboard_snapshot"
	WSEventAlertFeed = "alert_feed"
)

// Error Response Codes
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeConflict   = "CONFLICT"
	ErrCodeRateLimit  = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeExternal   = "EXTERNAL_SERVICE_ERROR"
)
