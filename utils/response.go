package utils

import (
	"net/http"
	"time"
	"vigia/models"

	"github.com/gin-gonic/gin"
)

// Success responses
func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, models.APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, models.APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

// NoContentResponse sends a 204 No Content response
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, message string, details interface{}) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Message: message,
		Error: &models.APIError{
			Code:    getErrorCode(statusCode),
			Message: message,
			Details: details,
		},
		Timestamp: time.Now(),
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message, nil)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found", nil)
}

func RateLimitResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusTooManyRequests, "Rate limit exceeded", nil)
}

func InternalServerErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, message, nil)
}

func ServiceUnavailableResponse(c *gin.Context, service string) {
	ErrorResponse(c, http.StatusServiceUnavailable, service+" service is currently unavailable", nil)
}

// ServiceErrorResponse maps a ServiceError (or any error) onto the API
// envelope, relaying upstream status codes where they exist.
func ServiceErrorResponse(c *gin.Context, err error) {
	if serviceErr, ok := GetServiceError(err); ok {
		ErrorResponse(c, serviceErr.StatusCode, serviceErr.Message, nil)
		return
	}
	InternalServerErrorResponse(c, err.Error())
}

func ValidationErrorResponse(c *gin.Context, validationErrors []ValidationError) {
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Success: false,
		Message: "Validation failed",
		Error: &models.APIError{
			Code:    models.ErrCodeValidation,
			Message: "Validation failed",
			Details: validationErrors,
		},
		Timestamp: time.Now(),
	})
}

// HealthCheckResponse creates a health check response
func HealthCheckResponse(services map[string]string, version, uptime string) models.HealthResponse {
	status := "healthy"
	for _, serviceStatus := range services {
		if serviceStatus != "healthy" {
			status = "unhealthy"
			break
		}
	}

	return models.HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Services:  services,
		Version:   version,
		Uptime:    uptime,
	}
}

// Helper functions
func getErrorCode(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return models.ErrCodeValidation
	case http.StatusNotFound:
		return models.ErrCodeNotFound
	case http.StatusConflict:
		return models.ErrCodeConflict
	case http.StatusTooManyRequests:
		return models.ErrCodeRateLimit
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return models.ErrCodeExternal
	default:
		return models.ErrCodeInternal
	}
}
