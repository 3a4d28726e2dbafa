package handler

import (
	"net/http"
	"time"

	"github.com/Payphone-Digital/content-gateway/internal/constants"
	"github.com/Payphone-Digital/content-gateway/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	contentBaseURL string
}

type HealthCheckResponse struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]HealthCheck `json:"checks"`
}

type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func NewHealthHandler(contentBaseURL string) *HealthHandler {
	return &HealthHandler{contentBaseURL: contentBaseURL}
}

// HealthCheck reports liveness and the configured content backend. It does
// not call the backend.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	response := HealthCheckResponse{
		Status:    "healthy",
		Version:   constants.AppVersion,
		Timestamp: time.Now(),
		Checks: map[string]HealthCheck{
			"api": {
				Status:  "healthy",
				Message: "API is responsive",
			},
			"content": {
				Status:  "configured",
				Message: h.contentBaseURL,
			},
		},
	}

	logger.GetLogger().Debug("Health check performed",
		zap.String("overall_status", response.Status),
	)

	c.JSON(http.StatusOK, response)
}

// BasicHealth returns a simple health check (for load balancers)
func (h *HealthHandler) BasicHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   constants.AppName,
		"version":   constants.AppVersion,
		"timestamp": time.Now(),
	})
}
