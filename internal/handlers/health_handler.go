package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todoapp/internal/logger"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether the data store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and API information endpoints
type HealthHandler struct {
	db      Pinger
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Database  string `json:"database"`
}

// Health reports server and database status
// @Summary     Health check
// @Tags        system
// @Produce     json
// @Success     200 {object} HealthResponse "Server is running"
// @Failure     503 {object} HealthResponse "Database unavailable"
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Success:   true,
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		Database:  "ok",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.Get().Warnw("health check: database unreachable", "error", err)
		resp.Success = false
		resp.Message = "Database unavailable"
		resp.Database = "unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Info describes the API and its endpoints
// @Summary     API information
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]interface{} "API information"
// @Router      / [get]
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Todo App API",
		"version":       h.version,
		"documentation": "/api-docs",
		"endpoints": gin.H{
			"todos":      "/api/todos",
			"categories": "/api/categories",
			"activity":   "/api/activity",
			"health":     "/api/health",
		},
	})
}
