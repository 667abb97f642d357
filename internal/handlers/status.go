package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogapi/internal/monitoring"
)

// SystemHandler serves liveness, status and monitoring endpoints.
type SystemHandler struct {
	Monitor       *monitoring.Service
	MonitoringKey string
}

func NewSystemHandler(monitor *monitoring.Service, monitoringKey string) *SystemHandler {
	return &SystemHandler{Monitor: monitor, MonitoringKey: monitoringKey}
}

// Test is the API liveness probe.
func (h *SystemHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "api working fine"})
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": h.Monitor.DBState(),
	})
}

func (h *SystemHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Blog API",
		"version": "0.1.0",
		"status":  "operational",
	})
}

// MonitorSnapshot exposes operational counters, guarded by a static key.
// An empty configured key disables the endpoint entirely.
func (h *SystemHandler) MonitorSnapshot(c *gin.Context) {
	if h.MonitoringKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Monitoring API is disabled"})
		return
	}

	provided := strings.TrimSpace(c.GetHeader("X-Monitoring-Key"))
	if provided == "" || provided != h.MonitoringKey {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid monitoring key"})
		return
	}

	c.JSON(http.StatusOK, h.Monitor.Snapshot())
}
