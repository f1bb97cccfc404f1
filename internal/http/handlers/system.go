package handlers

import (
	"net/http"

	intconfig "dealership/internal/config"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	payload := gin.H{"status": "ok"}
	if hub != nil {
		payload["ws_clients"] = hub.ClientCount()
	}
	c.JSON(http.StatusOK, payload)
}

// GET /api/db-check
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}
