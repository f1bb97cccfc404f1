package handlers

import (
	"net/http"

	"dealership/internal/config"
	"dealership/internal/domain"
	"dealership/internal/http/middleware"
	"dealership/internal/ws"

	"github.com/gin-gonic/gin"
)

// package-level wiring, set once by the router before routes are mounted.
var (
	env config.Env
	hub *ws.Hub
)

// Configure hands the handlers their runtime dependencies.
func Configure(e config.Env, h *ws.Hub) {
	env = e
	hub = h
}

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return false
	}
	return true
}

// RespondList writes the collection envelope the screens consume:
// {"data": [...], "meta": {"pagination": {...}}}.
func RespondList(c *gin.Context, records any, meta domain.Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"data": records,
		"meta": gin.H{"pagination": meta},
	})
}

// RespondData writes a single-record envelope.
func RespondData(c *gin.Context, status int, record any) {
	c.JSON(status, gin.H{"data": record})
}

// dataEnvelope is the {"data": {...}} mutation body shape.
type dataEnvelope struct {
	Data map[string]any `json:"data"`
}
