package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	errx "github.com/proraahi-core/server/internal/core/error"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeAppError maps an AppError to its status and safe message; anything else is a 500.
func writeAppError(c *gin.Context, err error) {
	writeError(c, errx.StatusOf(err), errx.MessageOf(err))
}

// filterValue drops the "all" placeholders the booking UI sends for unset filters.
func filterValue(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "all", "all categories", "all locations":
		return ""
	}
	return v
}

// Health handles GET /api/health.
func Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"status": "healthy", "message": "ProRaahi API is running"})
}
