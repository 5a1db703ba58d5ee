package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errx "github.com/proraahi-core/server/internal/core/error"
	logx "github.com/proraahi-core/server/pkg/logger"
)

// Recovery turns a handler panic into a 500 with the generic error body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logx.Error().
					Interface("panic", r).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msg("Handler panicked")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errx.SystemErrorMessage})
			}
		}()
		c.Next()
	}
}
