package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/proraahi-core/server/internal/http/handlers"
	"github.com/proraahi-core/server/internal/metrics"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(RouterDeps{Webhook: handlers.NewWebhookHandler(nil)})
	metrics.RecordApology()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(stdhttp.MethodGet, "/api/health", nil))
	assert.Equal(t, stdhttp.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(stdhttp.MethodGet, "/metrics", nil))
	assert.Equal(t, stdhttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "proraahi_apologies_total")

	// Routes for absent handlers are not registered.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(stdhttp.MethodPost, "/api/chat", nil))
	assert.Equal(t, stdhttp.StatusNotFound, w.Code)
}
