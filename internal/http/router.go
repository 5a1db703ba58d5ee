// Package http is the API gateway: it registers the gin routes and delegates to the
// dialogue engine, the catalog and the travel info providers.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/proraahi-core/server/internal/http/handlers"
	"github.com/proraahi-core/server/internal/http/middleware"
)

type RouterDeps struct {
	Chat    *handlers.ChatHandler
	Webhook *handlers.WebhookHandler
	Catalog *handlers.CatalogHandler
	Travel  *handlers.TravelHandler
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/api/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if deps.Chat != nil {
		r.POST("/api/chat", deps.Chat.Chat)
		r.POST("/api/agent/workflow", deps.Chat.Workflow)
	}
	if deps.Webhook != nil {
		r.POST("/dialogflow-webhook", deps.Webhook.Dialogflow)
	}
	if deps.Catalog != nil {
		r.GET("/api/guides", deps.Catalog.Guides)
		r.GET("/api/activities", deps.Catalog.Activities)
		r.GET("/api/hotels", deps.Catalog.Hotels)
		r.POST("/api/transportation/search", deps.Catalog.SearchTransportation)
	}
	if deps.Travel != nil {
		r.GET("/api/weather/:location", deps.Travel.Weather)
		r.GET("/api/safety-alerts/:location", deps.Travel.SafetyAlerts)
		r.GET("/api/events/:location", deps.Travel.Events)
		r.POST("/api/route-info", deps.Travel.RouteInfo)
	}
	return r
}
