package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/proraahi-core/server/internal/travelinfo"
)

type TravelHandler struct {
	info *travelinfo.Service
}

func NewTravelHandler(info *travelinfo.Service) *TravelHandler {
	return &TravelHandler{info: info}
}

// Weather handles GET /api/weather/:location.
func (h *TravelHandler) Weather(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.info.Weather(c.Request.Context(), c.Param("location")))
}

// SafetyAlerts handles GET /api/safety-alerts/:location.
func (h *TravelHandler) SafetyAlerts(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.info.Safety(c.Request.Context(), c.Param("location")))
}

// Events handles GET /api/events/:location.
func (h *TravelHandler) Events(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.info.Events(c.Request.Context(), c.Param("location")))
}

type routeReq struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RouteInfo handles POST /api/route-info.
func (h *TravelHandler) RouteInfo(c *gin.Context) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.From = strings.TrimSpace(req.From)
	req.To = strings.TrimSpace(req.To)
	if req.From == "" || req.To == "" {
		writeError(c, http.StatusBadRequest, "missing from or to")
		return
	}
	writeJSON(c, http.StatusOK, h.info.Route(c.Request.Context(), req.From, req.To))
}
