package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/proraahi-core/server/internal/agent/model"
	"github.com/proraahi-core/server/internal/catalog"
)

// CatalogQuerier runs direct catalog queries; errors are surfaced to the client.
type CatalogQuerier interface {
	Query(ctx context.Context, kind model.CatalogKind, f catalog.Filter) ([]model.Record, error)
}

type CatalogHandler struct {
	catalog CatalogQuerier
}

func NewCatalogHandler(q CatalogQuerier) *CatalogHandler {
	return &CatalogHandler{catalog: q}
}

// Guides handles GET /api/guides?location=&specialty=.
func (h *CatalogHandler) Guides(c *gin.Context) {
	h.query(c, model.KindGuide, catalog.Filter{
		Location:  filterValue(c.Query("location")),
		Specialty: filterValue(c.Query("specialty")),
	})
}

// Activities handles GET /api/activities?category=&location=.
func (h *CatalogHandler) Activities(c *gin.Context) {
	h.query(c, model.KindActivity, catalog.Filter{
		Location: filterValue(c.Query("location")),
		Category: filterValue(c.Query("category")),
	})
}

// Hotels handles GET /api/hotels?location=.
func (h *CatalogHandler) Hotels(c *gin.Context) {
	h.query(c, model.KindLodging, catalog.Filter{
		Location: filterValue(c.Query("location")),
	})
}

type transportSearchReq struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

// SearchTransportation handles POST /api/transportation/search.
func (h *CatalogHandler) SearchTransportation(c *gin.Context) {
	var req transportSearchReq
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
	h.query(c, model.KindTransport, catalog.Filter{FromLocation: req.From, ToLocation: req.To})
}

func (h *CatalogHandler) query(c *gin.Context, kind model.CatalogKind, f catalog.Filter) {
	records, err := h.catalog.Query(c.Request.Context(), kind, f)
	if err != nil {
		writeAppError(c, err)
		return
	}
	if records == nil {
		records = []model.Record{}
	}
	writeJSON(c, http.StatusOK, records)
}
