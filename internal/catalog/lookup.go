package catalog

import (
	"context"

	"github.com/proraahi-core/server/internal/agent/model"
	"github.com/proraahi-core/server/internal/metrics"
	logx "github.com/proraahi-core/server/pkg/logger"
)

// Lookup is the workflows' view of the catalog. Search never fails: a store error
// is logged and reads as no results.
type Lookup struct {
	store Store
	limit int
}

func NewLookup(store Store, limit int) *Lookup {
	return &Lookup{store: store, limit: limit}
}

func (l *Lookup) Search(ctx context.Context, kind model.CatalogKind, e model.Entities) []model.Record {
	if l == nil || l.store == nil {
		return []model.Record{}
	}
	f := FilterFor(kind, e)
	f.Limit = l.limit

	records, err := l.store.Query(ctx, kind, f)
	if err != nil {
		logx.Warn().Err(err).Str("kind", string(kind)).Msg("Catalog search failed; treating as empty")
		metrics.RecordFallback("catalog", string(kind))
		return []model.Record{}
	}
	if records == nil {
		records = []model.Record{}
	}
	return records
}

// Query passes a filter straight to the store, errors included.
func (l *Lookup) Query(ctx context.Context, kind model.CatalogKind, f Filter) ([]model.Record, error) {
	if f.Limit <= 0 {
		f.Limit = l.limit
	}
	return l.store.Query(ctx, kind, f)
}
