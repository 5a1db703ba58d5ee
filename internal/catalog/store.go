// Package catalog reads transport, lodging, guide and activity records for the
// workflows. The core never writes to the catalog.
package catalog

import (
	"context"

	"github.com/proraahi-core/server/internal/agent/model"
)

// Filter narrows a catalog query. Empty fields are ignored. Specialty is a substring
// match; every other field is equality.
type Filter struct {
	Location     string
	FromLocation string
	ToLocation   string
	Category     string
	Specialty    string
	Limit        int
}

// Store runs filtered catalog queries. Results come back best first.
type Store interface {
	Query(ctx context.Context, kind model.CatalogKind, f Filter) ([]model.Record, error)
}

// FilterFor maps the slots that matter for kind onto a Filter.
func FilterFor(kind model.CatalogKind, e model.Entities) Filter {
	var f Filter
	switch kind {
	case model.KindTransport:
		f.FromLocation, _ = e.String(model.SlotFromLocation)
		f.ToLocation, _ = e.String(model.SlotToLocation)
	case model.KindLodging:
		f.Location, _ = e.String(model.SlotLocation)
		if f.Location == "" {
			f.Location, _ = e.String(model.SlotToLocation)
		}
	case model.KindGuide:
		f.Location, _ = e.String(model.SlotLocation)
		f.Specialty, _ = e.String(model.SlotSpecialty)
	case model.KindActivity:
		f.Location, _ = e.String(model.SlotLocation)
		f.Category, _ = e.String(model.SlotCategory)
	}
	return f
}
