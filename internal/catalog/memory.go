package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/proraahi-core/server/internal/agent/model"
)

// MemoryStore keeps records in process. It backs local runs without a database and
// the workflow tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[model.CatalogKind][]model.Record
}

func NewMemoryStore(records ...model.Record) *MemoryStore {
	s := &MemoryStore{records: make(map[model.CatalogKind][]model.Record)}
	s.Add(records...)
	return s
}

func (s *MemoryStore) Add(records ...model.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.records[r.Kind] = append(s.records[r.Kind], r)
	}
}

func (s *MemoryStore) Query(_ context.Context, kind model.CatalogKind, f Filter) ([]model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Record, 0)
	for _, r := range s.records[kind] {
		if matches(r, f) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })

	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	return model.TopRecords(out, limit), nil
}

func matches(r model.Record, f Filter) bool {
	eq := func(want, got string) bool { return want == "" || strings.EqualFold(want, got) }
	if !eq(f.FromLocation, r.From) || !eq(f.ToLocation, r.To) {
		return false
	}
	if !eq(f.Location, r.Location) || !eq(f.Category, r.Category) {
		return false
	}
	if f.Specialty != "" {
		needle := strings.ToLower(f.Specialty)
		for _, sp := range r.Specialties {
			if strings.Contains(strings.ToLower(sp), needle) {
				return true
			}
		}
		return false
	}
	return true
}

var _ Store = (*MemoryStore)(nil)
