// Package workflow runs the per-intent workflow for one turn: validate required
// slots, search the catalog, and hand the outcome to the composer.
package workflow

import (
	"context"

	"github.com/proraahi-core/server/internal/agent/composer"
	"github.com/proraahi-core/server/internal/agent/model"
	"github.com/proraahi-core/server/internal/agent/nlu"
	"github.com/proraahi-core/server/internal/catalog"
	"github.com/proraahi-core/server/internal/metrics"
	logx "github.com/proraahi-core/server/pkg/logger"
)

const defaultItineraryDuration = "5 days"

var defaultItineraryInterests = []string{"culture", "nature"}

// Searcher is the catalog view the workflows need.
type Searcher interface {
	Search(ctx context.Context, kind model.CatalogKind, e model.Entities) []model.Record
}

type Dispatcher struct {
	catalog  Searcher
	composer *composer.Composer
	cfg      model.WorkflowConfig
}

func NewDispatcher(s Searcher, c *composer.Composer, cfg model.WorkflowConfig) *Dispatcher {
	if cfg.GuideTopN <= 0 {
		cfg.GuideTopN = 3
	}
	if cfg.ActivityTopN <= 0 {
		cfg.ActivityTopN = 4
	}
	if cfg.BudgetBaseRate <= 0 {
		cfg.BudgetBaseRate = catalog.DefaultBaseRate
	}
	return &Dispatcher{catalog: s, composer: c, cfg: cfg}
}

// Dispatch selects the workflow for the classified intent. Confidence is not consulted.
func (d *Dispatcher) Dispatch(ctx context.Context, req model.DispatchRequest) *model.WorkflowResult {
	u := req.Utterance
	e := req.Intent.Entities
	if e == nil {
		e = model.Entities{}
	}

	var res *model.WorkflowResult
	switch req.Intent.PrimaryIntent {
	case model.IntentTransportBooking:
		res = d.transport(ctx, e)
	case model.IntentAccommodationBooking:
		res = d.accommodation(ctx, e)
	case model.IntentGuideBooking:
		res = d.composer.GuideRecommendation(ctx, u, d.catalog.Search(ctx, model.KindGuide, e), d.cfg.GuideTopN)
	case model.IntentActivityPlanning:
		interests, _ := e.Strings(model.SlotInterests)
		res = d.composer.ActivityRecommendation(ctx, u, interests, d.catalog.Search(ctx, model.KindActivity, e), d.cfg.ActivityTopN)
	case model.IntentItineraryCreation:
		res = d.itinerary(ctx, u, e)
	default:
		res = d.composer.GeneralAssistance(ctx, u)
	}

	res.Language = u.Language
	logx.Debug().
		Str("session_id", u.SessionID).
		Str("intent", string(req.Intent.PrimaryIntent)).
		Str("stage", string(res.Stage)).
		Int("missing", len(res.MissingInfo)).
		Msg("Workflow dispatched")
	metrics.RecordStage(string(res.Stage))
	return res
}

func (d *Dispatcher) transport(ctx context.Context, e model.Entities) *model.WorkflowResult {
	if missing := MissingSlots(model.IntentTransportBooking, e); len(missing) > 0 {
		return d.composer.MissingInfo(model.IntentTransportBooking, missing)
	}
	return d.composer.TransportOptions(d.catalog.Search(ctx, model.KindTransport, e))
}

func (d *Dispatcher) accommodation(ctx context.Context, e model.Entities) *model.WorkflowResult {
	if missing := MissingSlots(model.IntentAccommodationBooking, e); len(missing) > 0 {
		return d.composer.MissingInfo(model.IntentAccommodationBooking, missing)
	}
	return d.composer.LodgingOptions(d.catalog.Search(ctx, model.KindLodging, e))
}

func (d *Dispatcher) itinerary(ctx context.Context, u model.Utterance, e model.Entities) *model.WorkflowResult {
	duration, days := tripLength(e)
	interests, ok := e.Strings(model.SlotInterests)
	if !ok {
		interests = append([]string(nil), defaultItineraryInterests...)
	}
	budget := catalog.EstimateBudget(duration, interests, d.cfg.BudgetBaseRate)
	return d.composer.Itinerary(ctx, u, duration, days, interests, budget)
}

// tripLength prefers an explicit duration, then a day count, then the five-day default.
func tripLength(e model.Entities) (string, int) {
	if duration, ok := e.String(model.SlotDuration); ok {
		if days := catalog.LeadingDays(duration); days > 0 {
			return duration, days
		}
		if days, ok := e.Int(model.SlotDays); ok && days > 0 {
			return duration, days
		}
		return duration, catalog.DefaultTripDays
	}
	if days, ok := e.Int(model.SlotDays); ok && days > 0 {
		return nlu.FormatDuration(days), days
	}
	return defaultItineraryDuration, catalog.DefaultTripDays
}
