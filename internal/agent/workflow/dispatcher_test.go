package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proraahi-core/server/internal/agent/composer"
	"github.com/proraahi-core/server/internal/agent/model"
	"github.com/proraahi-core/server/internal/catalog"
)

// recordingSearcher counts catalog calls per kind.
type recordingSearcher struct {
	inner *catalog.Lookup
	calls map[model.CatalogKind]int
}

func (r *recordingSearcher) Search(ctx context.Context, kind model.CatalogKind, e model.Entities) []model.Record {
	r.calls[kind]++
	return r.inner.Search(ctx, kind, e)
}

func newSearcher() *recordingSearcher {
	store := catalog.NewMemoryStore(
		model.Record{ID: 1, Kind: model.KindTransport, Name: "Rajdhani Express", From: "Delhi", To: "Ranchi", Departure: "06:00", Rating: 4.5},
		model.Record{ID: 2, Kind: model.KindLodging, Name: "Ranchi Heritage Hotel", Location: "Ranchi", Rating: 4.5},
		model.Record{ID: 3, Kind: model.KindGuide, Name: "Ravi", Location: "Ranchi", Specialties: []string{"Tribal History"}, Rating: 4.9},
		model.Record{ID: 4, Kind: model.KindGuide, Name: "Anita", Location: "Ranchi", Rating: 4.6},
		model.Record{ID: 5, Kind: model.KindActivity, Name: "Sohrai Art Workshop", Location: "Hazaribagh", Category: "cultural", Rating: 4.8},
	)
	return &recordingSearcher{inner: catalog.NewLookup(store, 20), calls: map[model.CatalogKind]int{}}
}

type countingGenerator struct {
	calls int
	reply string
	err   error
}

func (g *countingGenerator) Complete(context.Context, string, string, float32) (string, error) {
	g.calls++
	return g.reply, g.err
}

func dispatch(d *Dispatcher, text string, intent model.Intent, e model.Entities) *model.WorkflowResult {
	return d.Dispatch(context.Background(), model.DispatchRequest{
		Utterance: model.Utterance{Text: text, Language: "en", SessionID: "s-1"},
		Intent:    model.IntentResult{PrimaryIntent: intent, Entities: e, Confidence: 0.1},
	})
}

func TestMissingSlots(t *testing.T) {
	assert.Equal(t,
		[]string{"destination in Jharkhand", "travel date"},
		MissingSlots(model.IntentTransportBooking, model.Entities{model.SlotFromLocation: "Delhi"}))

	assert.Equal(t,
		[]string{"departure city", "destination in Jharkhand", "travel date"},
		MissingSlots(model.IntentTransportBooking, model.Entities{model.SlotFromLocation: ""}))

	assert.Empty(t, MissingSlots(model.IntentAccommodationBooking, model.Entities{
		model.SlotLocation: "Ranchi", model.SlotCheckInDate: "2024-03-15", model.SlotCheckOutDate: "2024-03-18",
	}))

	assert.Equal(t,
		[]string{"duration of stay"},
		MissingSlots(model.IntentAccommodationBooking, model.Entities{model.SlotLocation: "Ranchi", model.SlotCheckInDate: "tomorrow"}))

	assert.Empty(t, MissingSlots(model.IntentGuideBooking, nil))
}

func TestDispatch_TransportMissingInfo(t *testing.T) {
	s := newSearcher()
	gen := &countingGenerator{reply: "unused"}
	d := NewDispatcher(s, composer.New(gen, nil), model.WorkflowConfig{})

	res := dispatch(d, "train from Delhi", model.IntentTransportBooking, model.Entities{model.SlotFromLocation: "Delhi"})

	assert.Equal(t, model.StageInformationGathering, res.Stage)
	assert.Equal(t, []string{"destination in Jharkhand", "travel date"}, res.MissingInfo)
	assert.Equal(t, []string{model.ActionCollectTransportationDetails}, res.NextActions)
	assert.Zero(t, s.calls[model.KindTransport])
	assert.Zero(t, gen.calls)
}

func TestDispatch_TransportOptions(t *testing.T) {
	s := newSearcher()
	gen := &countingGenerator{reply: "unused"}
	d := NewDispatcher(s, composer.New(gen, nil), model.WorkflowConfig{})

	res := dispatch(d, "train", model.IntentTransportBooking, model.Entities{
		model.SlotFromLocation: "Delhi", model.SlotToLocation: "Ranchi", model.SlotTravelDate: "2024-03-15",
	})

	assert.Equal(t, model.StageOptionPresentation, res.Stage)
	require.Len(t, res.SearchResults, 1)
	assert.Contains(t, res.Response, "Rajdhani Express departing at 06:00")
	assert.Equal(t, 1, s.calls[model.KindTransport])
	assert.Zero(t, gen.calls)
}

func TestDispatch_AccommodationMissingInfo(t *testing.T) {
	d := NewDispatcher(newSearcher(), composer.New(nil, nil), model.WorkflowConfig{})

	res := dispatch(d, "hotel", model.IntentAccommodationBooking, model.Entities{})
	assert.Equal(t, []string{"destination city", "check-in date", "duration of stay"}, res.MissingInfo)
	assert.Equal(t, []string{model.ActionCollectAccommodationDetails}, res.NextActions)
}

func TestDispatch_AccommodationNoResults(t *testing.T) {
	d := NewDispatcher(newSearcher(), composer.New(nil, nil), model.WorkflowConfig{})

	res := dispatch(d, "hotel", model.IntentAccommodationBooking, model.Entities{
		model.SlotLocation: "Deoghar", model.SlotCheckInDate: "2024-03-15", model.SlotDuration: "2 days",
	})
	assert.Equal(t, model.StageOptionPresentation, res.Stage)
	assert.Empty(t, res.SearchResults)
	assert.True(t, res.Recommendation.Alternatives)
}

func TestDispatch_GuideGenerationFailure(t *testing.T) {
	gen := &countingGenerator{err: errors.New("generation provider down")}
	d := NewDispatcher(newSearcher(), composer.New(gen, nil), model.WorkflowConfig{})

	res := dispatch(d, "guide in Ranchi", model.IntentGuideBooking, model.Entities{model.SlotLocation: "Ranchi"})

	assert.Equal(t, model.StageGuideRecommendation, res.Stage)
	assert.NotEmpty(t, res.SearchResults)
	assert.Equal(t, composer.GuideFallback, res.Response)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "guide_results", res.ResultsKey())
}

func TestDispatch_Activity(t *testing.T) {
	gen := &countingGenerator{reply: "Join the Sohrai workshop."}
	d := NewDispatcher(newSearcher(), composer.New(gen, nil), model.WorkflowConfig{})

	res := dispatch(d, "art workshops", model.IntentActivityPlanning, model.Entities{model.SlotCategory: "cultural"})
	assert.Equal(t, model.StageActivityRecommendation, res.Stage)
	assert.Equal(t, "Join the Sohrai workshop.", res.Response)
	require.Len(t, res.SearchResults, 1)
	assert.Equal(t, []string{model.ActionPresentActivityDetails, model.ActionCheckAvailability}, res.NextActions)
}

func TestDispatch_ItineraryDefaults(t *testing.T) {
	d := NewDispatcher(newSearcher(), composer.New(nil, nil), model.WorkflowConfig{BudgetBaseRate: 3000})

	res := dispatch(d, "make me an itinerary", model.IntentItineraryCreation, model.Entities{})

	assert.Equal(t, model.StageItineraryPresentation, res.Stage)
	require.NotNil(t, res.Itinerary)
	assert.Equal(t, "5 days", res.Itinerary.Duration)
	assert.Equal(t, []string{"culture", "nature"}, res.Itinerary.Interests)
	assert.InDelta(t, 15000, res.Itinerary.EstimatedBudget.TotalEstimated, 0.001)
	assert.Contains(t, res.Response, "5 days itinerary")
}

func TestDispatch_ItineraryFromDays(t *testing.T) {
	d := NewDispatcher(newSearcher(), composer.New(nil, nil), model.WorkflowConfig{})

	res := dispatch(d, "3 day luxury trip", model.IntentItineraryCreation, model.Entities{
		model.SlotDays: 3, model.SlotInterests: []string{"luxury"},
	})
	require.NotNil(t, res.Itinerary)
	assert.Equal(t, "3 days", res.Itinerary.Duration)
	assert.InDelta(t, 18000, res.Itinerary.EstimatedBudget.TotalEstimated, 0.001)
	assert.Contains(t, res.Itinerary.DayPlan, "Day 3:")
}

func TestDispatch_GeneralAndUnknown(t *testing.T) {
	d := NewDispatcher(newSearcher(), composer.New(nil, nil), model.WorkflowConfig{})

	res := dispatch(d, "help", model.IntentGeneralInquiry, nil)
	assert.Equal(t, model.StageGeneralAssistance, res.Stage)
	assert.Equal(t, []string{model.ActionOfferSpecificServices}, res.NextActions)
	assert.Equal(t, "en", res.Language)

	res = dispatch(d, "help", model.Intent("weather_check"), nil)
	assert.Equal(t, model.StageGeneralAssistance, res.Stage)
}

func TestTripLength(t *testing.T) {
	tests := []struct {
		e        model.Entities
		duration string
		days     int
	}{
		{model.Entities{model.SlotDuration: "4 days"}, "4 days", 4},
		{model.Entities{model.SlotDuration: "a week", model.SlotDays: 7}, "a week", 7},
		{model.Entities{model.SlotDuration: "a week"}, "a week", 5},
		{model.Entities{model.SlotDays: float64(2)}, "2 days", 2},
		{model.Entities{}, "5 days", 5},
	}
	for _, tt := range tests {
		duration, days := tripLength(tt.e)
		assert.Equal(t, tt.duration, duration)
		assert.Equal(t, tt.days, days)
	}
}
