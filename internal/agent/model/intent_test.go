package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntent(t *testing.T) {
	cases := []struct {
		in   string
		want Intent
		ok   bool
	}{
		{"transportation_booking", IntentTransportBooking, true},
		{"Accommodation Booking", IntentAccommodationBooking, true},
		{"hotel-booking", IntentAccommodationBooking, true},
		{"itinerary", IntentItineraryCreation, true},
		{"weather_report", IntentGeneralInquiry, false},
		{"", IntentGeneralInquiry, false},
	}
	for _, tc := range cases {
		got, ok := ParseIntent(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}

func TestEntities_PresenceIsDistinctFromEmpty(t *testing.T) {
	e := Entities{"travel_date": "", "from_location": "Delhi"}

	assert.True(t, e.Has("travel_date"))
	assert.False(t, e.Filled("travel_date"))
	assert.False(t, e.Has("to_location"))
	assert.True(t, e.Filled("from_location"))

	var missing Entities
	assert.False(t, missing.Has("anything"))
	assert.NotNil(t, missing.Clone())
}

func TestEntities_Accessors(t *testing.T) {
	e := Entities{
		"interests":  []any{"nature", " ", "cultural"},
		"group_size": float64(4),
		"days":       "3",
		"duration":   "3 days",
	}

	interests, ok := e.Strings("interests")
	assert.True(t, ok)
	assert.Equal(t, []string{"nature", "cultural"}, interests)

	n, ok := e.Int("group_size")
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	days, ok := e.Int("days")
	assert.True(t, ok)
	assert.Equal(t, 3, days)

	s, ok := e.String("group_size")
	assert.True(t, ok)
	assert.Equal(t, "4", s)

	joined, _ := e.String("interests")
	assert.Equal(t, "nature, cultural", joined)
}

func TestEntities_Merge(t *testing.T) {
	prior := Entities{"from_location": "Delhi", "to_location": "Ranchi"}
	next := Entities{"travel_date": "2026-11-02", "to_location": ""}

	merged := prior.Merge(next)
	assert.Equal(t, "Delhi", merged["from_location"])
	assert.Equal(t, "Ranchi", merged["to_location"], "empty values must not erase known slots")
	assert.Equal(t, "2026-11-02", merged["travel_date"])
	assert.Len(t, prior, 2, "merge must not mutate the receiver")
}

func TestIntentResult_WithEntitiesCopies(t *testing.T) {
	orig := IntentResult{PrimaryIntent: IntentGuideBooking, Entities: Entities{"location": "Ranchi"}}
	next := orig.WithEntities(Entities{"location": "Deoghar"})
	assert.Equal(t, "Ranchi", orig.Entities["location"])
	assert.Equal(t, "Deoghar", next.Entities["location"])
}
