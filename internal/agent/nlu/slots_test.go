package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proraahi-core/server/internal/agent/model"
)

func TestSlotExtractor_ExtractDays(t *testing.T) {
	x := NewSlotExtractor()

	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{"english digits", "Plan a 3 day nature trip", 3, true},
		{"plural no space", "need a 5days plan", 5, true},
		{"bengali digits", "৫ দিনের ভ্রমণ", 5, true},
		{"devanagari digits", "४ दिन की यात्रा", 4, true},
		{"hindi word", "तीन दिन की यात्रा", 3, true},
		{"hinglish word", "teen din ka plan", 3, true},
		{"bengali word", "দুই দিনের ভ্রমণ", 2, true},
		{"english word", "a two day trip", 2, true},
		{"word without unit", "I want one ticket", 0, false},
		{"do is not two", "do you have guides", 0, false},
		{"absurd count", "400 days", 0, false},
		{"zero days", "0 days", 0, false},
		{"bengali zero", "০ দিন", 0, false},
		{"hinglish word with english unit", "Best things to do day trip near Ranchi", 0, false},
		{"english word with hinglish unit", "two din", 0, false},
		{"hindi word with bengali unit", "तीन দিন", 0, false},
		{"hinglish unit needs boundary", "teen dinner reservations", 0, false},
		{"hinglish plural unit", "do dino ka plan", 2, true},
		{"nothing", "hello there", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := x.ExtractDays(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotExtractor_ExtractInterests(t *testing.T) {
	x := NewSlotExtractor()

	assert.Equal(t, []string{InterestNature}, x.ExtractInterests("Plan a 3 day nature trip"))
	assert.Equal(t, []string{InterestCultural, InterestAdventure}, x.ExtractInterests("tribal heritage and a trek"))
	assert.Equal(t, []string{InterestNature, InterestCultural}, x.ExtractInterests("waterfalls and temples"))
	assert.Equal(t, []string{DefaultInterest}, x.ExtractInterests("something else"))
}

func TestSlotExtractor_Extract(t *testing.T) {
	x := NewSlotExtractor()

	e := x.Extract("Plan a 3 day nature trip", model.IntentItineraryCreation)
	days, ok := e.Int(model.SlotDays)
	assert.True(t, ok)
	assert.Equal(t, 3, days)
	assert.Equal(t, "3 days", slot(e, model.SlotDuration))
	assert.Equal(t, []string{"nature"}, slotList(e, model.SlotInterests))

	e = x.Extract("show me temples", model.IntentGeneralInquiry)
	assert.False(t, e.Has(model.SlotDays))
	assert.False(t, e.Has(model.SlotDuration))
	assert.False(t, e.Has(model.SlotFromLocation))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1 day", FormatDuration(1))
	assert.Equal(t, "7 days", FormatDuration(7))
}

func slot(e model.Entities, key string) string {
	s, _ := e.String(key)
	return s
}

func slotList(e model.Entities, key string) []string {
	l, _ := e.Strings(key)
	return l
}
