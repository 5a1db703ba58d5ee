package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proraahi-core/server/internal/agent/model"
)

func TestParseProviderResponse(t *testing.T) {
	t.Run("valid with code fence", func(t *testing.T) {
		raw := "```json\n" + `{"primary_intent":"guide_booking","entities":{"location":"Ranchi","specialty":"tribal culture"},"confidence":0.92,"next_actions":["search_guides"]}` + "\n```"
		res, err := ParseProviderResponse(raw)
		require.NoError(t, err)
		assert.Equal(t, model.IntentGuideBooking, res.PrimaryIntent)
		assert.Equal(t, "Ranchi", slot(res.Entities, model.SlotLocation))
		assert.Equal(t, 0.92, res.Confidence)
		assert.Equal(t, model.SourceProvider, res.Source)
	})

	t.Run("nested locations are flattened", func(t *testing.T) {
		raw := `{"primary_intent":"transportation_booking","entities":{"locations":{"from":"Delhi","to":"Ranchi"},"date":"2024-03-15"},"confidence":0.8,"next_actions":[]}`
		res, err := ParseProviderResponse(raw)
		require.NoError(t, err)
		assert.Equal(t, "Delhi", slot(res.Entities, model.SlotFromLocation))
		assert.Equal(t, "Ranchi", slot(res.Entities, model.SlotToLocation))
		assert.Equal(t, "2024-03-15", slot(res.Entities, model.SlotTravelDate))
	})

	malformed := map[string]string{
		"empty":            "",
		"not json":         "sure, here is the intent",
		"unknown intent":   `{"primary_intent":"weather_check","entities":{},"confidence":0.9,"next_actions":[]}`,
		"confidence range": `{"primary_intent":"general_inquiry","entities":{},"confidence":1.5,"next_actions":[]}`,
		"missing entities": `{"primary_intent":"general_inquiry","confidence":0.5,"next_actions":[]}`,
		"wrong type":       `{"primary_intent":"general_inquiry","entities":[],"confidence":0.5,"next_actions":[]}`,
	}
	for name, raw := range malformed {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProviderResponse(raw)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}
