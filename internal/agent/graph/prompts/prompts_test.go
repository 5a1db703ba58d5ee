package prompts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proraahi-core/server/internal/agent/model"
)

func TestRenderNLUSystem_CarriesKnowledge(t *testing.T) {
	out, err := RenderNLUSystem(context.Background(), model.DefaultKnowledge())
	require.NoError(t, err)

	assert.Contains(t, out, "ProRaahi AI Tourism Agent")
	assert.Contains(t, out, "Ranchi, Jamshedpur")
	assert.Contains(t, out, "Sarhul")
	assert.Contains(t, out, "itinerary_creation")
	assert.NotContains(t, out, "{{")
}

func TestRenderResponseSystem(t *testing.T) {
	ctx := context.Background()

	t.Run("guide lists records as json", func(t *testing.T) {
		out, err := RenderResponseSystem(ctx, ResponseGuide, ResponseVars{
			Utterance: "need a tribal culture guide",
			Language:  "hi",
			Records:   []model.Record{{ID: 1, Kind: model.KindGuide, Name: "Ravi"}},
		})
		require.NoError(t, err)
		assert.Contains(t, out, "need a tribal culture guide")
		assert.Contains(t, out, `"name":"Ravi"`)
		assert.Contains(t, out, "Reply in Hindi.")
	})

	t.Run("itinerary carries duration and interests", func(t *testing.T) {
		out, err := RenderResponseSystem(ctx, ResponseItinerary, ResponseVars{
			Duration:    "3 days",
			Interests:   []string{"culture", "nature"},
			BudgetTotal: 9000,
		})
		require.NoError(t, err)
		assert.Contains(t, out, "detailed 3 days itinerary")
		assert.Contains(t, out, "culture, nature")
		assert.Contains(t, out, "9000 INR")
		assert.Contains(t, out, "Reply in English.")
	})

	t.Run("general includes capabilities", func(t *testing.T) {
		out, err := RenderResponseSystem(ctx, ResponseGeneral, ResponseVars{Knowledge: model.DefaultKnowledge()})
		require.NoError(t, err)
		assert.Contains(t, out, "Local guide matching and booking")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := RenderResponseSystem(ctx, ResponseKind("weather"), ResponseVars{})
		assert.Error(t, err)
	})
}
