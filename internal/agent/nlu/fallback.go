package nlu

import (
	"strings"

	"github.com/proraahi-core/server/internal/agent/model"
)

// FallbackConfidence marks results produced without the NLU provider.
const FallbackConfidence = 0.5

// FallbackClassifier maps text to an intent using the multilingual keyword table. Output
// depends only on the input text.
type FallbackClassifier struct {
	slots *SlotExtractor
}

func NewFallbackClassifier(slots *SlotExtractor) *FallbackClassifier {
	if slots == nil {
		slots = NewSlotExtractor()
	}
	return &FallbackClassifier{slots: slots}
}

func (f *FallbackClassifier) Classify(text string) model.IntentResult {
	intent := f.MatchIntent(text)
	return model.IntentResult{
		PrimaryIntent: intent,
		Entities:      f.slots.Extract(text, intent),
		Confidence:    FallbackConfidence,
		NextActions:   []string{model.ActionProvideGeneralAssistance},
		Source:        model.SourceFallback,
	}
}

// MatchIntent returns the first intent category with a keyword hit, GeneralInquiry
// otherwise.
func (f *FallbackClassifier) MatchIntent(text string) model.Intent {
	lower := strings.ToLower(text)
	for _, ik := range fallbackIntentKeywords {
		if containsAny(lower, ik.keywords) {
			return ik.intent
		}
	}
	return model.IntentGeneralInquiry
}
