package nlu

import (
	"fmt"
	"strings"
)

// Assistant answers general questions from the multilingual templates without any
// provider. It backs general-assistance fallbacks and the webhook.
type Assistant struct {
	slots *SlotExtractor
}

func NewAssistant() *Assistant {
	return &Assistant{slots: NewSlotExtractor()}
}

// MatchTopic returns the first topic whose keywords occur in text.
func (a *Assistant) MatchTopic(text string) Topic {
	lower := strings.ToLower(text)
	for _, tk := range topicOrder {
		if containsAny(lower, tk.keywords) {
			return tk.topic
		}
	}
	return TopicDefault
}

// Respond answers text in lang (unsupported languages get English).
func (a *Assistant) Respond(text, lang string) string {
	return a.Answer(a.MatchTopic(text), text, lang)
}

// Answer renders a specific topic.
func (a *Assistant) Answer(topic Topic, text, lang string) string {
	t := TemplatesFor(lang)
	switch topic {
	case TopicGreeting:
		return t.Greeting
	case TopicTouristPlaces:
		return t.TouristPlaces
	case TopicItinerary:
		return a.PlanItinerary(text, lang)
	case TopicCultural:
		return t.Cultural
	case TopicEcoTourism:
		return t.EcoTourism
	case TopicHelp:
		return t.Help
	default:
		return t.Default
	}
}

// PlanItinerary renders a day-by-day plan when text states a day count, otherwise the
// prompt asking for trip details.
func (a *Assistant) PlanItinerary(text, lang string) string {
	days, ok := a.slots.ExtractDays(text)
	if !ok || days <= 0 {
		return TemplatesFor(lang).ItineraryPrompt
	}
	return RenderDayPlan(lang, days)
}

// RenderDayPlan writes the template plan for the given number of days. Languages with
// fewer day blocks stop at their last block.
func RenderDayPlan(lang string, days int) string {
	t := TemplatesFor(lang)
	var b strings.Builder
	b.WriteString(localizeDigits(lang, fmt.Sprintf(t.ItineraryTitle, days)))
	b.WriteString("\n\n")
	for i, block := range t.Days {
		if i >= days {
			break
		}
		b.WriteString(localizeDigits(lang, fmt.Sprintf("%s %d: %s\n", t.DayLabel, i+1, block.Title)))
		for _, item := range block.Items {
			b.WriteString("• " + item + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(t.TipsTitle + "\n")
	for _, tip := range t.Tips {
		b.WriteString("• " + tip + "\n")
	}
	b.WriteString("\n" + t.BudgetLine + "\n" + t.Closing)
	return b.String()
}

func localizeDigits(lang, s string) string {
	if lang != LangBengali {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '০' + (r - '0')
		}
		return r
	}, s)
}
