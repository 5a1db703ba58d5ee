package model

import "encoding/json"

// Stage is the phase a workflow reached in the current turn.
type Stage string

const (
	StageInformationGathering   Stage = "information_gathering"
	StageOptionPresentation     Stage = "option_presentation"
	StageGuideRecommendation    Stage = "guide_recommendation"
	StageActivityRecommendation Stage = "activity_recommendation"
	StageItineraryPresentation  Stage = "itinerary_presentation"
	StageGeneralAssistance      Stage = "general_assistance"
)

func (s Stage) Valid() bool {
	switch s {
	case StageInformationGathering, StageOptionPresentation, StageGuideRecommendation,
		StageActivityRecommendation, StageItineraryPresentation, StageGeneralAssistance:
		return true
	}
	return false
}

// Next action tags.
const (
	ActionCollectTransportationDetails = "collect_transportation_details"
	ActionCollectAccommodationDetails  = "collect_accommodation_details"
	ActionAwaitUserSelection           = "await_user_selection"
	ActionProceedToBooking             = "proceed_to_booking"
	ActionPresentGuideProfiles         = "present_guide_profiles"
	ActionPresentActivityDetails       = "present_activity_details"
	ActionCheckAvailability            = "check_availability"
	ActionReviewItinerary              = "review_itinerary"
	ActionProceedToBookings            = "proceed_to_bookings"
	ActionOfferSpecificServices        = "offer_specific_services"
	ActionProvideGeneralAssistance     = "provide_general_assistance"
	ActionHumanHandoff                 = "human_handoff"
)

// Recommendation is the template-built pick over transport or lodging results.
type Recommendation struct {
	Message           string  `json:"message"`
	RecommendedOption *Record `json:"recommended_option,omitempty"`
	Reasoning         string  `json:"reasoning,omitempty"`
	Alternatives      bool    `json:"alternatives,omitempty"`
}

// Budget is the itinerary cost estimate in Currency.
type Budget struct {
	TotalEstimated float64  `json:"total_estimated"`
	PerDay         float64  `json:"per_day"`
	Currency       string   `json:"currency"`
	Includes       []string `json:"includes"`
}

type Itinerary struct {
	Description     string   `json:"description"`
	Duration        string   `json:"duration"`
	Interests       []string `json:"interests"`
	EstimatedBudget Budget   `json:"estimated_budget"`
	DayPlan         string   `json:"day_plan,omitempty"`
}

// WorkflowResult is the unit returned to the transport layer for one turn.
type WorkflowResult struct {
	Response                  string          `json:"response"`
	Stage                     Stage           `json:"workflow_stage"`
	Intent                    Intent          `json:"intent,omitempty"`
	MissingInfo               []string        `json:"missing_info,omitempty"`
	SearchResults             []Record        `json:"search_results,omitempty"`
	Recommendation            *Recommendation `json:"recommendation,omitempty"`
	Itinerary                 *Itinerary      `json:"itinerary,omitempty"`
	NextActions               []string        `json:"next_actions"`
	Language                  string          `json:"language,omitempty"`
	RequiresHumanIntervention bool            `json:"requires_human_intervention,omitempty"`
}

// ResultsKey names the JSON field carrying SearchResults for the stage.
func (r *WorkflowResult) ResultsKey() string {
	switch r.Stage {
	case StageGuideRecommendation:
		return "guide_results"
	case StageActivityRecommendation:
		return "activity_results"
	default:
		return "search_results"
	}
}

// MarshalJSON emits SearchResults under the stage-specific key (guide_results,
// activity_results or search_results).
func (r WorkflowResult) MarshalJSON() ([]byte, error) {
	type plain WorkflowResult
	out := struct {
		plain
		SearchResults   *[]Record `json:"search_results,omitempty"`
		GuideResults    *[]Record `json:"guide_results,omitempty"`
		ActivityResults *[]Record `json:"activity_results,omitempty"`
	}{plain: plain(r)}

	if r.SearchResults != nil {
		results := r.SearchResults
		switch r.ResultsKey() {
		case "guide_results":
			out.GuideResults = &results
		case "activity_results":
			out.ActivityResults = &results
		default:
			out.SearchResults = &results
		}
	}
	return json.Marshal(out)
}
