package workflow

import "github.com/proraahi-core/server/internal/agent/model"

// SlotRequirement is one required piece of information. It is satisfied when any of
// the listed slots is filled.
type SlotRequirement struct {
	Label string
	AnyOf []string
}

// RequiredSlots lists, per intent, what must be known before searching. Order is the
// order labels are reported to the user.
var RequiredSlots = map[model.Intent][]SlotRequirement{
	model.IntentTransportBooking: {
		{Label: "departure city", AnyOf: []string{model.SlotFromLocation}},
		{Label: "destination in Jharkhand", AnyOf: []string{model.SlotToLocation}},
		{Label: "travel date", AnyOf: []string{model.SlotTravelDate}},
	},
	model.IntentAccommodationBooking: {
		{Label: "destination city", AnyOf: []string{model.SlotLocation}},
		{Label: "check-in date", AnyOf: []string{model.SlotCheckInDate}},
		{Label: "duration of stay", AnyOf: []string{model.SlotDuration, model.SlotCheckOutDate}},
	},
}

// MissingSlots returns the labels of unmet requirements in declared order. A slot
// present but explicitly empty counts as missing.
func MissingSlots(intent model.Intent, e model.Entities) []string {
	var missing []string
	for _, req := range RequiredSlots[intent] {
		if !satisfied(req, e) {
			missing = append(missing, req.Label)
		}
	}
	return missing
}

func satisfied(req SlotRequirement, e model.Entities) bool {
	for _, slot := range req.AnyOf {
		if e.Filled(slot) {
			return true
		}
	}
	return false
}
