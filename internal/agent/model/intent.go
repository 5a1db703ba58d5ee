package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Intent is the classified purpose of a user utterance.
type Intent string

const (
	IntentTransportBooking     Intent = "transportation_booking"
	IntentAccommodationBooking Intent = "accommodation_booking"
	IntentGuideBooking         Intent = "guide_booking"
	IntentActivityPlanning     Intent = "activity_planning"
	IntentItineraryCreation    Intent = "itinerary_creation"
	IntentGeneralInquiry       Intent = "general_inquiry"
)

// Intents lists every intent in declaration order.
var Intents = []Intent{
	IntentTransportBooking,
	IntentAccommodationBooking,
	IntentGuideBooking,
	IntentActivityPlanning,
	IntentItineraryCreation,
	IntentGeneralInquiry,
}

var intentAliases = map[string]Intent{
	"transport_booking": IntentTransportBooking,
	"transportbooking":  IntentTransportBooking,
	"hotel_booking":     IntentAccommodationBooking,
	"lodging_booking":   IntentAccommodationBooking,
	"guide":             IntentGuideBooking,
	"activity":          IntentActivityPlanning,
	"activities":        IntentActivityPlanning,
	"itinerary":         IntentItineraryCreation,
	"general":           IntentGeneralInquiry,
}

func (i Intent) String() string {
	return string(i)
}

func (i Intent) Valid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// ParseIntent normalises provider output into a known intent. The second value is false
// when the input is not recognised, in which case GeneralInquiry is returned.
func ParseIntent(s string) (Intent, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if in := Intent(key); in.Valid() {
		return in, true
	}
	if in, ok := intentAliases[key]; ok {
		return in, true
	}
	return IntentGeneralInquiry, false
}

// Slot names shared by the classifier, the dispatcher and the catalog lookup.
const (
	SlotFromLocation = "from_location"
	SlotToLocation   = "to_location"
	SlotTravelDate   = "travel_date"
	SlotLocation     = "location"
	SlotCheckInDate  = "check_in_date"
	SlotCheckOutDate = "check_out_date"
	SlotDuration     = "duration"
	SlotDays         = "days"
	SlotInterests    = "interests"
	SlotGroupSize    = "group_size"
	SlotSpecialty    = "specialty"
	SlotCategory     = "category"
	SlotBudget       = "budget"
)

// Entities maps slot names to values. A missing key means the slot was never provided;
// a present key holding nil, "" or an empty list was provided explicitly empty.
type Entities map[string]any

// Has reports whether the slot key is present, regardless of its value.
func (e Entities) Has(key string) bool {
	_, ok := e[key]
	return ok
}

// Filled reports whether the slot is present with a non-empty value.
func (e Entities) Filled(key string) bool {
	v, ok := e[key]
	if !ok || v == nil {
		return false
	}
	switch vv := v.(type) {
	case string:
		return strings.TrimSpace(vv) != ""
	case []string:
		return len(vv) > 0
	case []any:
		return len(vv) > 0
	case map[string]any:
		return len(vv) > 0
	default:
		return true
	}
}

// String returns the slot as text. Numbers are formatted; lists are joined with ", ".
func (e Entities) String(key string) (string, bool) {
	if !e.Filled(key) {
		return "", false
	}
	switch v := e[key].(type) {
	case string:
		return strings.TrimSpace(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	default:
		list, _ := e.Strings(key)
		if len(list) > 0 {
			return strings.Join(list, ", "), true
		}
		return fmt.Sprint(v), true
	}
}

// Strings returns list-valued slots. A single string is returned as a one-element list.
func (e Entities) Strings(key string) ([]string, bool) {
	if !e.Filled(key) {
		return nil, false
	}
	switch v := e[key].(type) {
	case []string:
		return append([]string(nil), v...), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out, len(out) > 0
	case string:
		return []string{strings.TrimSpace(v)}, true
	default:
		return nil, false
	}
}

// Int returns integer-valued slots, accepting JSON numbers and numeric strings.
func (e Entities) Int(key string) (int, bool) {
	if !e.Filled(key) {
		return 0, false
	}
	switch v := e[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	default:
		return 0, false
	}
}

// Clone returns a shallow copy; a nil receiver yields an empty map.
func (e Entities) Clone() Entities {
	out := make(Entities, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Merge returns a new map holding e overlaid by every filled slot of other.
func (e Entities) Merge(other Entities) Entities {
	out := e.Clone()
	for k, v := range other {
		if other.Filled(k) || !out.Has(k) {
			out[k] = v
		}
	}
	return out
}

// Utterance is a single inbound user message. It is not modified after construction.
type Utterance struct {
	Text       string    `json:"text"`
	Language   string    `json:"language,omitempty"`
	SessionID  string    `json:"session_id"`
	ReceivedAt time.Time `json:"received_at"`
}

// IntentResult is produced once per turn and treated as immutable.
type IntentResult struct {
	PrimaryIntent Intent   `json:"primary_intent"`
	Entities      Entities `json:"entities"`
	// Confidence is reported for observability only; no decision depends on it.
	Confidence  float64  `json:"confidence"`
	NextActions []string `json:"next_actions"`
	Source      string   `json:"source,omitempty"`
}

// Classification sources.
const (
	SourceProvider  = "provider"
	SourceFallback  = "fallback"
	SourceRecovered = "recovered"
)

// WithEntities returns a copy of r carrying the given entities.
func (r IntentResult) WithEntities(entities Entities) IntentResult {
	r.Entities = entities.Clone()
	r.NextActions = append([]string(nil), r.NextActions...)
	return r
}
