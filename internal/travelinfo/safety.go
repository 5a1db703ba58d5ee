package travelinfo

import (
	"context"
	"strings"
	"time"
)

type Alert struct {
	Type     string    `json:"type"`
	Severity string    `json:"severity"`
	Message  string    `json:"message"`
	IssuedAt time.Time `json:"issued_at"`
}

type Hospital struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
	Phone    string `json:"phone"`
}

type SafetyReport struct {
	Location          string            `json:"location"`
	SafetyScore       float64           `json:"safety_score"`
	Level             string            `json:"level"`
	Alerts            []Alert           `json:"alerts"`
	Recommendations   []string          `json:"recommendations"`
	EmergencyContacts map[string]string `json:"emergency_contacts"`
	NearestHospitals  []Hospital        `json:"nearest_hospitals"`
}

type regionSafety struct {
	score           float64
	level           string
	advisories      []string
	recommendations []string
	contacts        map[string]string
}

var statewideContacts = map[string]string{
	"police":              "100",
	"ambulance":           "108",
	"fire":                "101",
	"tourist_helpline":    "1363",
	"disaster_management": "108",
}

const defaultSafetyRegion = "ranchi"

var safetyByRegion = map[string]regionSafety{
	"ranchi": {
		score: 8.5,
		level: "Safe",
		recommendations: []string{
			"Carry valid ID while traveling",
			"Avoid isolated areas after dark",
			"Keep emergency contacts handy",
		},
	},
	"jamshedpur": {
		score: 9.0,
		level: "Very Safe",
		recommendations: []string{
			"Industrial city with good security",
			"Well-lit roads and public areas",
			"Regular police patrolling",
		},
	},
	"hazaribagh": {
		score: 7.5,
		level: "Moderately Safe",
		advisories: []string{
			"Wildlife crossing areas - drive carefully",
			"Limited mobile connectivity in forest areas",
		},
		recommendations: []string{
			"Travel in groups in forest areas",
			"Inform someone about your itinerary",
			"Carry first aid kit for wildlife areas",
		},
		contacts: map[string]string{"forest_dept": "1926"},
	},
}

var hospitals = []Hospital{
	{Name: "Rajendra Institute of Medical Sciences", Distance: "2.5 km", Phone: "+91-651-2451070"},
}

// Safety returns the advisory for a location. Unknown locations get the Ranchi profile
// under their own name.
func (s *Service) Safety(_ context.Context, location string) SafetyReport {
	region, ok := safetyByRegion[strings.ToLower(strings.TrimSpace(location))]
	if !ok {
		region = safetyByRegion[defaultSafetyRegion]
	}

	contacts := make(map[string]string, len(statewideContacts)+len(region.contacts))
	for k, v := range statewideContacts {
		contacts[k] = v
	}
	for k, v := range region.contacts {
		contacts[k] = v
	}

	now := time.Now().UTC()
	alerts := make([]Alert, 0, len(region.advisories))
	for _, msg := range region.advisories {
		alerts = append(alerts, Alert{Type: "advisory", Severity: "low", Message: msg, IssuedAt: now})
	}

	return SafetyReport{
		Location:          location,
		SafetyScore:       region.score,
		Level:             region.level,
		Alerts:            alerts,
		Recommendations:   append([]string(nil), region.recommendations...),
		EmergencyContacts: contacts,
		NearestHospitals:  append([]Hospital(nil), hospitals...),
	}
}
