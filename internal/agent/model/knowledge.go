package model

// Knowledge is the domain description handed to the NLU and generation providers.
type Knowledge struct {
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
	Locations    []string `json:"locations"`
	Festivals    []string `json:"festivals"`
	Arts         []string `json:"arts"`
	Languages    []string `json:"languages"`
}

// DefaultKnowledge returns a fresh copy of the Jharkhand knowledge base.
func DefaultKnowledge() Knowledge {
	return Knowledge{
		Role: "ProRaahi AI Tourism Agent",
		Capabilities: []string{
			"Real-time weather and safety information",
			"Transportation booking (trains, flights, buses)",
			"Hotel and accommodation reservations",
			"Local guide matching and booking",
			"Cultural activity and festival planning",
			"Itinerary creation and optimization",
		},
		Locations: []string{"Ranchi", "Jamshedpur", "Deoghar", "Hazaribagh", "Netarhat", "Betla"},
		Festivals: []string{"Sarhul", "Karma", "Tusu Parab", "Poush Parbon"},
		Arts:      []string{"Sohrai painting", "Dokra metal craft", "Paitkar scroll painting"},
		Languages: []string{"Hindi", "English", "Santhali", "Bengali", "Oraon"},
	}
}
