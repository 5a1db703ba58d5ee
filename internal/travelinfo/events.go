package travelinfo

import (
	"context"
	"strings"
)

type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	TicketPrice float64 `json:"ticket_price"`
	Organizer   string  `json:"organizer"`
}

var events = []Event{
	{
		ID: "event_001", Title: "Sarhul Festival Celebration", Date: "2024-03-15", Location: "Ranchi",
		Category: "Cultural Festival", Description: "Traditional spring festival celebrated by tribal communities",
		Organizer: "Jharkhand Tourism Board",
	},
	{
		ID: "event_002", Title: "Dokra Art Workshop", Date: "2024-03-20", Location: "Hazaribagh",
		Category: "Art & Craft", Description: "Learn traditional metal casting techniques",
		TicketPrice: 1500, Organizer: "Local Artisan Cooperative",
	},
	{
		ID: "event_003", Title: "Karma Puja Gathering", Date: "2024-09-14", Location: "Ranchi",
		Category: "Cultural Festival", Description: "Harvest festival with Karma dance and folk music",
		Organizer: "Jharkhand Tourism Board",
	},
	{
		ID: "event_004", Title: "Shravani Mela", Date: "2024-07-22", Location: "Deoghar",
		Category: "Pilgrimage", Description: "Month-long pilgrimage to Baba Baidyanath Dham",
		Organizer: "Deoghar District Administration",
	},
}

// Events lists known events at a location; "all" or an empty location lists every event.
func (s *Service) Events(_ context.Context, location string) []Event {
	location = strings.TrimSpace(location)
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if location == "" || strings.EqualFold(location, "all") || strings.EqualFold(e.Location, location) {
			out = append(out, e)
		}
	}
	return out
}
