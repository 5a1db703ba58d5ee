package composer

// Fixed replies used when generation fails or is never attempted.
const (
	GuideFallback     = "I found several excellent local guides who can provide authentic Jharkhand experiences. Let me show you the best matches for your interests."
	ActivityFallback  = "I've found some amazing cultural and adventure activities that showcase the best of Jharkhand's heritage and natural beauty."
	itineraryFallback = "Here's a wonderful %s itinerary showcasing Jharkhand's cultural heritage and natural beauty, tailored to your interests in %s."

	ApologyMessage = "I apologize, but I'm experiencing some technical difficulties. Please try again in a moment."

	transportMissing = "I'd be happy to help you book transportation to Jharkhand! I need a few more details: %s. Could you please provide this information?"
	lodgingMissing   = "I'll help you find perfect accommodation in Jharkhand! Please provide: %s."

	transportPick      = "I recommend the %s departing at %s. It offers the best balance of comfort and timing for your journey to %s."
	transportReasoning = "Based on your preferences for comfort and reasonable travel time."
	transportNone      = "I couldn't find direct transportation options for your dates. Let me suggest alternative routes or dates."

	lodgingPick      = "I highly recommend %s for your stay. It's perfectly located and offers excellent amenities for your Jharkhand experience."
	lodgingReasoning = "Selected based on location, amenities, and guest reviews."
	lodgingNone      = "Let me find alternative accommodation options in nearby areas."

	guideUserContent = "Generate a helpful response about these guides."
)
