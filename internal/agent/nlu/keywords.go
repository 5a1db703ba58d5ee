package nlu

import "github.com/proraahi-core/server/internal/agent/model"

type intentKeywords struct {
	intent   model.Intent
	keywords []string
}

// Evaluated in order; the first category with a hit wins.
var fallbackIntentKeywords = []intentKeywords{
	{model.IntentTransportBooking, []string{
		"train", "trains", "flight", "flights", "bus", "buses", "ticket", "tickets", "transport", "transportation",
		"ट्रेन", "टिकट", "बस", "उड़ान", "फ्लाइट",
		"ট্রেন", "টিকিট", "বাস", "ফ্লাইট",
	}},
	{model.IntentAccommodationBooking, []string{
		"hotel", "hotels", "stay", "room", "rooms", "accommodation", "lodge", "resort", "homestay", "check-in",
		"होटल", "कमरा", "ठहरने", "आवास",
		"হোটেল", "থাকার", "ঘর ভাড়া",
	}},
	{model.IntentGuideBooking, []string{
		"guide", "guides",
		"गाइड", "मार्गदर्शक",
		"গাইড", "পথপ্রদর্শক",
	}},
	{model.IntentActivityPlanning, []string{
		"activity", "activities", "workshop", "experience", "experiences", "festival", "festivals", "safari", "trekking",
		"गतिविधि", "गतिविधियां", "त्योहार", "कार्यशाला",
		"কার্যকলাপ", "উৎসব", "কর্মশালা",
	}},
	{model.IntentItineraryCreation, []string{
		"plan", "itinerary", "trip", "tour", "day", "days",
		"योजना", "यात्रा",
		"পরিকল্পনা", "ভ্রমণ",
	}},
}

var (
	natureKeywords = []string{
		"nature", "eco", "wildlife", "falls", "waterfall", "waterfalls", "forest",
		"प्राकृतिक", "वन", "প্রকৃতি", "বন",
	}
	culturalKeywords = []string{
		"cultural", "culture", "heritage", "tribal", "temple", "temples",
		"सांस्कृतिक", "मंदिर", "সংস্কৃতি", "মন্দির",
	}
	adventureKeywords = []string{
		"adventure", "trekking", "trek", "sports",
		"साहसिक", "ट्रेकिंग", "দুঃসাহসিক", "ট্রেকিং",
	}
)

// Topics answered by the local assistant, in match order.
type Topic string

const (
	TopicGreeting      Topic = "greeting"
	TopicTouristPlaces Topic = "tourist_places"
	TopicItinerary     Topic = "itinerary"
	TopicCultural      Topic = "cultural"
	TopicEcoTourism    Topic = "eco_tourism"
	TopicHelp          Topic = "help"
	TopicDefault       Topic = "default"
)

type topicKeywords struct {
	topic    Topic
	keywords []string
}

var topicOrder = []topicKeywords{
	{TopicGreeting, []string{"hello", "hi", "hey", "namaste", "namaskar", "नमस्ते", "नमस्कार", "নমস্কার"}},
	{TopicTouristPlaces, []string{"places", "tourist", "visit", "attraction", "attractions", "spots", "पर्यटन", "স্থান"}},
	{TopicItinerary, []string{"plan", "itinerary", "trip", "tour", "day", "days", "योजना", "পরিকল্পনা"}},
	{TopicCultural, []string{"cultural", "culture", "heritage", "tribal", "temple", "सांस्कृतिक", "সংস্কৃতি"}},
	{TopicEcoTourism, []string{"eco", "nature", "wildlife", "forest", "falls", "प्राकृतिक", "প্রকৃতি"}},
	{TopicHelp, []string{"help", "assist", "support", "मदद", "সাহায্য"}},
}
