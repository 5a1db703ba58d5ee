package nlu

// TemplateSet holds the canned replies of the local assistant for one language.
type TemplateSet struct {
	Greeting        string
	Help            string
	Default         string
	Cultural        string
	EcoTourism      string
	TouristPlaces   string
	ItineraryPrompt string
	// ItineraryTitle is a format string taking the number of days.
	ItineraryTitle string
	DayLabel       string
	Days           []DayBlock
	Tips           []string
	TipsTitle      string
	BudgetLine     string
	Closing        string
}

type DayBlock struct {
	Title string
	Items []string
}

// Templates is keyed by language tag; lookups for unsupported tags use English.
var Templates = map[string]TemplateSet{
	LangEnglish: {
		Greeting: "Hello! Welcome to Jharkhand Tourism Assistant. How can I help you explore the beautiful state of Jharkhand?",
		Help: "I can help you with:\n• Tourist places and attractions\n• Plan customized itineraries\n• Cultural and heritage sites\n" +
			"• Eco-tourism and wildlife\n• Local information and tips\n\nJust ask me anything about Jharkhand!",
		Default: "I'm here to help you explore Jharkhand! Ask me about tourist places, plan itineraries, or get local information.",
		Cultural: "Jharkhand is rich in tribal culture and heritage:\n\nCultural Attractions:\n" +
			"• Jagannath Temple Ranchi - Replica of Puri temple\n• Rajrappa Temple - Ancient Chinnamasta temple\n" +
			"• Tribal Museum Ranchi - Showcases tribal heritage\n• Pahari Mandir - Hilltop temple with panoramic views\n" +
			"• Sun Temple Bundu - Ancient sun worship site\n\nCultural Experiences:\n• Tribal dance performances\n" +
			"• Traditional handicraft workshops\n• Local festivals and fairs\n• Authentic tribal cuisine\n\n" +
			"Would you like to plan a cultural heritage tour?",
		EcoTourism: "Jharkhand offers amazing eco-tourism experiences:\n\nEco-Tourism Destinations:\n" +
			"• Betla National Park - Tigers, elephants, wildlife safari\n• Palamau Tiger Reserve - Rich biodiversity\n" +
			"• Hazaribagh Wildlife Sanctuary - Bird watching paradise\n• Dalma Wildlife Sanctuary - Elephant reserve\n" +
			"• Koderma Wildlife Sanctuary - Rock formations\n\nNatural Attractions:\n• Hundru Falls - 98m spectacular waterfall\n" +
			"• Dassam Falls - Beautiful cascade\n• Hirni Falls - Hidden gem for nature lovers\n" +
			"• Netarhat - Queen of Chotanagpur plateau\n\nPerfect for nature photography and wildlife enthusiasts!",
		TouristPlaces: "Popular Tourist Attractions in Jharkhand:\n\nNature & Eco-Tourism:\n" +
			"• Netarhat - Queen of Chotanagpur, beautiful hill station\n• Betla National Park - Wildlife sanctuary with tigers and elephants\n" +
			"• Hundru Falls - 98m high spectacular waterfall near Ranchi\n• Dassam Falls - Beautiful cascade perfect for nature lovers\n\n" +
			"Cultural Heritage Sites:\n• Jagannath Temple Ranchi - Replica of famous Puri Jagannath Temple\n" +
			"• Rajrappa Temple - Ancient temple dedicated to Goddess Chinnamasta\n• Tribal Museum Ranchi - Showcases rich tribal heritage\n" +
			"• Pahari Mandir - Temple on hilltop with panoramic city views\n\nAdventure & Activities:\n" +
			"• Rock Garden Ranchi - Adventure activities and boating\n• Tagore Hill - Trekking and scenic photography\n" +
			"• Kanke Dam - Water sports and family picnic spot\n\n" +
			"Would you like detailed information about any specific attraction or plan a customized itinerary?",
		ItineraryPrompt: "To plan your perfect Jharkhand itinerary, please tell me:\n• Number of days?\n" +
			"• Your interests (nature/cultural/adventure)?\n• Budget range?\n\nExample: 'Plan a 3 day nature trip'",
		ItineraryTitle: "%d-Day Jharkhand Itinerary:",
		DayLabel:       "Day",
		Days: []DayBlock{
			{"Ranchi Exploration", []string{
				"Morning: Visit Hundru Falls (98m waterfall)",
				"Afternoon: Rock Garden - boating and adventure activities",
				"Evening: Pahari Mandir for panoramic sunset views",
				"Night: Stay in Ranchi city",
			}},
			{"Cultural Heritage Tour", []string{
				"Morning: Jagannath Temple - architectural marvel",
				"Afternoon: Tribal Museum - rich cultural heritage",
				"Evening: Local market shopping for tribal handicrafts",
				"Night: Cultural folk dance performance",
			}},
			{"Netarhat Hill Station", []string{
				"Early morning: Drive to Netarhat (Queen of Chotanagpur)",
				"Morning: Sunrise point experience",
				"Afternoon: Nature walks and local tribal village visit",
				"Evening: Sunset point with panoramic valley views",
			}},
			{"Wildlife Safari", []string{
				"Morning: Betla National Park safari",
				"Afternoon: Wildlife photography and nature walks",
				"Evening: Campfire and traditional dinner",
			}},
			{"Adventure & Departure", []string{
				"Morning: Dassam Falls - nature photography",
				"Afternoon: Tagore Hill trekking",
				"Evening: Return journey with memories",
			}},
		},
		TipsTitle: "Travel Tips:",
		Tips: []string{
			"Best time: October to March (pleasant weather)",
			"Carry comfortable trekking shoes",
			"Try local tribal cuisine (Handia, Thekua)",
			"Book forest accommodations in advance",
			"Respect tribal customs and traditions",
		},
		BudgetLine: "Estimated Budget: ₹8,000-15,000 per person",
		Closing:    "Need help with bookings or more details? Just ask!",
	},
	LangHindi: {
		Greeting: "नमस्ते! झारखंड पर्यटन सहायक में आपका स्वागत है। मैं झारखंड राज्य की खोज में आपकी कैसे सहायता कर सकता हूँ?",
		Help: "मैं आपकी इन चीजों में सहायता कर सकता हूँ:\n• पर्यटन स्थल और आकर्षण\n• व्यक्तिगत यात्रा योजना\n" +
			"• सांस्कृतिक और विरासत स्थल\n• पारिस्थितिकी पर्यटन और वन्यजीव\n• स्थानीय जानकारी और सुझाव\n\nझारखंड के बारे में कुछ भी पूछें!",
		Default: "मैं झारखंड की खोज में आपकी सहायता के लिए यहाँ हूँ! पर्यटन स्थलों, यात्रा योजना या स्थानीय जानकारी के बारे में पूछें।",
		Cultural: "झारखंड आदिवासी संस्कृति और विरासत से भरपूर है:\n\nसांस्कृतिक आकर्षण:\n" +
			"• जगन्नाथ मंदिर रांची - पुरी मंदिर की प्रतिकृति\n• राजरप्पा मंदिर - प्राचीन छिन्नमस्ता मंदिर\n" +
			"• आदिवासी संग्रहालय रांची - आदिवासी विरासत\n• पहाड़ी मंदिर - पहाड़ी पर स्थित मंदिर\n\n" +
			"सांस्कृतिक अनुभव:\n• आदिवासी नृत्य प्रदर्शन\n• पारंपरिक हस्तशिल्प कार्यशाला\n• स्थानीय त्योहार और मेले\n\n" +
			"क्या आप सांस्कृतिक यात्रा की योजना बनाना चाहेंगे?",
		EcoTourism: "झारखंड में अद्भुत पारिस्थितिकी पर्यटन:\n\nपारिस्थितिकी स्थल:\n" +
			"• बेतला राष्ट्रीय उद्यान - बाघ, हाथी, वन्यजीव सफारी\n• पलामू टाइगर रिजर्व - समृद्ध जैव विविधता\n" +
			"• हजारीबाग वन्यजीव अभयारण्य - पक्षी देखने के लिए\n\nप्राकृतिक आकर्षण:\n" +
			"• हुंडरू फॉल्स - 98 मीटर का शानदार झरना\n• दशम फॉल्स - सुंदर झरना\n• नेतरहाट - छोटानागपुर की रानी",
		TouristPlaces: "झारखंड के प्रमुख पर्यटन स्थल:\n\nप्राकृतिक सुंदरता:\n• नेतरहाट - छोटानागपुर की रानी\n" +
			"• हुंडरू फॉल्स - 98 मीटर ऊंचा झरना\n• दशम फॉल्स - प्राकृतिक सुंदरता\n• बेतला राष्ट्रीय उद्यान - वन्यजीव सफारी\n\n" +
			"सांस्कृतिक स्थल:\n• जगन्नाथ मंदिर रांची\n• राजरप्पा मंदिर\n• आदिवासी संग्रहालय\n• पहाड़ी मंदिर\n\n" +
			"रोमांच:\n• रॉक गार्डन रांची\n• टैगोर हिल - ट्रेकिंग\n• कांके डैम - जल क्रीड़ा\n\nकिसी विशेष स्थान के बारे में जानना चाहेंगे?",
		ItineraryPrompt: "यात्रा योजना बनाने के लिए कृपया बताएं:\n• कितने दिन की यात्रा?\n" +
			"• आपकी रुचि (प्रकृति/सांस्कृतिक/साहसिक)?\n• बजट रेंज?\n\nउदाहरण: '3 दिन की प्राकृतिक यात्रा की योजना बनाएं'",
		ItineraryTitle: "%d-दिन झारखंड यात्रा योजना:",
		DayLabel:       "दिन",
		Days: []DayBlock{
			{"रांची अन्वेषण", []string{
				"सुबह: हुंडरू फॉल्स (98 मीटर झरना) देखें",
				"दोपहर: रॉक गार्डन - नौका विहार और रोमांचक गतिविधियां",
				"शाम: पहाड़ी मंदिर से सूर्यास्त का नजारा",
				"रात: रांची शहर में ठहरें",
			}},
			{"सांस्कृतिक विरासत यात्रा", []string{
				"सुबह: जगन्नाथ मंदिर - वास्तुकला का नमूना",
				"दोपहर: आदिवासी संग्रहालय - समृद्ध सांस्कृतिक विरासत",
				"शाम: स्थानीय बाजार में आदिवासी हस्तशिल्प खरीदारी",
				"रात: सांस्कृतिक लोक नृत्य प्रदर्शन",
			}},
			{"नेतरहाट हिल स्टेशन", []string{
				"सुबह जल्दी: नेतरहाट की यात्रा (छोटानागपुर की रानी)",
				"सुबह: सूर्योदय बिंदु का अनुभव",
				"दोपहर: प्रकृति सैर और स्थानीय आदिवासी गांव भ्रमण",
				"शाम: सूर्यास्त बिंदु से घाटी का नजारा",
			}},
		},
		TipsTitle: "यात्रा सुझाव:",
		Tips: []string{
			"सबसे अच्छा समय: अक्टूबर से मार्च (सुहावना मौसम)",
			"आरामदायक ट्रेकिंग जूते ले जाएं",
			"स्थानीय आदिवासी भोजन का स्वाद लें",
			"वन विश्राम गृह पहले से बुक करें",
		},
		BudgetLine: "अनुमानित बजट: ₹8,000-15,000 प्रति व्यक्ति",
		Closing:    "बुकिंग या अधिक जानकारी चाहिए? बस पूछें!",
	},
	LangBengali: {
		Greeting: "নমস্কার! ঝাড়খণ্ড পর্যটন সহায়কে আপনাকে স্বাগতম। ঝাড়খণ্ড রাজ্যের অন্বেষণে আমি কীভাবে সাহায্য করতে পারি?",
		Help: "আমি এই বিষয়গুলিতে সাহায্য করতে পারি:\n• পর্যটন স্থান ও আকর্ষণ\n• ব্যক্তিগত ভ্রমণ পরিকল্পনা\n" +
			"• সাংস্কৃতিক ও ঐতিহ্য স্থান\n• পরিবেশ পর্যটন ও বন্যপ্রাণী\n• স্থানীয় তথ্য ও পরামর্শ\n\nঝাড়খণ্ড সম্পর্কে যেকোনো কিছু জিজ্ঞাসা করুন!",
		Default: "আমি ঝাড়খণ্ড অন্বেষণে আপনাকে সাহায্য করার জন্য এখানে আছি! পর্যটন স্থান, ভ্রমণ পরিকল্পনা বা স্থানীয় তথ্য সম্পর্কে জিজ্ঞাসা করুন।",
		Cultural: "ঝাড়খণ্ড উপজাতীয় সংস্কৃতি ও ঐতিহ্যে সমৃদ্ধ:\n\nসাংস্কৃতিক আকর্ষণ:\n" +
			"• জগন্নাথ মন্দির রাঁচি - পুরী মন্দিরের প্রতিরূপ\n• রাজরাপ্পা মন্দির - প্রাচীন ছিন্নমস্তা মন্দির\n" +
			"• উপজাতীয় জাদুঘর রাঁচি - উপজাতীয় ঐতিহ্য\n\nসাংস্কৃতিক অভিজ্ঞতা:\n• উপজাতীয় নৃত্য পরিবেশনা\n" +
			"• ঐতিহ্যবাহী হস্তশিল্প কর্মশালা\n• স্থানীয় উৎসব ও মেলা",
		EcoTourism: "ঝাড়খণ্ডে অসাধারণ পরিবেশ পর্যটন:\n\nপরিবেশ পর্যটন গন্তব্য:\n" +
			"• বেতলা জাতীয় উদ্যান - বাঘ, হাতি, বন্যপ্রাণী সাফারি\n• পালামৌ টাইগার রিজার্ভ - সমৃদ্ধ জীববৈচিত্র্য\n" +
			"• হাজারিবাগ বন্যপ্রাণী অভয়ারণ্য - পাখি দেখার স্বর্গ\n\nপ্রাকৃতিক আকর্ষণ:\n" +
			"• হুন্দ্রু জলপ্রপাত - ৯৮ মিটার দর্শনীয় জলপ্রপাত\n• দশম জলপ্রপাত - সুন্দর জলপ্রপাত",
		TouristPlaces: "ঝাড়খণ্ডের প্রধান পর্যটন স্থান:\n\nপ্রাকৃতিক সৌন্দর্য:\n• নেতরহাট - ছোটনাগপুরের রানী\n" +
			"• হুন্দ্রু জলপ্রপাত - ৯৮ মিটার উঁচু\n• দশম জলপ্রপাত - প্রাকৃতিক সৌন্দর্য\n• বেতলা জাতীয় উদ্যান - বন্যপ্রাণী সাফারি\n\n" +
			"সাংস্কৃতিক স্থান:\n• জগন্নাথ মন্দির রাঁচি\n• রাজরাপ্পা মন্দির\n• উপজাতীয় জাদুঘর\n• পাহাড়ী মন্দির\n\n" +
			"অ্যাডভেঞ্চার:\n• রক গার্ডেন রাঁচি\n• ট্যাগোর হিল - ট্রেকিং\n• কাঁকে বাঁধ - জল ক্রীড়া\n\nকোন বিশেষ স্থান সম্পর্কে জানতে চান?",
		ItineraryPrompt: "ভ্রমণ পরিকল্পনা তৈরি করতে দয়া করে বলুন:\n• কতদিনের ভ্রমণ?\n" +
			"• আপনার আগ্রহ (প্রকৃতি/সাংস্কৃতিক/দুঃসাহসিক)?\n• বাজেট সীমা?\n\nউদাহরণ: '৩ দিনের প্রকৃতি ভ্রমণ পরিকল্পনা করুন'",
		ItineraryTitle: "%d-দিন ঝাড়খণ্ড ভ্রমণ পরিকল্পনা:",
		DayLabel:       "দিন",
		Days: []DayBlock{
			{"রাঁচি অন্বেষণ", []string{
				"সকাল: হুন্দ্রু জলপ্রপাত (৯৮ মিটার) দেখুন",
				"বিকাল: রক গার্ডেন - নৌকা বিহার ও অ্যাডভেঞ্চার",
				"সন্ধ্যা: পাহাড়ী মন্দির থেকে সূর্যাস্ত",
				"রাত: রাঁচি শহরে থাকুন",
			}},
			{"সাংস্কৃতিক ঐতিহ্য ভ্রমণ", []string{
				"সকাল: জগন্নাথ মন্দির - স্থাপত্য নিদর্শন",
				"বিকাল: উপজাতীয় জাদুঘর - সমৃদ্ধ সাংস্কৃতিক ঐতিহ্য",
				"সন্ধ্যা: স্থানীয় বাজারে উপজাতীয় হস্তশিল্প কেনাকাটা",
				"রাত: সাংস্কৃতিক লোকনৃত্য পরিবেশনা",
			}},
			{"নেতরহাট পাহাড়ী স্টেশন", []string{
				"ভোর: নেতরহাট যাত্রা (ছোটনাগপুরের রানী)",
				"সকাল: সূর্যোদয় বিন্দুর অভিজ্ঞতা",
				"বিকাল: প্রকৃতি হাঁটা ও স্থানীয় উপজাতীয় গ্রাম ভ্রমণ",
				"সন্ধ্যা: সূর্যাস্ত বিন্দু থেকে উপত্যকার দৃশ্য",
			}},
		},
		TipsTitle: "ভ্রমণ পরামর্শ:",
		Tips: []string{
			"সবচেয়ে ভাল সময়: অক্টোবর থেকে মার্চ (মনোরম আবহাওয়া)",
			"আরামদায়ক ট্রেকিং জুতা নিয়ে যান",
			"স্থানীয় উপজাতীয় খাবারের স্বাদ নিন",
			"বন বিশ্রামাগার আগে থেকে বুক করুন",
		},
		BudgetLine: "আনুমানিক বাজেট: ₹৮,০০০-১৫,০০০ প্রতি ব্যক্তি",
		Closing:    "বুকিং বা আরও তথ্য প্রয়োজন? শুধু জিজ্ঞাসা করুন!",
	},
}

// TemplatesFor returns the set for lang, falling back to English.
func TemplatesFor(lang string) TemplateSet {
	if t, ok := Templates[lang]; ok {
		return t
	}
	return Templates[DefaultLanguage]
}
