package catalog

// seedLanguages defines the built-in locale catalog: major instruction
// languages plus the indigenous languages the platform launched with.
var seedLanguages = []Language{
	{
		Code:       "en",
		Name:       "English",
		NativeName: "English",
		Region:     "Global",
		Cultural: CulturalContext{
			Greeting:      "Hello",
			StyleAffinity: StyleReading,
		},
		Speech: SpeechSupport{Synthesis: true, Recognition: true},
	},
	{
		Code:       "es",
		Name:       "Spanish",
		NativeName: "Español",
		Region:     "Latin America",
		Cultural: CulturalContext{
			Greeting:      "Hola",
			StyleAffinity: StyleAuditory,
			Storytelling:  true,
		},
		Speech: SpeechSupport{Synthesis: true, Recognition: true},
	},
	{
		Code:       "hi",
		Name:       "Hindi",
		NativeName: "हिन्दी",
		Region:     "South Asia",
		Cultural: CulturalContext{
			Greeting:      "Namaste",
			StyleAffinity: StyleAuditory,
			OralTradition: true,
			Storytelling:  true,
		},
		Speech: SpeechSupport{Synthesis: true, Recognition: true},
	},
	{
		Code:       "sw",
		Name:       "Swahili",
		NativeName: "Kiswahili",
		Region:     "East Africa",
		Cultural: CulturalContext{
			Greeting:      "Jambo",
			StyleAffinity: StyleAuditory,
			OralTradition: true,
			Storytelling:  true,
		},
		Speech: SpeechSupport{Synthesis: true, Recognition: false},
	},
	{
		Code:       "qu",
		Name:       "Quechua",
		NativeName: "Runasimi",
		Region:     "Andes",
		Indigenous: true,
		Cultural: CulturalContext{
			Greeting:      "Napaykullayki",
			StyleAffinity: StyleKinesthetic,
			OralTradition: true,
			Storytelling:  true,
		},
		Speech: SpeechSupport{},
	},
	{
		Code:       "nv",
		Name:       "Navajo",
		NativeName: "Diné bizaad",
		Region:     "North America",
		Indigenous: true,
		Cultural: CulturalContext{
			Greeting:      "Yá'át'ééh",
			StyleAffinity: StyleVisual,
			OralTradition: true,
			Storytelling:  true,
		},
		Speech: SpeechSupport{},
	},
	{
		Code:       "mi",
		Name:       "Maori",
		NativeName: "Te Reo Māori",
		Region:     "Aotearoa",
		Indigenous: true,
		Cultural: CulturalContext{
			Greeting:      "Kia ora",
			StyleAffinity: StyleKinesthetic,
			OralTradition: true,
			Storytelling:  true,
		},
		Speech: SpeechSupport{Synthesis: true, Recognition: false},
	},
	{
		Code:       "yo",
		Name:       "Yoruba",
		NativeName: "Èdè Yorùbá",
		Region:     "West Africa",
		Cultural: CulturalContext{
			Greeting:      "Bawo",
			StyleAffinity: StyleAuditory,
			OralTradition: true,
			Storytelling:  true,
		},
		Speech: SpeechSupport{},
	},
	{
		Code:       "zh",
		Name:       "Mandarin",
		NativeName: "中文",
		Region:     "East Asia",
		Cultural: CulturalContext{
			Greeting:      "Nǐ hǎo",
			StyleAffinity: StyleVisual,
		},
		Speech: SpeechSupport{Synthesis: true, Recognition: true},
	},
	{
		Code:       "ar",
		Name:       "Arabic",
		NativeName: "العربية",
		Region:     "Middle East & North Africa",
		Cultural: CulturalContext{
			Greeting:      "Marhaban",
			StyleAffinity: StyleReading,
			OralTradition: true,
		},
		Speech: SpeechSupport{Synthesis: true, Recognition: true},
	},
}
