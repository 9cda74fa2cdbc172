package catalog

// seedTutors defines the built-in tutor persona roster. Order matters:
// selection tie-breaks pick the first persona with the maximum score.
var seedTutors = []TutorPersona{
	{
		ID:                 "maya-es",
		Name:               "Profesora Maya",
		Personality:        PersonalityEncouraging,
		Language:           mustSeedLanguage("es"),
		Specializations:    []string{"math", "science"},
		CulturalBackground: "Latin American",
		Voice: VoiceCharacteristics{
			Gender:  "female",
			AgeBand: "adult",
			Accent:  "mexican",
			Tone:    "warm",
		},
		Behavior: AdaptiveBehavior{
			Patience:             8,
			Encouragement:        9,
			CulturalReferences:   7,
			ComplexityAdaptation: true,
		},
	},
	{
		ID:                 "kofi-sw",
		Name:               "Mwalimu Kofi",
		Personality:        PersonalityWiseElder,
		Language:           mustSeedLanguage("sw"),
		Specializations:    []string{"history", "language-arts"},
		CulturalBackground: "East African",
		Voice: VoiceCharacteristics{
			Gender:  "male",
			AgeBand: "elder",
			Accent:  "kenyan",
			Tone:    "calm",
		},
		Behavior: AdaptiveBehavior{
			Patience:             10,
			Encouragement:        6,
			CulturalReferences:   9,
			ComplexityAdaptation: false,
		},
	},
	{
		ID:                 "amaru-qu",
		Name:               "Yachachiq Amaru",
		Personality:        PersonalityWiseElder,
		Language:           mustSeedLanguage("qu"),
		Specializations:    []string{"math", "history"},
		CulturalBackground: "Andean Quechua",
		Voice: VoiceCharacteristics{
			Gender:  "male",
			AgeBand: "elder",
			Accent:  "andean",
			Tone:    "grounded",
		},
		Behavior: AdaptiveBehavior{
			Patience:             9,
			Encouragement:        7,
			CulturalReferences:   10,
			ComplexityAdaptation: true,
		},
	},
	{
		ID:                 "priya-hi",
		Name:               "Priya Didi",
		Personality:        PersonalityPeerMentor,
		Language:           mustSeedLanguage("hi"),
		Specializations:    []string{"science", "math"},
		CulturalBackground: "South Asian",
		Voice: VoiceCharacteristics{
			Gender:  "female",
			AgeBand: "young-adult",
			Accent:  "indian",
			Tone:    "playful",
		},
		Behavior: AdaptiveBehavior{
			Patience:             7,
			Encouragement:        8,
			CulturalReferences:   6,
			ComplexityAdaptation: true,
		},
	},
	{
		ID:                 "aroha-mi",
		Name:               "Whaea Aroha",
		Personality:        PersonalityFriendly,
		Language:           mustSeedLanguage("mi"),
		Specializations:    []string{"language-arts", "music"},
		CulturalBackground: "Maori",
		Voice: VoiceCharacteristics{
			Gender:  "female",
			AgeBand: "adult",
			Accent:  "new-zealand",
			Tone:    "welcoming",
		},
		Behavior: AdaptiveBehavior{
			Patience:             8,
			Encouragement:        9,
			CulturalReferences:   9,
			ComplexityAdaptation: false,
		},
	},
	{
		ID:                 "samuel-en",
		Name:               "Mr. Samuel",
		Personality:        PersonalityProfessional,
		Language:           mustSeedLanguage("en"),
		Specializations:    []string{"math", "science", "language-arts"},
		CulturalBackground: "Global",
		Voice: VoiceCharacteristics{
			Gender:  "male",
			AgeBand: "adult",
			Accent:  "neutral",
			Tone:    "clear",
		},
		Behavior: AdaptiveBehavior{
			Patience:             6,
			Encouragement:        5,
			CulturalReferences:   3,
			ComplexityAdaptation: true,
		},
	},
}

// mustSeedLanguage resolves a language code against the seed table.
// Seed data is compile-time fixed, so a miss is a programming error.
func mustSeedLanguage(code string) Language {
	for _, l := range seedLanguages {
		if l.Code == code {
			return l
		}
	}
	panic("seed language not found: " + code)
}
