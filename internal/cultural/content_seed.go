package cultural

// contentKey indexes curated content entries.
type contentKey struct {
	topic   string
	culture string
}

// curatedContent holds the hand-curated topic/culture pairings. Language
// and age band are filled in at selection time.
var curatedContent = map[contentKey]ContentDescriptor{
	{"math", "Quechua"}: {
		Title:       "Quipu: Mathematics in Knots",
		Description: "Count, group and record numbers the way Andean record-keepers did with knotted strings",
		MediaRefs:   []string{"media/quechua/quipu-diagram", "media/quechua/quipu-audio-story"},
	},
	{"math", "East African"}: {
		Title:       "Market Math on the Swahili Coast",
		Description: "Practice arithmetic through pricing, change-making and bartering at a coastal market",
		MediaRefs:   []string{"media/swahili/market-scene", "media/swahili/trade-routes-map"},
	},
	{"science", "Maori"}: {
		Title:       "Navigating by the Stars",
		Description: "Learn observation and prediction through Polynesian wayfinding across open ocean",
		MediaRefs:   []string{"media/maori/star-compass", "media/maori/waka-model"},
	},
	{"science", "Navajo"}: {
		Title:       "Seasons and the Land",
		Description: "Study weather patterns and ecology through Diné seasonal knowledge",
		MediaRefs:   []string{"media/navajo/seasonal-calendar"},
	},
	{"history", "Yoruba"}: {
		Title:       "Talking Drums and Oral History",
		Description: "How Yoruba communities carried news and history across distances without writing",
		MediaRefs:   []string{"media/yoruba/talking-drum-audio", "media/yoruba/oriki-examples"},
	},
	{"language-arts", "Latin American"}: {
		Title:       "Cuentos: Stories that Teach",
		Description: "Read and retell folk tales that carry lessons across generations",
		MediaRefs:   []string{"media/latam/cuento-collection"},
	},
}
