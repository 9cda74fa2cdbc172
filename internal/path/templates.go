package path

import "fmt"

// connectionKey indexes curated cultural-connection templates.
type connectionKey struct {
	subject string
	culture string
}

// curatedConnections holds hand-written cultural connections for the
// subject/culture pairs the content team has covered. Everything else
// falls through to the neutral template.
var curatedConnections = map[connectionKey]CulturalConnection{
	{"math", "andes"}: {
		LocalExample:   "Counting and recording harvests with quipu knot strings",
		GlobalContext:  "Knot-based records are an early positional number system",
		HistoricalNote: "Inca administrators ran an empire's accounting on quipus",
	},
	{"math", "quechua"}: {
		LocalExample:   "Counting and recording harvests with quipu knot strings",
		GlobalContext:  "Knot-based records are an early positional number system",
		HistoricalNote: "Inca administrators ran an empire's accounting on quipus",
	},
	{"math", "east_africa"}: {
		LocalExample:   "Market day arithmetic: pricing and bartering in the soko",
		GlobalContext:  "Mental arithmetic strategies traders use worldwide",
		HistoricalNote: "Swahili coast traders balanced ledgers across the Indian Ocean",
	},
	{"science", "latin_america"}: {
		LocalExample:   "Terraced farming and water channels in mountain villages",
		GlobalContext:  "Irrigation engineering appears in every early civilization",
		HistoricalNote: "Andean terraces created micro-climates for crop experiments",
	},
	{"history", "north_america"}: {
		LocalExample:   "Oral histories passed down through winter storytelling",
		GlobalContext:  "Oral tradition preserved history before widespread writing",
		HistoricalNote: "Diné oral accounts encode centuries of regional history",
	},
	{"language-arts", "aotearoa"}: {
		LocalExample:   "Whakataukī (proverbs) as compact storytelling",
		GlobalContext:  "Proverbs compress shared wisdom across all languages",
		HistoricalNote: "Māori oratory traditions shaped formal speech-making",
	},
	{"music", "west_africa"}: {
		LocalExample:   "Call-and-response drumming patterns",
		GlobalContext:  "Rhythmic call-and-response appears in music worldwide",
		HistoricalNote: "Yoruba talking drums carried messages between towns",
	},
}

// connectionFor returns the curated connection for a subject/culture pair,
// or a neutral template when no curated entry exists. Never fails.
func connectionFor(subject, culture string) CulturalConnection {
	if c, ok := curatedConnections[connectionKey{subject: subject, culture: culture}]; ok {
		return c
	}
	if culture == "" {
		return CulturalConnection{
			LocalExample:   fmt.Sprintf("Everyday examples of %s from the learner's own community", subject),
			GlobalContext:  fmt.Sprintf("How %s connects learners around the world", subject),
			HistoricalNote: fmt.Sprintf("How people have practiced %s through history", subject),
		}
	}
	return CulturalConnection{
		LocalExample:   fmt.Sprintf("Examples of %s drawn from %s traditions", subject, culture),
		GlobalContext:  fmt.Sprintf("How %s connects %s learners with the world", subject, culture),
		HistoricalNote: fmt.Sprintf("The role of %s in %s history", subject, culture),
	}
}

// interactiveElements maps a dominant learning style to interaction tags.
func interactiveElements(dominant string) []string {
	switch dominant {
	case "visual":
		return []string{"drag_and_drop", "diagram_labeling"}
	case "auditory":
		return []string{"echo_practice", "rhythm_game"}
	case "kinesthetic":
		return []string{"build_and_check", "movement_prompt"}
	default:
		return []string{"fill_in_blank", "matching_pairs"}
	}
}
