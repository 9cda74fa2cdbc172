package profile

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mach-hub-g1/edugamers-engine/internal/catalog"
)

// Analyzer derives learner profiles from interaction and performance
// history. Stateless; safe for concurrent use.
type Analyzer struct {
	cfg Config
	cat *catalog.Catalog
	log *zap.Logger
}

// NewAnalyzer creates an analyzer against the given catalog.
// A nil logger disables logging.
func NewAnalyzer(cfg Config, cat *catalog.Catalog, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{cfg: cfg, cat: cat, log: log}
}

// Analyze builds a LearnerProfile from the supplied history. The result is
// a pure function of the inputs: calling twice with the same arguments
// yields field-for-field equal profiles.
//
// history and performance must be non-nil; empty slices are valid and
// produce documented defaults.
func (a *Analyzer) Analyze(learnerID string, history []InteractionRecord, performance []PerformanceRecord) (*LearnerProfile, error) {
	if learnerID == "" {
		return nil, &InvalidInputError{Field: "learnerId", Reason: "must not be empty"}
	}
	if history == nil {
		return nil, &InvalidInputError{Field: "interactionHistory", Reason: "must not be null"}
	}
	if performance == nil {
		return nil, &InvalidInputError{Field: "performanceRecords", Reason: "must not be null"}
	}

	languages := a.rankLanguages(history)
	strengths, challenges := a.splitByPercentile(performance)

	p := &LearnerProfile{
		ID:                 learnerID,
		PreferredLanguages: languages,
		StyleMix:           styleMix(history),
		CulturalBackground: backgroundTags(languages),
		MasteryLevels:      masteryLevels(performance),
		Strengths:          strengths,
		Challenges:         challenges,
		// TODO: derive interests from topic tags once interaction records carry them.
		Interests:           append([]string(nil), strengths...),
		MotivationalFactors: a.motivationalFactors(history, languages),
		AttentionSpanMins:   a.attentionSpan(history),
		PreferredTimes:      a.preferredTimes(history),
		AccessibilityNeeds:  []string{},
	}
	return p, nil
}

// styleMix computes relative style affinities from interaction modality
// counts. Order-independent; an empty history yields an even mix.
func styleMix(history []InteractionRecord) LearningStyleMix {
	if len(history) == 0 {
		return LearningStyleMix{Visual: 0.25, Auditory: 0.25, Kinesthetic: 0.25, Reading: 0.25}
	}

	var visual, auditory, kinesthetic, reading int
	for _, rec := range history {
		switch rec.Modality {
		case ModalityAudio:
			auditory++
		case ModalityVisual:
			visual++
		case ModalityInteractive:
			kinesthetic++
		default:
			// Text and unrecognized modalities count as reading.
			reading++
		}
	}

	total := float64(len(history))
	return LearningStyleMix{
		Visual:      float64(visual) / total,
		Auditory:    float64(auditory) / total,
		Kinesthetic: float64(kinesthetic) / total,
		Reading:     float64(reading) / total,
	}
}

// rankLanguages returns the distinct language codes in the history ranked
// by frequency descending, ties broken by first-seen order, each resolved
// against the catalog. Unknown codes resolve to a degraded fallback entry.
func (a *Analyzer) rankLanguages(history []InteractionRecord) []catalog.Language {
	type langCount struct {
		code      string
		count     int
		firstSeen int
	}

	counts := make(map[string]*langCount)
	var order []*langCount
	for i, rec := range history {
		if rec.Language == "" {
			continue
		}
		lc, ok := counts[rec.Language]
		if !ok {
			lc = &langCount{code: rec.Language, firstSeen: i}
			counts[rec.Language] = lc
			order = append(order, lc)
		}
		lc.count++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].firstSeen < order[j].firstSeen
	})

	result := make([]catalog.Language, 0, len(order))
	for _, lc := range order {
		lang, known := a.cat.ResolveLanguage(lc.code)
		if !known {
			a.log.Warn("unknown language code, using fallback entry",
				zap.String("code", lc.code))
		}
		result = append(result, lang)
	}
	return result
}

// attentionSpan is the mean session duration in minutes, rounded, floored
// at the configured minimum. An empty history yields the default.
func (a *Analyzer) attentionSpan(history []InteractionRecord) int {
	if len(history) == 0 {
		return a.cfg.DefaultAttentionSpanMins
	}
	var total float64
	for _, rec := range history {
		total += rec.DurationMinutes
	}
	mins := int(math.Round(total / float64(len(history))))
	if mins < a.cfg.MinAttentionSpanMins {
		return a.cfg.MinAttentionSpanMins
	}
	return mins
}

// splitByPercentile buckets subjects into strengths and challenges by
// percentile rank of their accuracy among the supplied subjects. A single
// subject has no peers to rank against and lands in neither bucket.
func (a *Analyzer) splitByPercentile(performance []PerformanceRecord) (strengths, challenges []string) {
	strengths = []string{}
	challenges = []string{}
	n := len(performance)
	if n < 2 {
		return strengths, challenges
	}

	type ranked struct {
		subject  string
		accuracy float64
	}
	subjects := make([]ranked, 0, n)
	for _, rec := range performance {
		subjects = append(subjects, ranked{subject: rec.Subject, accuracy: rec.Accuracy})
	}
	sort.Slice(subjects, func(i, j int) bool {
		if subjects[i].accuracy != subjects[j].accuracy {
			return subjects[i].accuracy > subjects[j].accuracy
		}
		return subjects[i].subject < subjects[j].subject
	})

	for _, s := range subjects {
		lower := 0
		for _, other := range subjects {
			if other.accuracy < s.accuracy {
				lower++
			}
		}
		percentile := float64(lower) / float64(n-1)
		switch {
		case percentile >= a.cfg.StrongPercentile:
			strengths = append(strengths, s.subject)
		case percentile <= a.cfg.WeakPercentile:
			challenges = append(challenges, s.subject)
		}
	}
	return strengths, challenges
}

// masteryLevels extracts the per-subject mastery map.
func masteryLevels(performance []PerformanceRecord) map[string]int {
	levels := make(map[string]int, len(performance))
	for _, rec := range performance {
		levels[rec.Subject] = rec.MasteryLevel
	}
	return levels
}

// backgroundTags derives cultural-background tags from the resolved
// preferred languages: the language's region, plus the language name for
// indigenous languages. Fallback entries contribute nothing.
func backgroundTags(languages []catalog.Language) []string {
	var tags []string
	seen := make(map[string]bool)
	add := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, lang := range languages {
		add(slug(lang.Region))
		if lang.Indigenous {
			add(slug(lang.Name))
		}
	}
	if tags == nil {
		tags = []string{}
	}
	return tags
}

// motivationalFactors derives coarse motivation tags from recognition
// confidence and the cultural framing of the top preferred language.
func (a *Analyzer) motivationalFactors(history []InteractionRecord, languages []catalog.Language) []string {
	factors := []string{}
	if len(history) > 0 {
		var total float64
		for _, rec := range history {
			total += rec.Confidence
		}
		mean := total / float64(len(history))
		if mean < a.cfg.LowConfidence {
			factors = append(factors, "encouragement")
		} else if mean > a.cfg.HighConfidence {
			factors = append(factors, "challenge")
		}
	}
	if len(languages) > 0 && languages[0].Cultural.Storytelling {
		factors = append(factors, "storytelling")
	}
	return factors
}

// preferredTimes buckets interaction timestamps into morning / afternoon /
// evening / night and keeps buckets above the configured share.
func (a *Analyzer) preferredTimes(history []InteractionRecord) []string {
	times := []string{}
	if len(history) == 0 {
		return times
	}

	buckets := map[string]int{}
	for _, rec := range history {
		switch h := rec.Timestamp.Hour(); {
		case h >= 5 && h < 12:
			buckets["morning"]++
		case h >= 12 && h < 18:
			buckets["afternoon"]++
		case h >= 18 && h < 23:
			buckets["evening"]++
		default:
			buckets["night"]++
		}
	}

	total := float64(len(history))
	for _, name := range []string{"morning", "afternoon", "evening", "night"} {
		if float64(buckets[name])/total >= a.cfg.TimeOfDayShare {
			times = append(times, name)
		}
	}
	return times
}

// slug normalizes a display label into a tag.
func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " & ", " ")
	s = strings.ReplaceAll(s, "&", " ")
	fields := strings.Fields(s)
	return strings.Join(fields, "_")
}
