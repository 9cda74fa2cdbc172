package tutorselect

import (
	"strings"

	"github.com/mach-hub-g1/edugamers-engine/internal/catalog"
	"github.com/mach-hub-g1/edugamers-engine/internal/profile"
)

// Criterion names the scoring criteria in evaluation order.
type Criterion string

const (
	CriterionLanguage Criterion = "language_match"
	CriterionSubject  Criterion = "subject_match"
	CriterionCultural Criterion = "cultural_match"
	CriterionStyle    Criterion = "style_compatibility"
)

// CriterionScore is one line of a score breakdown.
type CriterionScore struct {
	Criterion Criterion `json:"criterion"`
	Matched   bool      `json:"matched"`
	Points    int       `json:"points"`
}

// ScoreBreakdown explains how a tutor scored against a profile.
type ScoreBreakdown struct {
	TutorID  string           `json:"tutorId"`
	Total    int              `json:"total"`
	Criteria []CriterionScore `json:"criteria"`
}

// Weights holds the additive criterion weights. With the defaults a tutor
// matching all four criteria scores exactly 100.
type Weights struct {
	LanguageMatch     int     `koanf:"languageMatch"`
	SubjectMatch      int     `koanf:"subjectMatch"`
	CulturalMatch     int     `koanf:"culturalMatch"`
	StyleCompat       int     `koanf:"styleCompat"`
	AuditoryThreshold float64 `koanf:"auditoryThreshold"`
}

// DefaultWeights returns the standard 40/30/20/10 weighting.
func DefaultWeights() Weights {
	return Weights{
		LanguageMatch:     40,
		SubjectMatch:      30,
		CulturalMatch:     20,
		StyleCompat:       10,
		AuditoryThreshold: 0.3,
	}
}

// Selector scores tutor personas against learner profiles.
// Deterministic and stateless; safe for concurrent use.
type Selector struct {
	weights Weights
	cat     *catalog.Catalog
}

// NewSelector creates a selector over the given catalog.
func NewSelector(weights Weights, cat *catalog.Catalog) *Selector {
	return &Selector{weights: weights, cat: cat}
}

// Select returns the highest-scoring tutor persona for the profile and
// subject. culturalPreference may be empty. Ties resolve to the first
// tutor in catalog order with the maximum score. Returns
// NoTutorAvailableError if the catalog is empty or no tutor scores above
// zero.
func (s *Selector) Select(p *profile.LearnerProfile, subject, culturalPreference string) (catalog.TutorPersona, error) {
	best, _, err := s.selectWithBreakdown(p, subject, culturalPreference)
	return best, err
}

// Explain returns the chosen tutor together with the full per-tutor score
// breakdown, in catalog order. Useful for "why this tutor" surfaces.
func (s *Selector) Explain(p *profile.LearnerProfile, subject, culturalPreference string) (catalog.TutorPersona, []ScoreBreakdown, error) {
	return s.selectWithBreakdown(p, subject, culturalPreference)
}

func (s *Selector) selectWithBreakdown(p *profile.LearnerProfile, subject, culturalPreference string) (catalog.TutorPersona, []ScoreBreakdown, error) {
	tutors := s.cat.Tutors()
	if len(tutors) == 0 {
		return catalog.TutorPersona{}, nil, &NoTutorAvailableError{Reason: "catalog is empty"}
	}

	breakdowns := make([]ScoreBreakdown, 0, len(tutors))
	bestIdx := -1
	bestScore := -1
	for i, tutor := range tutors {
		b := s.score(tutor, p, subject, culturalPreference)
		breakdowns = append(breakdowns, b)
		if b.Total > bestScore {
			bestScore = b.Total
			bestIdx = i
		}
	}

	if bestScore <= 0 {
		return catalog.TutorPersona{}, breakdowns, &NoTutorAvailableError{
			Reason: "no tutor matched any criterion",
		}
	}
	return tutors[bestIdx], breakdowns, nil
}

// score evaluates the four additive criteria for one tutor.
func (s *Selector) score(tutor catalog.TutorPersona, p *profile.LearnerProfile, subject, culturalPreference string) ScoreBreakdown {
	b := ScoreBreakdown{TutorID: tutor.ID}

	add := func(c Criterion, matched bool, points int) {
		line := CriterionScore{Criterion: c, Matched: matched}
		if matched {
			line.Points = points
			b.Total += points
		}
		b.Criteria = append(b.Criteria, line)
	}

	add(CriterionLanguage, p.PrefersLanguage(tutor.Language.Code), s.weights.LanguageMatch)
	add(CriterionSubject, tutor.Specializes(subject), s.weights.SubjectMatch)
	add(CriterionCultural, culturalMatch(culturalPreference, tutor.CulturalBackground), s.weights.CulturalMatch)

	styleOK := p.StyleMix.Auditory > s.weights.AuditoryThreshold || tutor.Behavior.ComplexityAdaptation
	add(CriterionStyle, styleOK, s.weights.StyleCompat)

	return b
}

// culturalMatch reports whether the preference tag matches the tutor's
// cultural background, case-insensitively, in either direction.
func culturalMatch(preference, background string) bool {
	if preference == "" || background == "" {
		return false
	}
	pref := strings.ToLower(preference)
	bg := strings.ToLower(background)
	return strings.Contains(bg, pref) || strings.Contains(pref, bg)
}
