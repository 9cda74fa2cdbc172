package profile

import (
	"time"

	"github.com/mach-hub-g1/edugamers-engine/internal/catalog"
)

// Modality classifies how a learner interacted during a session.
type Modality string

const (
	ModalityAudio       Modality = "audio"
	ModalityText        Modality = "text"
	ModalityVisual      Modality = "visual"
	ModalityInteractive Modality = "interactive"
)

// ResponseMeta captures what the tutor produced for an interaction.
// Read-only input; the engine never generates or persists it.
type ResponseMeta struct {
	Text       string `json:"text"`
	HasAudio   bool   `json:"hasAudio"`
	DurationMs int64  `json:"durationMs"`
}

// InteractionRecord is one caller-supplied voice/text interaction.
type InteractionRecord struct {
	SessionID       string       `json:"sessionId"`
	Timestamp       time.Time    `json:"timestamp"`
	LearnerID       string       `json:"learnerId"`
	TutorID         string       `json:"tutorId"`
	Text            string       `json:"text"`
	Emotion         string       `json:"emotion"`
	Confidence      float64      `json:"confidence"`
	Language        string       `json:"language"`
	Modality        Modality     `json:"modality"`
	DurationMinutes float64      `json:"durationMinutes"`
	Response        ResponseMeta `json:"response"`
}

// PerformanceRecord is a caller-supplied per-subject aggregate.
type PerformanceRecord struct {
	Subject      string  `json:"subject"`
	Accuracy     float64 `json:"accuracy"`
	MasteryLevel int     `json:"masteryLevel"`
}

// LearningStyleMix holds relative affinities for the four learning styles.
// Weights are non-negative and need not sum to 1.
type LearningStyleMix struct {
	Visual      float64 `json:"visual"`
	Auditory    float64 `json:"auditory"`
	Kinesthetic float64 `json:"kinesthetic"`
	Reading     float64 `json:"reading"`
}

// Dominant returns the style with the highest weight. Ties resolve in
// visual/auditory/kinesthetic/reading order.
func (m LearningStyleMix) Dominant() catalog.LearningStyle {
	best := catalog.StyleVisual
	bestWeight := m.Visual
	if m.Auditory > bestWeight {
		best, bestWeight = catalog.StyleAuditory, m.Auditory
	}
	if m.Kinesthetic > bestWeight {
		best, bestWeight = catalog.StyleKinesthetic, m.Kinesthetic
	}
	if m.Reading > bestWeight {
		best = catalog.StyleReading
	}
	return best
}

// LearnerProfile is an immutable snapshot of a learner's preferences and
// performance, derived entirely from the supplied history. A new snapshot
// is produced on each analysis run; snapshots are never mutated in place.
type LearnerProfile struct {
	ID                  string             `json:"id"`
	PreferredLanguages  []catalog.Language `json:"preferredLanguages"`
	StyleMix            LearningStyleMix   `json:"styleMix"`
	CulturalBackground  []string           `json:"culturalBackground"`
	MasteryLevels       map[string]int     `json:"masteryLevels"`
	Strengths           []string           `json:"strengths"`
	Challenges          []string           `json:"challenges"`
	Interests           []string           `json:"interests"`
	MotivationalFactors []string           `json:"motivationalFactors"`
	AttentionSpanMins   int                `json:"attentionSpanMins"`
	PreferredTimes      []string           `json:"preferredTimes"`
	AccessibilityNeeds  []string           `json:"accessibilityNeeds"`
}

// MasteryLevel returns the learner's mastery level for a subject,
// defaulting to 1 for subjects not yet assessed.
func (p *LearnerProfile) MasteryLevel(subject string) int {
	if l, ok := p.MasteryLevels[subject]; ok {
		return l
	}
	return 1
}

// PrefersLanguage reports whether a language code is among the learner's
// preferred languages.
func (p *LearnerProfile) PrefersLanguage(code string) bool {
	for _, l := range p.PreferredLanguages {
		if l.Code == code {
			return true
		}
	}
	return false
}
