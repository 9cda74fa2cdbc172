package risk

import "strings"

// Factor is one independent, named risk predicate over a profile/history
// pair. Risk level derives from the count of triggered factors, so each
// factor must be evaluable on its own, without black-box scores.
type Factor interface {
	Name() string
	Triggered(in *Input) bool
}

// DefaultFactors returns the standard factor set in evaluation order.
func DefaultFactors(cfg Config) []Factor {
	return []Factor{
		&LowEngagementFactor{MinInteractions: cfg.MinInteractions},
		&AcademicStrugglesFactor{},
		&AttentionDifficultiesFactor{MinAttentionSpanMins: cfg.MinAttentionSpanMins},
		&NegativeEmotionFactor{MinShare: cfg.NegativeEmotionShare},
	}
}

// LowEngagementFactor triggers when the learner has too few interactions
// on record.
type LowEngagementFactor struct {
	MinInteractions int
}

func (f *LowEngagementFactor) Name() string { return "low_engagement" }

func (f *LowEngagementFactor) Triggered(in *Input) bool {
	return len(in.History) < f.MinInteractions
}

// AcademicStrugglesFactor triggers when challenges outnumber strengths.
type AcademicStrugglesFactor struct{}

func (f *AcademicStrugglesFactor) Name() string { return "academic_struggles" }

func (f *AcademicStrugglesFactor) Triggered(in *Input) bool {
	return len(in.Profile.Challenges) > len(in.Profile.Strengths)
}

// AttentionDifficultiesFactor triggers on a short derived attention span.
type AttentionDifficultiesFactor struct {
	MinAttentionSpanMins int
}

func (f *AttentionDifficultiesFactor) Name() string { return "attention_difficulties" }

func (f *AttentionDifficultiesFactor) Triggered(in *Input) bool {
	return in.Profile.AttentionSpanMins < f.MinAttentionSpanMins
}

// NegativeEmotionFactor triggers when a large share of interactions carry
// frustrated, confused or bored emotion labels.
type NegativeEmotionFactor struct {
	MinShare float64
}

func (f *NegativeEmotionFactor) Name() string { return "negative_emotion" }

func (f *NegativeEmotionFactor) Triggered(in *Input) bool {
	if len(in.History) == 0 {
		return false
	}
	negative := 0
	for _, rec := range in.History {
		switch strings.ToLower(rec.Emotion) {
		case "frustrated", "confused", "bored":
			negative++
		}
	}
	return float64(negative)/float64(len(in.History)) >= f.MinShare
}
