package risk

// Config holds factor cutoffs, level thresholds and the base intervention
// plan.
type Config struct {
	// MinInteractions is the history length below which low_engagement
	// triggers.
	MinInteractions int `koanf:"minInteractions"`

	// MinAttentionSpanMins is the attention span below which
	// attention_difficulties triggers.
	MinAttentionSpanMins int `koanf:"minAttentionSpanMins"`

	// NegativeEmotionShare is the share of negative-emotion interactions
	// at or above which negative_emotion triggers.
	NegativeEmotionShare float64 `koanf:"negativeEmotionShare"`

	// HighFactorCount and MediumFactorCount classify the triggered-factor
	// count into levels: >= high -> high, >= medium -> medium, else low.
	HighFactorCount   int `koanf:"highFactorCount"`
	MediumFactorCount int `koanf:"mediumFactorCount"`

	// BasePlan is the intervention plan shared by every level. The high
	// level additionally escalates the immediate tier.
	BasePlan InterventionPlan `koanf:"basePlan"`

	// HighImmediate lists the tags appended to the immediate tier for
	// high-risk learners.
	HighImmediate []string `koanf:"highImmediate"`
}

// DefaultConfig returns the standard risk thresholds and base plan.
func DefaultConfig() Config {
	return Config{
		MinInteractions:      5,
		MinAttentionSpanMins: 10,
		NegativeEmotionShare: 0.5,
		HighFactorCount:      3,
		MediumFactorCount:    2,
		BasePlan: InterventionPlan{
			Immediate: []string{"schedule_mentor_check_in", "send_personalized_encouragement"},
			ShortTerm: []string{"adjust_difficulty_pacing", "add_preferred_modality_content"},
			LongTerm:  []string{"family_engagement_program", "community_learning_circle"},
		},
		HighImmediate: []string{"urgent_intervention", "counselor_referral"},
	}
}
