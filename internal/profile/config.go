package profile

// Config holds profile analysis thresholds.
type Config struct {
	// StrongPercentile is the per-subject percentile rank at or above
	// which a subject counts as a strength.
	StrongPercentile float64 `koanf:"strongPercentile"`

	// WeakPercentile is the percentile rank at or below which a subject
	// counts as a challenge.
	WeakPercentile float64 `koanf:"weakPercentile"`

	// DefaultAttentionSpanMins is used when the history is empty.
	DefaultAttentionSpanMins int `koanf:"defaultAttentionSpanMins"`

	// MinAttentionSpanMins floors the derived attention span.
	MinAttentionSpanMins int `koanf:"minAttentionSpanMins"`

	// TimeOfDayShare is the minimum share of interactions a time-of-day
	// bucket needs to become a preferred-time tag.
	TimeOfDayShare float64 `koanf:"timeOfDayShare"`

	// LowConfidence and HighConfidence bound the mean recognition
	// confidence used to derive motivational factors.
	LowConfidence  float64 `koanf:"lowConfidence"`
	HighConfidence float64 `koanf:"highConfidence"`
}

// DefaultConfig returns sensible analysis defaults.
func DefaultConfig() Config {
	return Config{
		StrongPercentile:         0.70,
		WeakPercentile:           0.30,
		DefaultAttentionSpanMins: 15,
		MinAttentionSpanMins:     1,
		TimeOfDayShare:           0.25,
		LowConfidence:            0.50,
		HighConfidence:           0.80,
	}
}
