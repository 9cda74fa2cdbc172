package path

// Config holds path generation pacing constants.
type Config struct {
	// AdaptationFactor scales estimated minutes to account for pacing
	// overhead (hints, retries, narration).
	AdaptationFactor float64 `koanf:"adaptationFactor"`

	// MinSessionMinutes floors the estimated completion time, guarding
	// against degenerate zero or negative inputs.
	MinSessionMinutes int `koanf:"minSessionMinutes"`

	// MaxDifficulty caps module difficulty.
	MaxDifficulty int `koanf:"maxDifficulty"`

	// Formative and Summative are the fixed assessment tag sets attached
	// to every generated path.
	Formative []string `koanf:"formative"`
	Summative []string `koanf:"summative"`
}

// DefaultConfig returns the standard pacing constants.
func DefaultConfig() Config {
	return Config{
		AdaptationFactor:  0.8,
		MinSessionMinutes: 10,
		MaxDifficulty:     10,
		Formative:         []string{"quick_check", "verbal_explanation", "peer_discussion"},
		Summative:         []string{"project_artifact", "level_quiz"},
	}
}
