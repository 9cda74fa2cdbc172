package risk

import "github.com/mach-hub-g1/edugamers-engine/internal/profile"

// Level is a coarse disengagement/dropout risk classification.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelLow:
		return "Low"
	case LevelMedium:
		return "Medium"
	case LevelHigh:
		return "High"
	default:
		return string(l)
	}
}

// Input pairs one learner's profile with its history for factor evaluation.
type Input struct {
	Profile     *profile.LearnerProfile
	History     []profile.InteractionRecord
	Performance []profile.PerformanceRecord
}

// InterventionPlan splits recommended interventions into urgency tiers.
type InterventionPlan struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"shortTerm"`
	LongTerm  []string `json:"longTerm"`
}

// Assessment is the risk classification for one learner.
type Assessment struct {
	LearnerID              string           `json:"learnerId"`
	Level                  Level            `json:"level"`
	Factors                []string         `json:"factors"`
	Interventions          InterventionPlan `json:"interventions"`
	SuccessPredictors      []string         `json:"successPredictors"`
	CulturalConsiderations []string         `json:"culturalConsiderations"`
	ParentalEngagement     float64          `json:"parentalEngagement"`
	CommunitySupport       float64          `json:"communitySupport"`
}
