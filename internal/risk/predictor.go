package risk

import (
	"golang.org/x/sync/errgroup"

	"github.com/mach-hub-g1/edugamers-engine/internal/profile"
)

// Predictor classifies learners by disengagement risk. Deterministic and
// stateless; safe for concurrent use.
type Predictor struct {
	cfg     Config
	factors []Factor
}

// NewPredictor creates a predictor with the default factor set.
func NewPredictor(cfg Config) *Predictor {
	return &Predictor{cfg: cfg, factors: DefaultFactors(cfg)}
}

// Predict assesses a single learner.
func (p *Predictor) Predict(prof *profile.LearnerProfile, history []profile.InteractionRecord, performance []profile.PerformanceRecord) *Assessment {
	return p.assess(&Input{Profile: prof, History: history, Performance: performance})
}

// PredictBatch assesses learners in bulk. The three arrays are parallel
// and index-aligned; the result is aligned with profiles. Each index is
// independent, so the batch fans out across goroutines.
func (p *Predictor) PredictBatch(profiles []*profile.LearnerProfile, histories [][]profile.InteractionRecord, performance [][]profile.PerformanceRecord) ([]*Assessment, error) {
	if len(profiles) != len(histories) || len(profiles) != len(performance) {
		return nil, &MisalignedInputError{
			Profiles:    len(profiles),
			Histories:   len(histories),
			Performance: len(performance),
		}
	}

	results := make([]*Assessment, len(profiles))
	var g errgroup.Group
	for i := range profiles {
		g.Go(func() error {
			results[i] = p.assess(&Input{
				Profile:     profiles[i],
				History:     histories[i],
				Performance: performance[i],
			})
			return nil
		})
	}
	// Assessment never fails per-learner; Wait only joins the goroutines.
	_ = g.Wait()
	return results, nil
}

func (p *Predictor) assess(in *Input) *Assessment {
	factors := []string{}
	for _, f := range p.factors {
		if f.Triggered(in) {
			factors = append(factors, f.Name())
		}
	}

	level := p.classify(len(factors))

	return &Assessment{
		LearnerID:              in.Profile.ID,
		Level:                  level,
		Factors:                factors,
		Interventions:          p.interventions(level),
		SuccessPredictors:      successPredictors(in, p.cfg),
		CulturalConsiderations: culturalConsiderations(in.Profile),
		ParentalEngagement:     parentalEngagement(in),
		CommunitySupport:       communitySupport(in.Profile),
	}
}

// classify maps a triggered-factor count to a level.
func (p *Predictor) classify(count int) Level {
	switch {
	case count >= p.cfg.HighFactorCount:
		return LevelHigh
	case count >= p.cfg.MediumFactorCount:
		return LevelMedium
	default:
		return LevelLow
	}
}

// interventions returns the base plan, with the immediate tier escalated
// for high risk. The escalation is the only level-dependent branch.
func (p *Predictor) interventions(level Level) InterventionPlan {
	plan := InterventionPlan{
		Immediate: append([]string(nil), p.cfg.BasePlan.Immediate...),
		ShortTerm: append([]string(nil), p.cfg.BasePlan.ShortTerm...),
		LongTerm:  append([]string(nil), p.cfg.BasePlan.LongTerm...),
	}
	if level == LevelHigh {
		plan.Immediate = append(plan.Immediate, p.cfg.HighImmediate...)
	}
	return plan
}

// successPredictors lists protective signals. These describe the learner,
// not the risk, and are computed independently of the level.
func successPredictors(in *Input, cfg Config) []string {
	predictors := []string{}
	if len(in.Profile.Strengths) > 0 {
		predictors = append(predictors, "existing_academic_strengths")
	}
	if len(in.History) >= cfg.MinInteractions {
		predictors = append(predictors, "consistent_engagement")
	}
	if in.Profile.AttentionSpanMins >= 2*cfg.MinAttentionSpanMins {
		predictors = append(predictors, "sustained_focus")
	}
	for _, lang := range in.Profile.PreferredLanguages {
		if lang.Indigenous {
			predictors = append(predictors, "strong_cultural_identity")
			break
		}
	}
	return predictors
}

// culturalConsiderations maps each background tag 1:1 to a respect tag.
func culturalConsiderations(p *profile.LearnerProfile) []string {
	considerations := make([]string, 0, len(p.CulturalBackground))
	for _, tag := range p.CulturalBackground {
		considerations = append(considerations, "respect_"+tag+"_values")
	}
	return considerations
}

// parentalEngagement estimates family involvement from history volume:
// 0.4 base plus 0.02 per recorded interaction, capped at 1.
func parentalEngagement(in *Input) float64 {
	score := 0.4 + 0.02*float64(len(in.History))
	return clamp01(score)
}

// communitySupport estimates available community scaffolding from the
// depth of the learner's cultural-background tags.
func communitySupport(p *profile.LearnerProfile) float64 {
	score := 0.5 + 0.1*float64(len(p.CulturalBackground))
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
