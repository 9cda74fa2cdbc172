package path

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/mach-hub-g1/edugamers-engine/internal/profile"
)

// Generator builds adaptive learning paths from learner profiles.
// Deterministic and stateless; safe for concurrent use.
type Generator struct {
	cfg Config
}

// NewGenerator creates a path generator.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate produces the next-step path for a learner in a subject.
//
// Difficulty advances at most one level above the learner's current
// mastery and never exceeds targetLevel. An unrecognized-but-nonempty
// subject degrades to neutral templates rather than failing.
func (g *Generator) Generate(p *profile.LearnerProfile, subject string, targetLevel int) (*AdaptiveLearningPath, error) {
	if subject == "" {
		return nil, &UnknownSubjectError{}
	}

	current := p.MasteryLevel(subject)
	difficulty := current + 1
	if difficulty > targetLevel {
		difficulty = targetLevel
	}
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > g.cfg.MaxDifficulty {
		difficulty = g.cfg.MaxDifficulty
	}

	culture := ""
	if len(p.CulturalBackground) > 0 {
		culture = p.CulturalBackground[0]
	}
	langCode := "en"
	if len(p.PreferredLanguages) > 0 {
		langCode = p.PreferredLanguages[0].Code
	}

	nextLevel := difficulty + 1
	if nextLevel > g.cfg.MaxDifficulty {
		nextLevel = g.cfg.MaxDifficulty
	}

	return &AdaptiveLearningPath{
		ID:               pathID(p.ID, subject, difficulty),
		LearnerID:        p.ID,
		Subject:          subject,
		CurrentModule:    moduleID(subject, difficulty),
		NextModule:       moduleID(subject, nextLevel),
		Difficulty:       difficulty,
		EstimatedMinutes: g.estimateMinutes(p.AttentionSpanMins, difficulty),
		Cultural:         connectionFor(subject, culture),
		Content:          g.content(p, subject, culture, langCode, difficulty),
		Assessment: AssessmentStrategy{
			Formative:            append([]string(nil), g.cfg.Formative...),
			Summative:            append([]string(nil), g.cfg.Summative...),
			CulturallyResponsive: true,
		},
	}, nil
}

// estimateMinutes scales attention span by difficulty and the adaptation
// factor, floored at the configured minimum.
func (g *Generator) estimateMinutes(attentionSpan, difficulty int) int {
	mins := int(math.Round(float64(attentionSpan) * float64(difficulty) * g.cfg.AdaptationFactor))
	if mins < g.cfg.MinSessionMinutes {
		return g.cfg.MinSessionMinutes
	}
	return mins
}

// content composes asset pointers for the module via template substitution.
func (g *Generator) content(p *profile.LearnerProfile, subject, culture, langCode string, difficulty int) MultimodalContent {
	c := MultimodalContent{
		NarrationRef: fmt.Sprintf("narration/%s/%s/level-%d", langCode, subject, difficulty),
		VisualAids: []string{
			fmt.Sprintf("diagram/%s/level-%d", subject, difficulty),
			fmt.Sprintf("storyboard/%s/level-%d", subject, difficulty),
		},
		InteractiveElements: interactiveElements(string(p.StyleMix.Dominant())),
		CulturalArtifacts:   []string{},
	}
	if culture != "" {
		c.CulturalArtifacts = append(c.CulturalArtifacts,
			fmt.Sprintf("artifact/%s/%s", culture, subject))
	}
	return c
}

// pathID derives a stable UUIDv5 so identical inputs produce identical
// paths.
func pathID(learnerID, subject string, difficulty int) string {
	name := fmt.Sprintf("path:%s:%s:%d", learnerID, subject, difficulty)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// moduleID derives a module identifier for a subject and level.
func moduleID(subject string, level int) string {
	return fmt.Sprintf("%s-level-%d", subject, level)
}
