package cultural

import (
	"fmt"

	"github.com/mach-hub-g1/edugamers-engine/internal/catalog"
)

// AgeRange bounds the learner ages a content descriptor suits.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ContentDescriptor is a template-composed pointer set linking a topic to
// a culture and language. Pointers only, never synthesized media.
type ContentDescriptor struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	MediaRefs      []string `json:"mediaRefs"`
	Language       string   `json:"language"`
	AgeAppropriate AgeRange `json:"ageAppropriate"`
}

// Config holds the age-band constants.
type Config struct {
	// AgeBandOffset widens the target age into a band of ±offset years.
	AgeBandOffset int `koanf:"ageBandOffset"`

	// MinAge and MaxAge clamp the band.
	MinAge int `koanf:"minAge"`
	MaxAge int `koanf:"maxAge"`
}

// DefaultConfig returns the standard ±2-year band clamped to [6,18].
func DefaultConfig() Config {
	return Config{AgeBandOffset: 2, MinAge: 6, MaxAge: 18}
}

// Selector pairs topics with cultures into content descriptors.
// Pure lookup plus template fallback; never fails.
type Selector struct {
	cfg Config
}

// NewSelector creates a content selector.
func NewSelector(cfg Config) *Selector {
	return &Selector{cfg: cfg}
}

// Select returns a content descriptor for the topic/culture pair. When no
// curated entry exists it falls back to a generic template, so the result
// is always non-empty.
func (s *Selector) Select(topic, culture string, lang catalog.Language, targetAgeLevel int) ContentDescriptor {
	d, ok := curatedContent[contentKey{topic: topic, culture: culture}]
	if !ok {
		d = ContentDescriptor{
			Title:       fmt.Sprintf("Learning %s through %s Tradition", topic, culture),
			Description: fmt.Sprintf("Explore %s with examples and stories drawn from %s culture", topic, culture),
			MediaRefs:   []string{fmt.Sprintf("media/generic/%s", topic)},
		}
	}

	d.Language = lang.Code
	d.AgeAppropriate = s.ageBand(targetAgeLevel)
	return d
}

// ageBand clamps [target-offset, target+offset] into the configured
// limits. The band never inverts: a target below MinAge yields a narrow
// band at the lower bound, and symmetrically at the upper bound.
func (s *Selector) ageBand(target int) AgeRange {
	return AgeRange{
		Min: s.clampAge(target - s.cfg.AgeBandOffset),
		Max: s.clampAge(target + s.cfg.AgeBandOffset),
	}
}

func (s *Selector) clampAge(age int) int {
	if age < s.cfg.MinAge {
		return s.cfg.MinAge
	}
	if age > s.cfg.MaxAge {
		return s.cfg.MaxAge
	}
	return age
}
