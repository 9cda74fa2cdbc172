package catalog

// Personality is a tutor persona archetype. Behavior is carried entirely by
// the AdaptiveBehavior vector; the archetype is a display/selection tag.
type Personality string

const (
	PersonalityFriendly     Personality = "friendly"
	PersonalityProfessional Personality = "professional"
	PersonalityEncouraging  Personality = "encouraging"
	PersonalityWiseElder    Personality = "wise_elder"
	PersonalityPeerMentor   Personality = "peer_mentor"
)

// DisplayName returns a human-readable label for the personality.
func (p Personality) DisplayName() string {
	switch p {
	case PersonalityFriendly:
		return "Friendly"
	case PersonalityProfessional:
		return "Professional"
	case PersonalityEncouraging:
		return "Encouraging"
	case PersonalityWiseElder:
		return "Wise Elder"
	case PersonalityPeerMentor:
		return "Peer Mentor"
	default:
		return string(p)
	}
}

// VoiceCharacteristics describes a tutor's voice for downstream speech
// synthesis. Descriptive only.
type VoiceCharacteristics struct {
	Gender  string `json:"gender" yaml:"gender"`
	AgeBand string `json:"ageBand" yaml:"ageBand"`
	Accent  string `json:"accent" yaml:"accent"`
	Tone    string `json:"tone" yaml:"tone"`
}

// AdaptiveBehavior tunes how a tutor persona paces and frames content.
// Patience, Encouragement and CulturalReferences are 1–10 scales.
type AdaptiveBehavior struct {
	Patience             int  `json:"patience" yaml:"patience"`
	Encouragement        int  `json:"encouragement" yaml:"encouragement"`
	CulturalReferences   int  `json:"culturalReferences" yaml:"culturalReferences"`
	ComplexityAdaptation bool `json:"complexityAdaptation" yaml:"complexityAdaptation"`
}

// TutorPersona is a virtual-tutor catalog entry. Immutable; not a live model.
type TutorPersona struct {
	ID                 string               `json:"id" yaml:"id"`
	Name               string               `json:"name" yaml:"name"`
	Personality        Personality          `json:"personality" yaml:"personality"`
	Language           Language             `json:"language" yaml:"language"`
	Specializations    []string             `json:"specializations" yaml:"specializations"`
	CulturalBackground string               `json:"culturalBackground" yaml:"culturalBackground"`
	Voice              VoiceCharacteristics `json:"voice" yaml:"voice"`
	Behavior           AdaptiveBehavior     `json:"behavior" yaml:"behavior"`
}

// Specializes reports whether the persona covers the given subject.
func (t TutorPersona) Specializes(subject string) bool {
	for _, s := range t.Specializations {
		if s == subject {
			return true
		}
	}
	return false
}
