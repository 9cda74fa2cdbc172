package catalog

// LearningStyle represents a dominant learning-style affinity.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleReading     LearningStyle = "reading"
)

// AllLearningStyles returns all learning styles in display order.
func AllLearningStyles() []LearningStyle {
	return []LearningStyle{StyleVisual, StyleAuditory, StyleKinesthetic, StyleReading}
}

// CulturalContext describes the cultural framing attached to a language.
type CulturalContext struct {
	Greeting      string        `json:"greeting" yaml:"greeting"`
	StyleAffinity LearningStyle `json:"styleAffinity" yaml:"styleAffinity"`
	OralTradition bool          `json:"oralTradition" yaml:"oralTradition"`
	Storytelling  bool          `json:"storytelling" yaml:"storytelling"`
}

// SpeechSupport flags which audio capabilities exist for a language.
// Descriptive only; the engine never touches audio.
type SpeechSupport struct {
	Synthesis   bool `json:"synthesis" yaml:"synthesis"`
	Recognition bool `json:"recognition" yaml:"recognition"`
}

// Language is a supported locale descriptor. Immutable catalog entry.
type Language struct {
	Code       string          `json:"code" yaml:"code"`
	Name       string          `json:"name" yaml:"name"`
	NativeName string          `json:"nativeName" yaml:"nativeName"`
	Region     string          `json:"region" yaml:"region"`
	Indigenous bool            `json:"indigenous" yaml:"indigenous"`
	Cultural   CulturalContext `json:"cultural" yaml:"cultural"`
	Speech     SpeechSupport   `json:"speech" yaml:"speech"`
}

// FallbackLanguage builds a degraded Language entry for a code with no
// catalog entry. Name mirrors the code and all capability flags are off,
// so downstream consumers render neutral content rather than failing.
func FallbackLanguage(code string) Language {
	return Language{
		Code:       code,
		Name:       code,
		NativeName: code,
	}
}
