package path

// CulturalConnection links a learning module to the learner's culture.
type CulturalConnection struct {
	LocalExample   string `json:"localExample"`
	GlobalContext  string `json:"globalContext"`
	HistoricalNote string `json:"historicalNote"`
}

// MultimodalContent points at content assets for a module. Pointers only;
// asset production and rendering are external responsibilities.
type MultimodalContent struct {
	NarrationRef        string   `json:"narrationRef"`
	VisualAids          []string `json:"visualAids"`
	InteractiveElements []string `json:"interactiveElements"`
	CulturalArtifacts   []string `json:"culturalArtifacts"`
}

// AssessmentStrategy describes how progress through a module is assessed.
type AssessmentStrategy struct {
	Formative            []string `json:"formative"`
	Summative            []string `json:"summative"`
	CulturallyResponsive bool     `json:"culturallyResponsive"`
}

// AdaptiveLearningPath is the next-step recommendation for a learner in a
// subject. Created per generation call and never mutated; the next call
// supersedes it.
type AdaptiveLearningPath struct {
	ID               string             `json:"id"`
	LearnerID        string             `json:"learnerId"`
	Subject          string             `json:"subject"`
	CurrentModule    string             `json:"currentModule"`
	NextModule       string             `json:"nextModule"`
	Difficulty       int                `json:"difficulty"`
	EstimatedMinutes int                `json:"estimatedMinutes"`
	Cultural         CulturalConnection `json:"cultural"`
	Content          MultimodalContent  `json:"content"`
	Assessment       AssessmentStrategy `json:"assessment"`
}
