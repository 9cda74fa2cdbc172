package tutorselect

import (
	"errors"
	"testing"

	"github.com/mach-hub-g1/edugamers-engine/internal/catalog"
	"github.com/mach-hub-g1/edugamers-engine/internal/profile"
)

func profileWithLanguage(code string) *profile.LearnerProfile {
	lang, _ := catalog.Default().LanguageByCode(code)
	return &profile.LearnerProfile{
		ID:                 "learner-1",
		PreferredLanguages: []catalog.Language{lang},
	}
}

func TestSelect_PerfectMatchScores100(t *testing.T) {
	s := NewSelector(DefaultWeights(), catalog.Default())
	p := profileWithLanguage("es")
	p.StyleMix = profile.LearningStyleMix{Auditory: 0.5}

	tutor, breakdowns, err := s.Explain(p, "math", "latin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tutor.ID != "maya-es" {
		t.Errorf("got tutor %q, want maya-es", tutor.ID)
	}
	for _, b := range breakdowns {
		if b.TutorID == "maya-es" && b.Total != 100 {
			t.Errorf("got total %d, want 100 for a perfect match", b.Total)
		}
	}
}

func TestSelect_LanguageDominatesSubject(t *testing.T) {
	s := NewSelector(DefaultWeights(), catalog.Default())
	p := profileWithLanguage("sw")

	// kofi-sw matches only language (40); aroha-mi matches only the music
	// specialization (30). Language alone outranks subject alone.
	tutor, err := s.Select(p, "music", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tutor.ID != "kofi-sw" {
		t.Errorf("got tutor %q, want kofi-sw", tutor.ID)
	}
}

func TestSelect_TieBreakCatalogOrder(t *testing.T) {
	lang, _ := catalog.Default().LanguageByCode("en")
	tutors := []catalog.TutorPersona{
		{ID: "first", Language: lang, Specializations: []string{"math"}},
		{ID: "second", Language: lang, Specializations: []string{"math"}},
	}
	cat, err := catalog.New([]catalog.Language{lang}, tutors)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	s := NewSelector(DefaultWeights(), cat)
	p := profileWithLanguage("en")

	tutor, err := s.Select(p, "math", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tutor.ID != "first" {
		t.Errorf("got tutor %q, want first (catalog order tie-break)", tutor.ID)
	}
}

func TestSelect_EmptyCatalog(t *testing.T) {
	cat, err := catalog.New(nil, nil)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	s := NewSelector(DefaultWeights(), cat)

	_, err = s.Select(profileWithLanguage("en"), "math", "")
	var noTutor *NoTutorAvailableError
	if !errors.As(err, &noTutor) {
		t.Fatalf("got %v, want NoTutorAvailableError", err)
	}
}

func TestSelect_ZeroScore(t *testing.T) {
	lang, _ := catalog.Default().LanguageByCode("sw")
	tutors := []catalog.TutorPersona{
		{ID: "kofi", Language: lang, Specializations: []string{"history"}},
	}
	cat, err := catalog.New([]catalog.Language{lang}, tutors)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	s := NewSelector(DefaultWeights(), cat)
	p := profileWithLanguage("en")

	_, err = s.Select(p, "math", "")
	var noTutor *NoTutorAvailableError
	if !errors.As(err, &noTutor) {
		t.Fatalf("got %v, want NoTutorAvailableError on zero score", err)
	}
}

func TestSelect_CulturalMatchBidirectional(t *testing.T) {
	if !culturalMatch("Latin", "Latin American") {
		t.Error("preference contained in background should match")
	}
	if !culturalMatch("Andean Quechua heritage", "Andean Quechua") {
		t.Error("background contained in preference should match")
	}
	if culturalMatch("", "Latin American") {
		t.Error("empty preference should not match")
	}
	if culturalMatch("Latin", "") {
		t.Error("empty background should not match")
	}
}

func TestSelect_StyleViaComplexityAdaptation(t *testing.T) {
	// samuel-en adapts complexity, so the style criterion holds even for a
	// learner with no auditory affinity.
	s := NewSelector(DefaultWeights(), catalog.Default())
	p := profileWithLanguage("en")

	_, breakdowns, err := s.Explain(p, "math", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, b := range breakdowns {
		if b.TutorID != "samuel-en" {
			continue
		}
		for _, c := range b.Criteria {
			if c.Criterion == CriterionStyle && !c.Matched {
				t.Error("style criterion should match via complexity adaptation")
			}
		}
	}
}

func TestExplain_BreakdownCoversAllTutors(t *testing.T) {
	s := NewSelector(DefaultWeights(), catalog.Default())
	p := profileWithLanguage("es")

	_, breakdowns, err := s.Explain(p, "math", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(breakdowns) != len(catalog.Default().Tutors()) {
		t.Fatalf("got %d breakdowns, want one per tutor", len(breakdowns))
	}
	for _, b := range breakdowns {
		if len(b.Criteria) != 4 {
			t.Errorf("tutor %s: got %d criteria, want 4", b.TutorID, len(b.Criteria))
		}
		if b.Total < 0 || b.Total > 100 {
			t.Errorf("tutor %s: score %d out of [0,100]", b.TutorID, b.Total)
		}
	}
}

func TestSelect_Deterministic(t *testing.T) {
	s := NewSelector(DefaultWeights(), catalog.Default())
	p := profileWithLanguage("hi")
	p.StyleMix = profile.LearningStyleMix{Auditory: 0.4}

	first, err := s.Select(p, "science", "South Asian")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := s.Select(p, "science", "South Asian")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.ID != first.ID {
			t.Fatalf("selection not stable: %q vs %q", again.ID, first.ID)
		}
	}
}
