package path

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mach-hub-g1/edugamers-engine/internal/profile"
)

func testProfile() *profile.LearnerProfile {
	return &profile.LearnerProfile{
		ID:                "learner-1",
		MasteryLevels:     map[string]int{"math": 3},
		AttentionSpanMins: 20,
	}
}

func TestGenerate_DifficultyOneAboveMastery(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	lp, err := g.Generate(testProfile(), "math", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lp.Difficulty != 4 {
		t.Errorf("got difficulty %d, want 4 (mastery 3 + 1)", lp.Difficulty)
	}
	if lp.CurrentModule != "math-level-4" {
		t.Errorf("got current module %q, want math-level-4", lp.CurrentModule)
	}
	if lp.NextModule != "math-level-5" {
		t.Errorf("got next module %q, want math-level-5", lp.NextModule)
	}
}

func TestGenerate_TargetCapsDifficulty(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	lp, err := g.Generate(testProfile(), "math", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lp.Difficulty != 3 {
		t.Errorf("got difficulty %d, want target cap 3", lp.Difficulty)
	}
}

func TestGenerate_UnassessedSubjectStartsLow(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	lp, err := g.Generate(testProfile(), "science", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lp.Difficulty != 2 {
		t.Errorf("got difficulty %d, want 2 (default mastery 1 + 1)", lp.Difficulty)
	}
}

func TestGenerate_MaxDifficultyClamp(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	p := testProfile()
	p.MasteryLevels["math"] = 12
	lp, err := g.Generate(p, "math", 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lp.Difficulty != 10 {
		t.Errorf("got difficulty %d, want clamp at 10", lp.Difficulty)
	}
	if lp.NextModule != "math-level-10" {
		t.Errorf("got next module %q, want math-level-10 at the ceiling", lp.NextModule)
	}
}

func TestGenerate_EmptySubject(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	_, err := g.Generate(testProfile(), "", 10)
	var unknown *UnknownSubjectError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v, want UnknownSubjectError", err)
	}
}

func TestGenerate_EstimatedMinutes(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	lp, err := g.Generate(testProfile(), "math", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 20 min span * difficulty 4 * 0.8
	if lp.EstimatedMinutes != 64 {
		t.Errorf("got %d minutes, want 64", lp.EstimatedMinutes)
	}
}

func TestGenerate_MinutesFloor(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	p := testProfile()
	p.AttentionSpanMins = 1
	p.MasteryLevels = map[string]int{}
	lp, err := g.Generate(p, "math", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lp.EstimatedMinutes != 10 {
		t.Errorf("got %d minutes, want floor 10", lp.EstimatedMinutes)
	}
}

func TestGenerate_CuratedCulturalConnection(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	p := testProfile()
	p.CulturalBackground = []string{"andes", "quechua"}
	lp, err := g.Generate(p, "math", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lp.Cultural.LocalExample != "Counting and recording harvests with quipu knot strings" {
		t.Errorf("got local example %q, want curated quipu entry", lp.Cultural.LocalExample)
	}
}

func TestGenerate_UnknownSubjectNeutralFallback(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	lp, err := g.Generate(testProfile(), "quantum-basketweaving", 10)
	if err != nil {
		t.Fatalf("unrecognized subject should degrade, not fail: %v", err)
	}
	if lp.Cultural.LocalExample == "" || lp.Cultural.GlobalContext == "" || lp.Cultural.HistoricalNote == "" {
		t.Errorf("neutral fallback connection incomplete: %+v", lp.Cultural)
	}
}

func TestGenerate_UnknownCultureFallback(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	p := testProfile()
	p.CulturalBackground = []string{"atlantis"}
	lp, err := g.Generate(p, "math", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lp.Cultural.LocalExample == "" {
		t.Error("culture-templated fallback should not be empty")
	}
	if len(lp.Content.CulturalArtifacts) != 1 {
		t.Errorf("got %d artifacts, want 1", len(lp.Content.CulturalArtifacts))
	}
}

func TestGenerate_AssessmentAlwaysCulturallyResponsive(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	lp, err := g.Generate(testProfile(), "math", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lp.Assessment.CulturallyResponsive {
		t.Error("assessment strategy must be culturally responsive")
	}
	if len(lp.Assessment.Formative) == 0 || len(lp.Assessment.Summative) == 0 {
		t.Error("assessment strategy missing formative or summative methods")
	}
}

func TestGenerate_InteractiveElementsFollowStyle(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	p := testProfile()
	p.StyleMix = profile.LearningStyleMix{Kinesthetic: 0.7}
	lp, err := g.Generate(p, "math", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"build_and_check", "movement_prompt"}
	if !reflect.DeepEqual(lp.Content.InteractiveElements, want) {
		t.Errorf("got elements %v, want %v", lp.Content.InteractiveElements, want)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	p := testProfile()
	p.CulturalBackground = []string{"andes"}

	lp1, err := g.Generate(p, "math", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lp2, err := g.Generate(p, "math", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lp1.ID == "" {
		t.Fatal("path ID must not be empty")
	}
	if !reflect.DeepEqual(lp1, lp2) {
		t.Errorf("paths differ across identical calls:\n%+v\n%+v", lp1, lp2)
	}
}
