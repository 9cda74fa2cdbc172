package engine

import (
	"testing"
	"time"

	"github.com/mach-hub-g1/edugamers-engine/internal/catalog"
	"github.com/mach-hub-g1/edugamers-engine/internal/config"
	"github.com/mach-hub-g1/edugamers-engine/internal/profile"
	"github.com/mach-hub-g1/edugamers-engine/internal/risk"
)

func TestNew_NilCatalogUsesDefault(t *testing.T) {
	e := New(config.Default(), nil, nil)
	if e.Catalog() != catalog.Default() {
		t.Error("nil catalog should select the built-in catalog")
	}
}

// Exercises the full pipeline the way the CLI drives it: analyze, then
// select a tutor, generate a path and assess risk from the same profile.
func TestEngine_Pipeline(t *testing.T) {
	e := New(config.Default(), nil, nil)

	ts := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	history := []profile.InteractionRecord{
		{SessionID: "s1", Timestamp: ts, Language: "es", Modality: profile.ModalityAudio, DurationMinutes: 18, Confidence: 0.9, Emotion: "happy"},
		{SessionID: "s2", Timestamp: ts, Language: "es", Modality: profile.ModalityAudio, DurationMinutes: 22, Confidence: 0.85, Emotion: "happy"},
		{SessionID: "s3", Timestamp: ts, Language: "es", Modality: profile.ModalityInteractive, DurationMinutes: 20, Confidence: 0.9, Emotion: "excited"},
		{SessionID: "s4", Timestamp: ts, Language: "es", Modality: profile.ModalityAudio, DurationMinutes: 20, Confidence: 0.88, Emotion: "happy"},
		{SessionID: "s5", Timestamp: ts, Language: "es", Modality: profile.ModalityAudio, DurationMinutes: 20, Confidence: 0.9, Emotion: "happy"},
	}
	performance := []profile.PerformanceRecord{
		{Subject: "math", Accuracy: 0.9, MasteryLevel: 4},
		{Subject: "science", Accuracy: 0.4, MasteryLevel: 2},
	}

	p, err := e.Profiles.Analyze("learner-1", history, performance)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !p.PrefersLanguage("es") {
		t.Fatal("profile should prefer es")
	}

	tutor, err := e.Tutors.Select(p, "math", "Latin American")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if tutor.ID != "maya-es" {
		t.Errorf("got tutor %q, want maya-es", tutor.ID)
	}

	lp, err := e.Paths.Generate(p, "math", 10)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if lp.Difficulty != 5 {
		t.Errorf("got difficulty %d, want 5 (mastery 4 + 1)", lp.Difficulty)
	}

	a := e.Risk.Predict(p, history, performance)
	if a.Level != risk.LevelLow {
		t.Errorf("got risk %q for an engaged learner, want low (factors %v)", a.Level, a.Factors)
	}

	d := e.Content.Select("math", "Quechua", p.PreferredLanguages[0], 10)
	if d.Title == "" {
		t.Error("content descriptor should not be empty")
	}
}
