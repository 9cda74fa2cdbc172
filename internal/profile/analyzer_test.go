package profile

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/mach-hub-g1/edugamers-engine/internal/catalog"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(DefaultConfig(), catalog.Default(), nil)
}

func rec(lang string, modality Modality, mins float64) InteractionRecord {
	return InteractionRecord{
		SessionID:       "s1",
		Timestamp:       time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Language:        lang,
		Modality:        modality,
		DurationMinutes: mins,
	}
}

func TestAnalyze_EmptyLearnerID(t *testing.T) {
	a := newTestAnalyzer()
	_, err := a.Analyze("", []InteractionRecord{}, []PerformanceRecord{})
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidInputError", err)
	}
}

func TestAnalyze_NilHistory(t *testing.T) {
	a := newTestAnalyzer()
	_, err := a.Analyze("learner-1", nil, []PerformanceRecord{})
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidInputError", err)
	}
}

func TestAnalyze_NilPerformance(t *testing.T) {
	a := newTestAnalyzer()
	_, err := a.Analyze("learner-1", []InteractionRecord{}, nil)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidInputError", err)
	}
}

func TestAnalyze_EmptyHistoryDefaults(t *testing.T) {
	a := newTestAnalyzer()
	p, err := a.Analyze("learner-1", []InteractionRecord{}, []PerformanceRecord{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.AttentionSpanMins != 15 {
		t.Errorf("got attention span %d, want default 15", p.AttentionSpanMins)
	}
	want := LearningStyleMix{Visual: 0.25, Auditory: 0.25, Kinesthetic: 0.25, Reading: 0.25}
	if p.StyleMix != want {
		t.Errorf("got style mix %+v, want even %+v", p.StyleMix, want)
	}
	if len(p.PreferredLanguages) != 0 {
		t.Errorf("got %d languages, want 0", len(p.PreferredLanguages))
	}
}

func TestAnalyze_StyleMixFromModalities(t *testing.T) {
	a := newTestAnalyzer()
	history := []InteractionRecord{
		rec("en", ModalityAudio, 10),
		rec("en", ModalityAudio, 10),
		rec("en", ModalityText, 10),
		rec("en", ModalityInteractive, 10),
	}
	p, err := a.Analyze("learner-1", history, []PerformanceRecord{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.StyleMix.Auditory != 0.5 {
		t.Errorf("got auditory %f, want 0.5", p.StyleMix.Auditory)
	}
	if p.StyleMix.Reading != 0.25 {
		t.Errorf("got reading %f, want 0.25", p.StyleMix.Reading)
	}
	if p.StyleMix.Kinesthetic != 0.25 {
		t.Errorf("got kinesthetic %f, want 0.25", p.StyleMix.Kinesthetic)
	}
	if p.StyleMix.Visual != 0 {
		t.Errorf("got visual %f, want 0", p.StyleMix.Visual)
	}
}

func TestAnalyze_LanguageRankByFrequency(t *testing.T) {
	a := newTestAnalyzer()
	history := []InteractionRecord{
		rec("es", ModalityText, 10),
		rec("en", ModalityText, 10),
		rec("en", ModalityText, 10),
	}
	p, err := a.Analyze("learner-1", history, []PerformanceRecord{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.PreferredLanguages) != 2 {
		t.Fatalf("got %d languages, want 2", len(p.PreferredLanguages))
	}
	if p.PreferredLanguages[0].Code != "en" {
		t.Errorf("got first language %q, want en (most frequent)", p.PreferredLanguages[0].Code)
	}
	if p.PreferredLanguages[1].Code != "es" {
		t.Errorf("got second language %q, want es", p.PreferredLanguages[1].Code)
	}
}

func TestAnalyze_LanguageTieFirstSeen(t *testing.T) {
	a := newTestAnalyzer()
	history := []InteractionRecord{
		rec("sw", ModalityText, 10),
		rec("en", ModalityText, 10),
	}
	p, err := a.Analyze("learner-1", history, []PerformanceRecord{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PreferredLanguages[0].Code != "sw" {
		t.Errorf("got first language %q, want sw (first seen)", p.PreferredLanguages[0].Code)
	}
}

func TestAnalyze_UnknownLanguageFallback(t *testing.T) {
	a := newTestAnalyzer()
	history := []InteractionRecord{rec("xx", ModalityText, 10)}
	p, err := a.Analyze("learner-1", history, []PerformanceRecord{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.PreferredLanguages) != 1 {
		t.Fatalf("got %d languages, want 1", len(p.PreferredLanguages))
	}
	lang := p.PreferredLanguages[0]
	if lang.Name != "xx" {
		t.Errorf("got fallback name %q, want code echoed", lang.Name)
	}
	if lang.Indigenous {
		t.Error("fallback language should not be indigenous")
	}
	if lang.Speech.Synthesis || lang.Speech.Recognition {
		t.Error("fallback language should have no speech capabilities")
	}
}

func TestAnalyze_AttentionSpanFloor(t *testing.T) {
	a := newTestAnalyzer()
	history := []InteractionRecord{rec("en", ModalityText, 0.2)}
	p, err := a.Analyze("learner-1", history, []PerformanceRecord{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.AttentionSpanMins != 1 {
		t.Errorf("got attention span %d, want floor 1", p.AttentionSpanMins)
	}
}

func TestAnalyze_AttentionSpanMean(t *testing.T) {
	a := newTestAnalyzer()
	history := []InteractionRecord{
		rec("en", ModalityText, 10),
		rec("en", ModalityText, 20),
	}
	p, err := a.Analyze("learner-1", history, []PerformanceRecord{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.AttentionSpanMins != 15 {
		t.Errorf("got attention span %d, want 15", p.AttentionSpanMins)
	}
}

func TestAnalyze_StrengthsAndChallenges(t *testing.T) {
	a := newTestAnalyzer()
	performance := []PerformanceRecord{
		{Subject: "math", Accuracy: 0.9, MasteryLevel: 5},
		{Subject: "science", Accuracy: 0.5, MasteryLevel: 3},
		{Subject: "history", Accuracy: 0.2, MasteryLevel: 1},
	}
	p, err := a.Analyze("learner-1", []InteractionRecord{}, performance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(p.Strengths, []string{"math"}) {
		t.Errorf("got strengths %v, want [math]", p.Strengths)
	}
	if !reflect.DeepEqual(p.Challenges, []string{"history"}) {
		t.Errorf("got challenges %v, want [history]", p.Challenges)
	}
	if p.MasteryLevels["math"] != 5 {
		t.Errorf("got math mastery %d, want 5", p.MasteryLevels["math"])
	}
}

func TestAnalyze_SingleSubjectNeitherBucket(t *testing.T) {
	a := newTestAnalyzer()
	performance := []PerformanceRecord{{Subject: "math", Accuracy: 0.9, MasteryLevel: 5}}
	p, err := a.Analyze("learner-1", []InteractionRecord{}, performance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Strengths) != 0 || len(p.Challenges) != 0 {
		t.Errorf("single subject should land in neither bucket, got strengths=%v challenges=%v",
			p.Strengths, p.Challenges)
	}
}

func TestAnalyze_BackgroundTags(t *testing.T) {
	a := newTestAnalyzer()
	history := []InteractionRecord{
		rec("qu", ModalityAudio, 10),
		rec("es", ModalityAudio, 10),
	}
	p, err := a.Analyze("learner-1", history, []PerformanceRecord{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"andes", "quechua", "latin_america"}
	if !reflect.DeepEqual(p.CulturalBackground, want) {
		t.Errorf("got background %v, want %v", p.CulturalBackground, want)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := newTestAnalyzer()
	history := []InteractionRecord{
		rec("es", ModalityAudio, 12),
		rec("en", ModalityText, 8),
		rec("es", ModalityInteractive, 15),
	}
	performance := []PerformanceRecord{
		{Subject: "math", Accuracy: 0.8, MasteryLevel: 4},
		{Subject: "science", Accuracy: 0.3, MasteryLevel: 2},
	}

	p1, err := a.Analyze("learner-1", history, performance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p2, err := a.Analyze("learner-1", history, performance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(p1, p2) {
		t.Errorf("profiles differ across identical calls:\n%+v\n%+v", p1, p2)
	}
}

func TestAnalyze_StyleMixOrderIndependent(t *testing.T) {
	a := newTestAnalyzer()
	history := []InteractionRecord{
		rec("en", ModalityAudio, 10),
		rec("en", ModalityText, 20),
		rec("en", ModalityInteractive, 30),
	}
	reversed := []InteractionRecord{history[2], history[1], history[0]}

	p1, _ := a.Analyze("learner-1", history, []PerformanceRecord{})
	p2, _ := a.Analyze("learner-1", reversed, []PerformanceRecord{})

	if p1.StyleMix != p2.StyleMix {
		t.Errorf("style mix depends on input order: %+v vs %+v", p1.StyleMix, p2.StyleMix)
	}
	if p1.AttentionSpanMins != p2.AttentionSpanMins {
		t.Errorf("attention span depends on input order: %d vs %d",
			p1.AttentionSpanMins, p2.AttentionSpanMins)
	}
}

func TestAnalyze_PreferredTimes(t *testing.T) {
	a := newTestAnalyzer()
	morning := rec("en", ModalityText, 10)
	morning.Timestamp = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := rec("en", ModalityText, 10)
	evening.Timestamp = time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)

	p, err := a.Analyze("learner-1", []InteractionRecord{morning, morning, evening, evening}, []PerformanceRecord{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"morning", "evening"}
	if !reflect.DeepEqual(p.PreferredTimes, want) {
		t.Errorf("got preferred times %v, want %v", p.PreferredTimes, want)
	}
}

func TestDominantStyle(t *testing.T) {
	m := LearningStyleMix{Visual: 0.1, Auditory: 0.6, Kinesthetic: 0.2, Reading: 0.1}
	if got := m.Dominant(); got != catalog.StyleAuditory {
		t.Errorf("got dominant %q, want auditory", got)
	}
}
