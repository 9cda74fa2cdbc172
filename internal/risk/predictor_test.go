package risk

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/mach-hub-g1/edugamers-engine/internal/catalog"
	"github.com/mach-hub-g1/edugamers-engine/internal/profile"
)

func neutralHistory(n int) []profile.InteractionRecord {
	history := make([]profile.InteractionRecord, n)
	for i := range history {
		history[i] = profile.InteractionRecord{SessionID: "s1", Emotion: "happy"}
	}
	return history
}

func TestPredict_HighRisk(t *testing.T) {
	p := NewPredictor(DefaultConfig())
	prof := &profile.LearnerProfile{
		ID:                "learner-1",
		Strengths:         []string{"music"},
		Challenges:        []string{"math", "reading"},
		AttentionSpanMins: 8,
	}

	a := p.Predict(prof, neutralHistory(3), []profile.PerformanceRecord{})
	if a.Level != LevelHigh {
		t.Fatalf("got level %q, want high", a.Level)
	}
	want := []string{"low_engagement", "academic_struggles", "attention_difficulties"}
	if !reflect.DeepEqual(a.Factors, want) {
		t.Errorf("got factors %v, want %v", a.Factors, want)
	}
}

func TestPredict_MediumRisk(t *testing.T) {
	p := NewPredictor(DefaultConfig())
	prof := &profile.LearnerProfile{
		ID:                "learner-1",
		Strengths:         []string{"music", "math"},
		Challenges:        []string{"reading"},
		AttentionSpanMins: 8,
	}

	a := p.Predict(prof, neutralHistory(3), []profile.PerformanceRecord{})
	if a.Level != LevelMedium {
		t.Errorf("got level %q, want medium with 2 factors %v", a.Level, a.Factors)
	}
}

func TestPredict_LowRisk(t *testing.T) {
	p := NewPredictor(DefaultConfig())
	prof := &profile.LearnerProfile{
		ID:                "learner-1",
		Strengths:         []string{"music", "math"},
		Challenges:        []string{"reading"},
		AttentionSpanMins: 30,
	}

	a := p.Predict(prof, neutralHistory(8), []profile.PerformanceRecord{})
	if a.Level != LevelLow {
		t.Errorf("got level %q, want low, factors %v", a.Level, a.Factors)
	}
	if len(a.Factors) != 0 {
		t.Errorf("got factors %v, want none", a.Factors)
	}
}

func TestPredict_NegativeEmotionFactor(t *testing.T) {
	p := NewPredictor(DefaultConfig())
	prof := &profile.LearnerProfile{ID: "learner-1", AttentionSpanMins: 30}

	history := neutralHistory(6)
	history[0].Emotion = "frustrated"
	history[1].Emotion = "Confused"
	history[2].Emotion = "bored"

	a := p.Predict(prof, history, []profile.PerformanceRecord{})
	if !slices.Contains(a.Factors, "negative_emotion") {
		t.Errorf("got factors %v, want negative_emotion at 50%% share", a.Factors)
	}

	history[2].Emotion = "happy"
	a = p.Predict(prof, history, []profile.PerformanceRecord{})
	if slices.Contains(a.Factors, "negative_emotion") {
		t.Errorf("got factors %v, negative_emotion should not trigger below the share", a.Factors)
	}
}

func TestPredict_HighEscalatesImmediateOnly(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPredictor(cfg)

	high := p.Predict(&profile.LearnerProfile{
		ID:                "learner-1",
		Challenges:        []string{"math"},
		AttentionSpanMins: 5,
	}, neutralHistory(1), []profile.PerformanceRecord{})
	if high.Level != LevelHigh {
		t.Fatalf("setup: got level %q, want high", high.Level)
	}
	for _, tag := range cfg.HighImmediate {
		if !slices.Contains(high.Interventions.Immediate, tag) {
			t.Errorf("high immediate tier missing %q: %v", tag, high.Interventions.Immediate)
		}
	}
	if !reflect.DeepEqual(high.Interventions.ShortTerm, cfg.BasePlan.ShortTerm) {
		t.Errorf("short-term tier must not escalate: %v", high.Interventions.ShortTerm)
	}
	if !reflect.DeepEqual(high.Interventions.LongTerm, cfg.BasePlan.LongTerm) {
		t.Errorf("long-term tier must not escalate: %v", high.Interventions.LongTerm)
	}

	low := p.Predict(&profile.LearnerProfile{
		ID:                "learner-2",
		AttentionSpanMins: 30,
	}, neutralHistory(8), []profile.PerformanceRecord{})
	if !reflect.DeepEqual(low.Interventions.Immediate, cfg.BasePlan.Immediate) {
		t.Errorf("low-risk immediate tier must stay base: %v", low.Interventions.Immediate)
	}
}

func TestPredict_CulturalConsiderations(t *testing.T) {
	p := NewPredictor(DefaultConfig())
	prof := &profile.LearnerProfile{
		ID:                 "learner-1",
		CulturalBackground: []string{"andes", "quechua"},
		AttentionSpanMins:  30,
	}

	a := p.Predict(prof, neutralHistory(8), []profile.PerformanceRecord{})
	want := []string{"respect_andes_values", "respect_quechua_values"}
	if !reflect.DeepEqual(a.CulturalConsiderations, want) {
		t.Errorf("got considerations %v, want %v", a.CulturalConsiderations, want)
	}
}

func TestPredict_SuccessPredictors(t *testing.T) {
	p := NewPredictor(DefaultConfig())
	qu, _ := catalog.Default().LanguageByCode("qu")
	prof := &profile.LearnerProfile{
		ID:                 "learner-1",
		Strengths:          []string{"math"},
		PreferredLanguages: []catalog.Language{qu},
		AttentionSpanMins:  25,
	}

	a := p.Predict(prof, neutralHistory(8), []profile.PerformanceRecord{})
	want := []string{
		"existing_academic_strengths",
		"consistent_engagement",
		"sustained_focus",
		"strong_cultural_identity",
	}
	if !reflect.DeepEqual(a.SuccessPredictors, want) {
		t.Errorf("got predictors %v, want %v", a.SuccessPredictors, want)
	}
}

func TestPredict_EngagementScoresBounded(t *testing.T) {
	p := NewPredictor(DefaultConfig())
	prof := &profile.LearnerProfile{
		ID:                 "learner-1",
		CulturalBackground: []string{"a", "b", "c", "d", "e", "f", "g"},
		AttentionSpanMins:  30,
	}

	a := p.Predict(prof, neutralHistory(50), []profile.PerformanceRecord{})
	if a.ParentalEngagement != 1 {
		t.Errorf("got parental engagement %f, want cap 1", a.ParentalEngagement)
	}
	if a.CommunitySupport != 1 {
		t.Errorf("got community support %f, want cap 1", a.CommunitySupport)
	}

	sparse := p.Predict(&profile.LearnerProfile{ID: "learner-2", AttentionSpanMins: 30},
		neutralHistory(0), []profile.PerformanceRecord{})
	if sparse.ParentalEngagement != 0.4 {
		t.Errorf("got parental engagement %f, want base 0.4", sparse.ParentalEngagement)
	}
	if sparse.CommunitySupport != 0.5 {
		t.Errorf("got community support %f, want base 0.5", sparse.CommunitySupport)
	}
}

func TestPredictBatch_Misaligned(t *testing.T) {
	p := NewPredictor(DefaultConfig())
	profiles := []*profile.LearnerProfile{{ID: "a"}, {ID: "b"}}
	histories := [][]profile.InteractionRecord{neutralHistory(1)}
	performance := [][]profile.PerformanceRecord{{}, {}}

	_, err := p.PredictBatch(profiles, histories, performance)
	var misaligned *MisalignedInputError
	if !errors.As(err, &misaligned) {
		t.Fatalf("got %v, want MisalignedInputError", err)
	}
	if misaligned.Profiles != 2 || misaligned.Histories != 1 || misaligned.Performance != 2 {
		t.Errorf("error carries wrong lengths: %+v", misaligned)
	}
}

func TestPredictBatch_ResultsAligned(t *testing.T) {
	p := NewPredictor(DefaultConfig())
	profiles := []*profile.LearnerProfile{
		{ID: "a", AttentionSpanMins: 30},
		{ID: "b", AttentionSpanMins: 5, Challenges: []string{"math"}},
		{ID: "c", AttentionSpanMins: 30},
	}
	histories := [][]profile.InteractionRecord{
		neutralHistory(8), neutralHistory(1), neutralHistory(8),
	}
	performance := [][]profile.PerformanceRecord{{}, {}, {}}

	results, err := p.PredictBatch(profiles, histories, performance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, a := range results {
		if a.LearnerID != profiles[i].ID {
			t.Errorf("result %d: got learner %q, want %q", i, a.LearnerID, profiles[i].ID)
		}
	}
	if results[1].Level != LevelHigh {
		t.Errorf("got level %q for learner b, want high", results[1].Level)
	}
	if results[0].Level != LevelLow || results[2].Level != LevelLow {
		t.Errorf("learners a and c should be low risk: %q %q", results[0].Level, results[2].Level)
	}
}

func TestPredictBatch_MatchesSingle(t *testing.T) {
	p := NewPredictor(DefaultConfig())
	prof := &profile.LearnerProfile{
		ID:                "learner-1",
		Challenges:        []string{"math"},
		AttentionSpanMins: 8,
	}
	history := neutralHistory(2)

	single := p.Predict(prof, history, []profile.PerformanceRecord{})
	batch, err := p.PredictBatch(
		[]*profile.LearnerProfile{prof},
		[][]profile.InteractionRecord{history},
		[][]profile.PerformanceRecord{{}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(single, batch[0]) {
		t.Errorf("batch result diverges from single:\n%+v\n%+v", single, batch[0])
	}
}

func TestLevelDisplayName(t *testing.T) {
	cases := map[Level]string{
		LevelLow:    "Low",
		LevelMedium: "Medium",
		LevelHigh:   "High",
	}
	for level, want := range cases {
		if got := level.DisplayName(); got != want {
			t.Errorf("level %q: got %q, want %q", level, got, want)
		}
	}
}
