package catalog

import (
	"testing"
)

func TestDefault_LanguageIndex(t *testing.T) {
	cat := Default()
	es, ok := cat.LanguageByCode("es")
	if !ok {
		t.Fatal("es should be in the built-in catalog")
	}
	if es.Name != "Spanish" || es.Region != "Latin America" {
		t.Errorf("got %+v, want Spanish / Latin America", es)
	}

	if _, ok := cat.LanguageByCode("xx"); ok {
		t.Error("xx should not resolve")
	}
}

func TestDefault_TutorIndex(t *testing.T) {
	cat := Default()
	maya, ok := cat.TutorByID("maya-es")
	if !ok {
		t.Fatal("maya-es should be in the built-in catalog")
	}
	if maya.Language.Code != "es" {
		t.Errorf("got language %q, want es", maya.Language.Code)
	}
	if !maya.Specializes("math") {
		t.Error("maya-es should specialize in math")
	}
	if maya.Specializes("music") {
		t.Error("maya-es should not specialize in music")
	}
}

func TestDefault_TutorsBySubjectOrder(t *testing.T) {
	cat := Default()
	mathTutors := cat.TutorsBySubject("math")
	want := []string{"maya-es", "amaru-qu", "priya-hi", "samuel-en"}
	if len(mathTutors) != len(want) {
		t.Fatalf("got %d math tutors, want %d", len(mathTutors), len(want))
	}
	for i, id := range want {
		if mathTutors[i].ID != id {
			t.Errorf("math tutor %d: got %q, want %q (catalog order)", i, mathTutors[i].ID, id)
		}
	}
}

func TestDefault_IndigenousLanguages(t *testing.T) {
	indigenous := Default().IndigenousLanguages()
	if len(indigenous) != 3 {
		t.Fatalf("got %d indigenous languages, want 3", len(indigenous))
	}
	for _, l := range indigenous {
		if !l.Indigenous {
			t.Errorf("language %q flagged non-indigenous", l.Code)
		}
	}
}

func TestResolveLanguage_Fallback(t *testing.T) {
	lang, known := Default().ResolveLanguage("tlh")
	if known {
		t.Error("tlh should not resolve against the catalog")
	}
	if lang.Code != "tlh" || lang.Name != "tlh" {
		t.Errorf("got fallback %+v, want code echoed into name", lang)
	}
	if lang.Indigenous || lang.Speech.Synthesis || lang.Speech.Recognition {
		t.Errorf("fallback must have all flags off: %+v", lang)
	}
}

func TestNew_DuplicateLanguageCode(t *testing.T) {
	_, err := New([]Language{{Code: "en", Name: "English"}, {Code: "en", Name: "Again"}}, nil)
	if err == nil {
		t.Error("duplicate language code should fail")
	}
}

func TestNew_EmptyLanguageCode(t *testing.T) {
	_, err := New([]Language{{Code: "", Name: "Nameless"}}, nil)
	if err == nil {
		t.Error("empty language code should fail")
	}
}

func TestNew_DuplicateTutorID(t *testing.T) {
	tutors := []TutorPersona{{ID: "t1", Name: "A"}, {ID: "t1", Name: "B"}}
	_, err := New(nil, tutors)
	if err == nil {
		t.Error("duplicate tutor id should fail")
	}
}

func TestNew_PreservesTutorOrder(t *testing.T) {
	tutors := []TutorPersona{{ID: "b"}, {ID: "a"}, {ID: "c"}}
	cat, err := New(nil, tutors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := cat.Tutors()
	for i, want := range []string{"b", "a", "c"} {
		if got[i].ID != want {
			t.Errorf("tutor %d: got %q, want %q", i, got[i].ID, want)
		}
	}
}
