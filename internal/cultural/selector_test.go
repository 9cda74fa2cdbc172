package cultural

import (
	"strings"
	"testing"

	"github.com/mach-hub-g1/edugamers-engine/internal/catalog"
)

func lang(code string) catalog.Language {
	l, ok := catalog.Default().LanguageByCode(code)
	if !ok {
		return catalog.FallbackLanguage(code)
	}
	return l
}

func TestSelect_CuratedEntry(t *testing.T) {
	s := NewSelector(DefaultConfig())
	d := s.Select("math", "Quechua", lang("qu"), 10)

	if d.Title != "Quipu: Mathematics in Knots" {
		t.Errorf("got title %q, want curated quipu entry", d.Title)
	}
	if d.Language != "qu" {
		t.Errorf("got language %q, want qu", d.Language)
	}
	if len(d.MediaRefs) == 0 {
		t.Error("curated entry should carry media refs")
	}
}

func TestSelect_FallbackNeverEmpty(t *testing.T) {
	s := NewSelector(DefaultConfig())
	d := s.Select("algebra", "Unknown Culture X", lang("en"), 10)

	if d.Title == "" || d.Description == "" {
		t.Fatalf("fallback descriptor incomplete: %+v", d)
	}
	if !strings.Contains(d.Title, "algebra") || !strings.Contains(d.Title, "Unknown Culture X") {
		t.Errorf("fallback title should reference topic and culture: %q", d.Title)
	}
	if len(d.MediaRefs) != 1 {
		t.Errorf("got %d media refs, want 1 generic ref", len(d.MediaRefs))
	}
}

func TestSelect_AgeBand(t *testing.T) {
	s := NewSelector(DefaultConfig())

	cases := []struct {
		target   int
		min, max int
	}{
		{10, 8, 12},
		{5, 6, 7},
		{20, 18, 18},
		{6, 6, 8},
		{18, 16, 18},
	}
	for _, c := range cases {
		d := s.Select("math", "Quechua", lang("qu"), c.target)
		if d.AgeAppropriate.Min != c.min || d.AgeAppropriate.Max != c.max {
			t.Errorf("target %d: got band [%d,%d], want [%d,%d]",
				c.target, d.AgeAppropriate.Min, d.AgeAppropriate.Max, c.min, c.max)
		}
		if d.AgeAppropriate.Min > d.AgeAppropriate.Max {
			t.Errorf("target %d: inverted band %+v", c.target, d.AgeAppropriate)
		}
	}
}

func TestSelect_LanguageOverridesCuratedDefault(t *testing.T) {
	s := NewSelector(DefaultConfig())
	d := s.Select("math", "Quechua", lang("es"), 10)
	if d.Language != "es" {
		t.Errorf("got language %q, want caller-supplied es", d.Language)
	}
}
