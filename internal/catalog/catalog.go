package catalog

import (
	"fmt"
	"slices"
)

// Catalog holds the static language and tutor catalogs with precomputed
// indices. Built once, read-only thereafter; safe for concurrent readers.
type Catalog struct {
	languages []Language
	tutors    []TutorPersona
	byCode    map[string]*Language
	byTutorID map[string]*TutorPersona
	bySubject map[string][]TutorPersona
}

// New builds a catalog from language and tutor slices. Tutor iteration order
// is preserved exactly as given; selection tie-breaks depend on it.
func New(languages []Language, tutors []TutorPersona) (*Catalog, error) {
	c := &Catalog{
		languages: languages,
		tutors:    tutors,
		byCode:    make(map[string]*Language, len(languages)),
		byTutorID: make(map[string]*TutorPersona, len(tutors)),
		bySubject: make(map[string][]TutorPersona),
	}

	for i := range c.languages {
		code := c.languages[i].Code
		if code == "" {
			return nil, fmt.Errorf("language %d: empty code", i)
		}
		if _, dup := c.byCode[code]; dup {
			return nil, fmt.Errorf("duplicate language code: %q", code)
		}
		c.byCode[code] = &c.languages[i]
	}

	for i := range c.tutors {
		id := c.tutors[i].ID
		if id == "" {
			return nil, fmt.Errorf("tutor %d: empty id", i)
		}
		if _, dup := c.byTutorID[id]; dup {
			return nil, fmt.Errorf("duplicate tutor id: %q", id)
		}
		c.byTutorID[id] = &c.tutors[i]
		for _, subject := range c.tutors[i].Specializations {
			c.bySubject[subject] = append(c.bySubject[subject], c.tutors[i])
		}
	}

	return c, nil
}

// defaultCatalog is the package-level singleton, set by init() in seed files.
var defaultCatalog *Catalog

func init() {
	c, err := New(seedLanguages, seedTutors)
	if err != nil {
		panic(fmt.Sprintf("catalog seed invalid: %v", err))
	}
	defaultCatalog = c
}

// Default returns the built-in seed catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Languages returns all languages in catalog order.
func (c *Catalog) Languages() []Language {
	return slices.Clone(c.languages)
}

// Tutors returns all tutor personas in catalog order.
func (c *Catalog) Tutors() []TutorPersona {
	return slices.Clone(c.tutors)
}

// LanguageByCode returns the language for a code, or false if unknown.
func (c *Catalog) LanguageByCode(code string) (Language, bool) {
	if l, ok := c.byCode[code]; ok {
		return *l, true
	}
	return Language{}, false
}

// ResolveLanguage returns the catalog entry for a code, or a degraded
// fallback entry when the code is unknown. The second return reports
// whether the code resolved against the catalog.
func (c *Catalog) ResolveLanguage(code string) (Language, bool) {
	if l, ok := c.byCode[code]; ok {
		return *l, true
	}
	return FallbackLanguage(code), false
}

// TutorByID returns the tutor persona for an id, or false if unknown.
func (c *Catalog) TutorByID(id string) (TutorPersona, bool) {
	if t, ok := c.byTutorID[id]; ok {
		return *t, true
	}
	return TutorPersona{}, false
}

// TutorsBySubject returns tutors specializing in a subject, in catalog order.
func (c *Catalog) TutorsBySubject(subject string) []TutorPersona {
	return slices.Clone(c.bySubject[subject])
}

// IndigenousLanguages returns the catalog's indigenous languages.
func (c *Catalog) IndigenousLanguages() []Language {
	var result []Language
	for _, l := range c.languages {
		if l.Indigenous {
			result = append(result, l)
		}
	}
	return result
}
