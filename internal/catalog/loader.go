package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog file format major version this build reads.
const SupportedMajor = "v1"

// catalogFile mirrors the on-disk catalog document.
type catalogFile struct {
	Version   string         `koanf:"version"`
	Languages []Language     `koanf:"languages"`
	Tutors    []TutorPersona `koanf:"tutors"`
}

// Load reads a YAML catalog file, validates it against the catalog schema
// and the supported format version, and builds a Catalog from it.
func Load(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog file: %w", err)
	}

	if err := validateCatalogDoc(k.Raw()); err != nil {
		return nil, err
	}

	var doc catalogFile
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	if !semver.IsValid(doc.Version) {
		return nil, fmt.Errorf("catalog version %q is not a valid semver", doc.Version)
	}
	if semver.Major(doc.Version) != SupportedMajor {
		return nil, fmt.Errorf("catalog version %s: want major %s", doc.Version, SupportedMajor)
	}

	return New(doc.Languages, doc.Tutors)
}

// catalogSchema is the JSON schema for catalog documents. Field-level
// constraints (1–10 behavior scales, required ids) are enforced here so a
// bad catalog fails at load time, not at selection time.
const catalogSchema = `{
  "type": "object",
  "required": ["version", "languages", "tutors"],
  "properties": {
    "version": {"type": "string"},
    "languages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["code", "name"],
        "properties": {
          "code": {"type": "string", "minLength": 2},
          "name": {"type": "string", "minLength": 1},
          "nativeName": {"type": "string"},
          "region": {"type": "string"},
          "indigenous": {"type": "boolean"}
        }
      }
    },
    "tutors": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "personality", "specializations"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "personality": {
            "type": "string",
            "enum": ["friendly", "professional", "encouraging", "wise_elder", "peer_mentor"]
          },
          "specializations": {
            "type": "array",
            "items": {"type": "string"},
            "minItems": 1
          },
          "behavior": {
            "type": "object",
            "properties": {
              "patience": {"type": "integer", "minimum": 1, "maximum": 10},
              "encouragement": {"type": "integer", "minimum": 1, "maximum": 10},
              "culturalReferences": {"type": "integer", "minimum": 1, "maximum": 10},
              "complexityAdaptation": {"type": "boolean"}
            }
          }
        }
      }
    }
  }
}`

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

// validateCatalogDoc validates a parsed catalog document against catalogSchema.
func validateCatalogDoc(doc map[string]any) error {
	compileSchemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(catalogSchema), &parsed); err != nil {
			compileSchemaError = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://catalog.json", parsed); err != nil {
			compileSchemaError = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile("schema://catalog.json")
	})
	if compileSchemaError != nil {
		return compileSchemaError
	}

	// The jsonschema library expects plain JSON values. YAML decoding can
	// produce types like map[any]any, so round-trip through JSON first.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal catalog document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("parse catalog document: %w", err)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}
