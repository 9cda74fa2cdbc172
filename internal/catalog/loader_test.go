package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalogYAML = `version: v1.2.0
languages:
  - code: en
    name: English
    region: Global
  - code: qu
    name: Quechua
    region: Andes
    indigenous: true
tutors:
  - id: tester-en
    name: Ms. Tester
    personality: friendly
    specializations: [math]
    behavior:
      patience: 5
      encouragement: 5
      culturalReferences: 5
      complexityAdaptation: true
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidCatalog(t *testing.T) {
	cat, err := Load(writeCatalog(t, validCatalogYAML))
	require.NoError(t, err)

	qu, ok := cat.LanguageByCode("qu")
	require.True(t, ok)
	assert.True(t, qu.Indigenous)
	assert.Equal(t, "Andes", qu.Region)

	tutor, ok := cat.TutorByID("tester-en")
	require.True(t, ok)
	assert.Equal(t, PersonalityFriendly, tutor.Personality)
	assert.True(t, tutor.Behavior.ComplexityAdaptation)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidVersion(t *testing.T) {
	doc := `version: not-semver
languages: []
tutors: []
`
	_, err := Load(writeCatalog(t, doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "semver")
}

func TestLoad_UnsupportedMajor(t *testing.T) {
	doc := `version: v2.0.0
languages: []
tutors: []
`
	_, err := Load(writeCatalog(t, doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "major")
}

func TestLoad_SchemaRejectsMissingTutorID(t *testing.T) {
	doc := `version: v1.0.0
languages: []
tutors:
  - name: No ID
    personality: friendly
    specializations: [math]
`
	_, err := Load(writeCatalog(t, doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestLoad_SchemaRejectsBadPersonality(t *testing.T) {
	doc := `version: v1.0.0
languages: []
tutors:
  - id: t1
    name: Bad Personality
    personality: sarcastic
    specializations: [math]
`
	_, err := Load(writeCatalog(t, doc))
	assert.Error(t, err)
}

func TestLoad_SchemaRejectsBehaviorOutOfScale(t *testing.T) {
	doc := `version: v1.0.0
languages: []
tutors:
  - id: t1
    name: Too Patient
    personality: friendly
    specializations: [math]
    behavior:
      patience: 11
`
	_, err := Load(writeCatalog(t, doc))
	assert.Error(t, err)
}
