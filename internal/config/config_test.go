package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 40, cfg.Tutor.LanguageMatch)
	assert.Equal(t, 30, cfg.Tutor.SubjectMatch)
	assert.Equal(t, 20, cfg.Tutor.CulturalMatch)
	assert.Equal(t, 10, cfg.Tutor.StyleCompat)

	assert.Equal(t, 5, cfg.Risk.MinInteractions)
	assert.Equal(t, 3, cfg.Risk.HighFactorCount)
	assert.Equal(t, 2, cfg.Risk.MediumFactorCount)

	assert.Equal(t, 0.8, cfg.Path.AdaptationFactor)
	assert.Equal(t, 10, cfg.Path.MinSessionMinutes)

	assert.Equal(t, 6, cfg.Content.MinAge)
	assert.Equal(t, 18, cfg.Content.MaxAge)

	assert.Empty(t, cfg.CatalogPath)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_FileOverrides(t *testing.T) {
	doc := `risk:
  minInteractions: 7
tutor:
  languageMatch: 50
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Risk.MinInteractions)
	assert.Equal(t, 50, cfg.Tutor.LanguageMatch)
	// Untouched fields keep their defaults.
	assert.Equal(t, 30, cfg.Tutor.SubjectMatch)
	assert.Equal(t, 3, cfg.Risk.HighFactorCount)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EDUGAMERS_RISK_MININTERACTIONS", "9")
	t.Setenv("EDUGAMERS_CATALOGPATH", "/tmp/cat.yaml")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Risk.MinInteractions)
	assert.Equal(t, "/tmp/cat.yaml", cfg.CatalogPath)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	doc := `risk:
  minInteractions: 7
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	t.Setenv("EDUGAMERS_RISK_MININTERACTIONS", "9")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Risk.MinInteractions)
}
