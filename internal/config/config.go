package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mach-hub-g1/edugamers-engine/internal/cultural"
	"github.com/mach-hub-g1/edugamers-engine/internal/path"
	"github.com/mach-hub-g1/edugamers-engine/internal/profile"
	"github.com/mach-hub-g1/edugamers-engine/internal/risk"
	"github.com/mach-hub-g1/edugamers-engine/internal/tutorselect"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// EDUGAMERS_RISK_MININTERACTIONS=4.
const EnvPrefix = "EDUGAMERS_"

// Config aggregates every tunable constant in the engine so deployments
// can adjust scoring and thresholds without code changes.
type Config struct {
	Profile profile.Config      `koanf:"profile"`
	Tutor   tutorselect.Weights `koanf:"tutor"`
	Path    path.Config         `koanf:"path"`
	Risk    risk.Config         `koanf:"risk"`
	Content cultural.Config     `koanf:"content"`

	// CatalogPath optionally points at a YAML catalog file. Empty means
	// the built-in seed catalog.
	CatalogPath string `koanf:"catalogPath"`
}

// Default returns the engine's standard constants.
func Default() Config {
	return Config{
		Profile: profile.DefaultConfig(),
		Tutor:   tutorselect.DefaultWeights(),
		Path:    path.DefaultConfig(),
		Risk:    risk.DefaultConfig(),
		Content: cultural.DefaultConfig(),
	}
}

// Load builds a Config from defaults, an optional YAML file and
// EDUGAMERS_* environment overrides, in that precedence order.
func Load(filePath string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if filePath != "" {
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return cfg, fmt.Errorf("load env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// envKey maps EDUGAMERS_RISK_MININTERACTIONS to risk.mininteractions.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "_", ".")
}
