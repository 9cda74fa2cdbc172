// Package engine wires the personalization components behind one facade.
// Every component is a pure function over its inputs and the read-only
// catalogs, so a single Engine is safe for arbitrary concurrent use.
package engine

import (
	"go.uber.org/zap"

	"github.com/mach-hub-g1/edugamers-engine/internal/catalog"
	"github.com/mach-hub-g1/edugamers-engine/internal/config"
	"github.com/mach-hub-g1/edugamers-engine/internal/cultural"
	"github.com/mach-hub-g1/edugamers-engine/internal/path"
	"github.com/mach-hub-g1/edugamers-engine/internal/profile"
	"github.com/mach-hub-g1/edugamers-engine/internal/risk"
	"github.com/mach-hub-g1/edugamers-engine/internal/tutorselect"
)

// Engine bundles the personalization and risk-prediction components over
// a shared catalog and configuration.
type Engine struct {
	cat *catalog.Catalog

	Profiles *profile.Analyzer
	Tutors   *tutorselect.Selector
	Paths    *path.Generator
	Risk     *risk.Predictor
	Content  *cultural.Selector
}

// New constructs an engine. A nil catalog selects the built-in seed
// catalog; a nil logger disables logging.
func New(cfg config.Config, cat *catalog.Catalog, log *zap.Logger) *Engine {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Engine{
		cat:      cat,
		Profiles: profile.NewAnalyzer(cfg.Profile, cat, log),
		Tutors:   tutorselect.NewSelector(cfg.Tutor, cat),
		Paths:    path.NewGenerator(cfg.Path),
		Risk:     risk.NewPredictor(cfg.Risk),
		Content:  cultural.NewSelector(cfg.Content),
	}
}

// Catalog returns the engine's read-only catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}
