package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mach-hub-g1/edugamers-engine/internal/catalog"
	"github.com/mach-hub-g1/edugamers-engine/internal/config"
	"github.com/mach-hub-g1/edugamers-engine/internal/engine"
	"github.com/mach-hub-g1/edugamers-engine/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "edugamers-engine",
	Short: "Adaptive personalization and risk-prediction engine",
	Long: "EduGamers engine — builds learner profiles from interaction history, " +
		"matches tutor personas, generates culturally-contextualized learning paths " +
		"and classifies disengagement risk.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to engine config YAML (defaults apply when unset)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUGAMERS_DB env var)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit raw JSON instead of formatted output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(tutorCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(riskCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildEngine loads config (and the catalog it points at) and constructs
// the engine with a development logger.
func buildEngine(cmd *cobra.Command) (*engine.Engine, config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("load config: %w", err)
	}

	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, cfg, fmt.Errorf("load catalog: %w", err)
		}
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, cfg, fmt.Errorf("build logger: %w", err)
	}

	return engine.New(cfg, cat, log), cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then EDUGAMERS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
