package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mach-hub-g1/edugamers-engine/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze --input learner.json",
	Short: "Build a learner profile from interaction history",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		in, err := readLearnerInput(inputPath)
		if err != nil {
			return err
		}

		eng, _, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		p, err := eng.Profiles.Analyze(in.LearnerID, in.History, in.Performance)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
			st, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			data, err := toMap(p)
			if err != nil {
				return fmt.Errorf("encode profile: %w", err)
			}
			if err := st.ProfileRepo().SaveSnapshot(cmd.Context(), p.ID, data); err != nil {
				return err
			}
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(p)
		}
		renderProfile(p)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("input", "", "Path to learner input JSON (required)")
	analyzeCmd.Flags().Bool("save", false, "Persist the profile snapshot to the local store")
	_ = analyzeCmd.MarkFlagRequired("input")
}
