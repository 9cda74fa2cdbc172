package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mach-hub-g1/edugamers-engine/internal/store"
)

var pathCmd = &cobra.Command{
	Use:   "path --input learner.json --subject math --target 5",
	Short: "Generate an adaptive learning path for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		subject, _ := cmd.Flags().GetString("subject")
		target, _ := cmd.Flags().GetInt("target")

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

		lp, err := eng.Paths.Generate(p, subject, target)
		if err != nil {
			return fmt.Errorf("generate path: %w", err)
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

			data, err := toMap(lp)
			if err != nil {
				return fmt.Errorf("encode path: %w", err)
			}
			err = st.AssessmentRepo().AppendPath(cmd.Context(), store.PathEventData{
				LearnerID:  lp.LearnerID,
				Subject:    lp.Subject,
				Difficulty: lp.Difficulty,
				Data:       data,
			})
			if err != nil {
				return err
			}
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(lp)
		}
		fmt.Println(titleStyle.Render("Learning path: " + lp.Subject))
		fmt.Println(renderLine("Current module", lp.CurrentModule))
		fmt.Println(renderLine("Next module", lp.NextModule))
		fmt.Println(renderLine("Difficulty", fmt.Sprintf("%d", lp.Difficulty)))
		fmt.Println(renderLine("Estimated time", fmt.Sprintf("%d min", lp.EstimatedMinutes)))
		fmt.Println(renderLine("Local example", lp.Cultural.LocalExample))
		return nil
	},
}

func init() {
	pathCmd.Flags().String("input", "", "Path to learner input JSON (required)")
	pathCmd.Flags().String("subject", "", "Subject for the path (required)")
	pathCmd.Flags().Int("target", 10, "Target mastery level")
	pathCmd.Flags().Bool("save", false, "Persist the generated path to the local store")
	_ = pathCmd.MarkFlagRequired("input")
	_ = pathCmd.MarkFlagRequired("subject")
}
