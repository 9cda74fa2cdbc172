package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mach-hub-g1/edugamers-engine/internal/profile"
	"github.com/mach-hub-g1/edugamers-engine/internal/store"
)

var riskCmd = &cobra.Command{
	Use:   "risk --input learners.json",
	Short: "Classify a batch of learners by disengagement risk",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		batch, err := readBatchInput(inputPath)
		if err != nil {
			return err
		}

		eng, _, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		profiles := make([]*profile.LearnerProfile, len(batch))
		histories := make([][]profile.InteractionRecord, len(batch))
		performance := make([][]profile.PerformanceRecord, len(batch))
		for i, in := range batch {
			p, err := eng.Profiles.Analyze(in.LearnerID, in.History, in.Performance)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", in.LearnerID, err)
			}
			profiles[i] = p
			histories[i] = in.History
			performance[i] = in.Performance
		}

		assessments, err := eng.Risk.PredictBatch(profiles, histories, performance)
		if err != nil {
			return fmt.Errorf("predict: %w", err)
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

			repo := st.AssessmentRepo()
			for _, a := range assessments {
				data, err := toMap(a)
				if err != nil {
					return fmt.Errorf("encode assessment: %w", err)
				}
				err = repo.AppendRisk(cmd.Context(), store.RiskEventData{
					LearnerID: a.LearnerID,
					Level:     string(a.Level),
					Factors:   a.Factors,
					Data:      data,
				})
				if err != nil {
					return err
				}
			}
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(assessments)
		}
		fmt.Println(titleStyle.Render(fmt.Sprintf("Risk assessment (%d learners)", len(assessments))))
		for _, a := range assessments {
			renderAssessment(a)
		}
		return nil
	},
}

func init() {
	riskCmd.Flags().String("input", "", "Path to batch input JSON array (required)")
	riskCmd.Flags().Bool("save", false, "Persist assessments to the local store")
	_ = riskCmd.MarkFlagRequired("input")
}
