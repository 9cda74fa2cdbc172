package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor --input learner.json --subject math",
	Short: "Select the best-matching tutor persona for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		subject, _ := cmd.Flags().GetString("subject")
		culture, _ := cmd.Flags().GetString("culture")

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

		explain, _ := cmd.Flags().GetBool("explain")
		if explain {
			tutor, breakdowns, err := eng.Tutors.Explain(p, subject, culture)
			if err != nil {
				return fmt.Errorf("select tutor: %w", err)
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(map[string]any{"tutor": tutor, "scores": breakdowns})
			}
			fmt.Println(titleStyle.Render("Selected tutor: " + tutor.Name))
			for _, b := range breakdowns {
				fmt.Println(renderLine(b.TutorID, fmt.Sprintf("%d points", b.Total)))
			}
			return nil
		}

		tutor, err := eng.Tutors.Select(p, subject, culture)
		if err != nil {
			return fmt.Errorf("select tutor: %w", err)
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(tutor)
		}
		fmt.Println(titleStyle.Render("Selected tutor: " + tutor.Name))
		fmt.Println(renderLine("Personality", tutor.Personality.DisplayName()))
		fmt.Println(renderLine("Language", tutor.Language.Name))
		fmt.Println(renderLine("Background", tutor.CulturalBackground))
		return nil
	},
}

func init() {
	tutorCmd.Flags().String("input", "", "Path to learner input JSON (required)")
	tutorCmd.Flags().String("subject", "", "Subject to teach (required)")
	tutorCmd.Flags().String("culture", "", "Optional cultural preference tag")
	tutorCmd.Flags().Bool("explain", false, "Show the per-tutor score breakdown")
	_ = tutorCmd.MarkFlagRequired("input")
	_ = tutorCmd.MarkFlagRequired("subject")
}
