package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mach-hub-g1/edugamers-engine/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [file]",
	Short: "Show the active catalog, or validate a catalog file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		if len(args) == 1 {
			var err error
			cat, err = catalog.Load(args[0])
			if err != nil {
				return fmt.Errorf("catalog invalid: %w", err)
			}
			fmt.Println(titleStyle.Render("Catalog OK: " + args[0]))
		} else {
			fmt.Println(titleStyle.Render("Built-in catalog"))
		}

		fmt.Println(renderLine("Languages", fmt.Sprintf("%d (%d indigenous)",
			len(cat.Languages()), len(cat.IndigenousLanguages()))))
		fmt.Println(renderLine("Tutors", fmt.Sprintf("%d", len(cat.Tutors()))))
		for _, t := range cat.Tutors() {
			fmt.Println(renderLine("  "+t.ID, fmt.Sprintf("%s — %s (%s)",
				t.Name, t.Personality.DisplayName(), t.Language.Name)))
		}
		return nil
	},
}
