package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mach-hub-g1/edugamers-engine/internal/profile"
	"github.com/mach-hub-g1/edugamers-engine/internal/risk"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC"))

	lowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22C55E"))

	mediumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F97316"))

	highStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F43F5E"))
)

// renderLine formats one "label: value" row.
func renderLine(label, value string) string {
	return labelStyle.Render(label+": ") + valueStyle.Render(value)
}

// renderLevel colors a risk level.
func renderLevel(l risk.Level) string {
	switch l {
	case risk.LevelHigh:
		return highStyle.Render(l.DisplayName())
	case risk.LevelMedium:
		return mediumStyle.Render(l.DisplayName())
	default:
		return lowStyle.Render(l.DisplayName())
	}
}

// renderProfile prints a human-readable profile summary.
func renderProfile(p *profile.LearnerProfile) {
	fmt.Println(titleStyle.Render("Learner profile: " + p.ID))

	langs := make([]string, len(p.PreferredLanguages))
	for i, l := range p.PreferredLanguages {
		langs[i] = l.Name
	}
	fmt.Println(renderLine("Languages", strings.Join(langs, ", ")))
	fmt.Println(renderLine("Style mix", fmt.Sprintf(
		"visual %.2f / auditory %.2f / kinesthetic %.2f / reading %.2f",
		p.StyleMix.Visual, p.StyleMix.Auditory, p.StyleMix.Kinesthetic, p.StyleMix.Reading)))
	fmt.Println(renderLine("Attention span", fmt.Sprintf("%d min", p.AttentionSpanMins)))
	fmt.Println(renderLine("Strengths", strings.Join(p.Strengths, ", ")))
	fmt.Println(renderLine("Challenges", strings.Join(p.Challenges, ", ")))
	fmt.Println(renderLine("Background", strings.Join(p.CulturalBackground, ", ")))
}

// renderAssessment prints a human-readable risk summary.
func renderAssessment(a *risk.Assessment) {
	fmt.Printf("%s  %s  %s\n",
		valueStyle.Render(a.LearnerID),
		renderLevel(a.Level),
		labelStyle.Render(strings.Join(a.Factors, ", ")))
}
