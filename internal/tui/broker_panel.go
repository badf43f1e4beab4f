package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Onboarding progress is positional: the source transmits no per-step
// status, so steps before this index render as done and the index itself as
// in progress.
const onboardingCurrentStep = 3

func (a *App) renderBrokerPanel(width int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("Broker Overview")

	if a.broker.Loading() {
		return joinLines([]string{title, a.spin.View() + " " + mutedStyle.Render("Loading broker info...")})
	}
	b, ok := a.broker.Broker()
	if !ok {
		return joinLines([]string{title, mutedStyle.Render("Broker info unavailable")})
	}

	stats := fmt.Sprintf("%s deals · %s approval · %s pending",
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", b.Deals)),
		okStyle.Render(b.ApprovalRate),
		badgeWarning.Render(formatAmount(b.Pending)),
	)

	lines := []string{
		title,
		lipgloss.NewStyle().Bold(true).Render(b.Name),
		stats,
		"",
		sectionTitleStyle.Render("Onboarding Workflow"),
	}

	for i, step := range a.broker.Steps() {
		marker := "○"
		style := mutedStyle
		switch {
		case i < onboardingCurrentStep:
			marker = "✓"
			style = okStyle
		case i == onboardingCurrentStep:
			marker = "◐"
			style = badgeWarning
		}
		lines = append(lines, style.Render(fmt.Sprintf("  %s %d. %s", marker, i+1, step)))
	}

	lines = append(lines, "", sectionTitleStyle.Render("AI Assistant"))
	if a.assistantOn {
		lines = append(lines, okStyle.Render("  E Ardsassist: on (t to toggle)"))
		lines = append(lines, mutedStyle.Render("  Providing real-time recommendations."))
	} else {
		lines = append(lines, mutedStyle.Render("  E Ardsassist: off (t to toggle)"))
	}

	return lipgloss.NewStyle().Width(maxInt(24, width)).Render(joinLines(lines))
}
