package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/crediflow/brokerdesk/internal/borrower"
)

var (
	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#5B8DEF"))
	flagTypeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E06C75"))
	riskTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E5C07B"))
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98C379"))
)

func (a *App) renderDetailPanel(width int) string {
	sel, ok := a.pipeline.Selected()
	if !ok {
		return mutedStyle.Render("Select a borrower to view details")
	}
	if a.loadingDetail {
		return a.spin.View() + " " + mutedStyle.Render("Loading details...")
	}

	lines := []string{
		sectionTitleStyle.Render(sel.Name) + "  " + statusBadge(sel.Status),
	}
	if sel.Email != "" {
		lines = append(lines, mutedStyle.Render(sel.Email))
	}
	if sel.Phone != "" {
		lines = append(lines, mutedStyle.Render(sel.Phone))
	}
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(formatAmount(sel.Amount)), "")

	flags := borrower.DeriveFlags(sel)
	lines = append(lines, a.renderFlagSection(flags)...)

	if sel.HasDetail {
		lines = append(lines, "", a.renderProfileSection(sel))
	}

	if len(flags) > 0 || sel.RiskSignal != "" {
		lines = append(lines, "", a.renderRiskSignal(sel))
	}

	lines = append(lines, "", a.renderActions())
	return lipgloss.NewStyle().Width(maxInt(24, width)).Render(joinLines(lines))
}

// renderFlagSection is the AI Explainability accordion. Flags are derived
// fresh on every render; nothing here is cached.
func (a *App) renderFlagSection(flags []borrower.Flag) []string {
	chevron := "▸"
	if a.flagsOpen {
		chevron = "▾"
	}
	header := sectionTitleStyle.Render(fmt.Sprintf("%s AI Explainability", chevron))
	if len(flags) > 0 {
		header += "  " + badgeDanger.Render(fmt.Sprintf("%d issues", len(flags)))
	}
	lines := []string{header}
	if !a.flagsOpen {
		return lines
	}

	if len(flags) == 0 {
		lines = append(lines, okStyle.Render("  No issues detected"))
		return lines
	}
	for _, f := range flags {
		lines = append(lines,
			fmt.Sprintf("  ⚠ %s %s", flagTypeStyle.Render(f.Type), mutedStyle.Render("("+string(f.Severity)+")")),
			mutedStyle.Render("    "+f.Description),
		)
	}
	return lines
}

func (a *App) renderProfileSection(v borrower.View) string {
	rows := []string{
		sectionTitleStyle.Render("Loan Summary"),
		fmt.Sprintf("  Employment      %s", v.Employment),
		fmt.Sprintf("  Income          %s", formatAmount(v.Income)),
		fmt.Sprintf("  Existing Loan   %s", formatAmount(v.ExistingLoan)),
		fmt.Sprintf("  Credit Score    %d", v.CreditScore),
		fmt.Sprintf("  Source of Funds %s", v.SourceOfFunds),
		fmt.Sprintf("  DTI Ratio       %d%%", v.DebtToIncomeRatio),
	}
	return joinLines(rows)
}

// renderRiskSignal shows the free-text risk signal callout. When flags exist
// but the record carries no signal text, a default notice is shown instead.
func (a *App) renderRiskSignal(v borrower.View) string {
	signal := v.RiskSignal
	if signal == "" {
		signal = "This application requires additional review due to detected risk factors."
	}
	return riskTitleStyle.Render("⚠ Risk Signal Detected") + "\n" + mutedStyle.Render("  "+signal)
}

func (a *App) renderActions() string {
	if a.actionPending {
		return a.spin.View() + " " + mutedStyle.Render("Action in progress...")
	}
	return sectionTitleStyle.Render("Actions") + "\n" +
		mutedStyle.Render("  d Request Documents · v Send to Valuer · a Approve\n  e Escalate to Credit Committee")
}
