package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crediflow/brokerdesk/internal/borrower"
)

var (
	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5B8DEF")).
			Padding(0, 1)
	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Padding(0, 1)
	cardSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("#5B8DEF")).
				Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Padding(0, 0, 1, 0)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// stageLabels maps stage keys to the tab captions.
var stageLabels = map[string]string{
	borrower.StageNew:      "New",
	borrower.StageReview:   "Review",
	borrower.StageApproved: "Approved",
}

func (a *App) renderPipelinePanel(width int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("Borrower Pipeline")

	counts := borrower.StageCounts(a.pipeline.Borrowers(), a.sanitised)
	tabs := make([]string, 0, len(borrower.Stages))
	for i, stage := range borrower.Stages {
		label := fmt.Sprintf("%s (%d)", stageLabels[stage], counts[stage])
		if i == a.activeStage {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	visible := a.visibleBorrowers()
	var cards []string
	if len(visible) == 0 {
		cards = append(cards, mutedStyle.Render("No borrowers in this stage"))
	}
	selectedID := ""
	if sel, ok := a.pipeline.Selected(); ok {
		selectedID = sel.ID
	}
	for i, v := range visible {
		cards = append(cards, renderBorrowerCard(v, i == a.cursor, v.ID == selectedID, width))
	}

	mode := "F-SANITISED ACTIVE"
	if !a.sanitised {
		mode = "STANDARD MODE"
	}
	modeLine := mutedStyle.Render(mode + "  (f to toggle)")
	hint := mutedStyle.Render("↑/↓ move · enter select · 1/2/3 tabs · r refresh")

	sections := []string{title, tabRow, ""}
	sections = append(sections, cards...)
	sections = append(sections, "", modeLine, hint)
	return lipgloss.NewStyle().Width(maxInt(24, width)).Render(joinLines(sections))
}

// renderBorrowerCard draws one pipeline row: name and amount, then loan
// type and status badge. The cursor highlight and the selected marker are
// independent - a selected borrower stays marked while the cursor moves.
func renderBorrowerCard(v borrower.View, cursor, selected bool, width int) string {
	marker := " "
	if selected {
		marker = "▸"
	}
	line1 := fmt.Sprintf("%s %s  %s", marker, v.Name, formatAmount(v.Amount))
	line2 := fmt.Sprintf("  %s  %s", v.LoanType, statusBadge(v.Status))
	content := line1 + "\n" + line2
	if cursor {
		return cardSelectedStyle.Width(maxInt(20, width-2)).Render(content)
	}
	return cardStyle.Width(maxInt(20, width)).Render(content)
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
