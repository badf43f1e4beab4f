package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	badgeOutline = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	badgeWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))
	badgeSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#98C379"))
	badgeDanger  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E06C75"))
)

// formatAmount renders a currency amount the way the dashboard shows loans:
// USD, no decimals, comma grouping ($300,000).
func formatAmount(amount float64) string {
	negative := amount < 0
	n := int64(math.Round(math.Abs(amount)))
	digits := fmt.Sprintf("%d", n)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if negative {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// statusBadge colors a status label the way the reviewed UI varies badge
// styles per stage.
func statusBadge(status string) string {
	label := "[" + status + "]"
	switch strings.ToLower(status) {
	case "new", "renew":
		return badgeOutline.Render(label)
	case "review":
		return badgeWarning.Render(label)
	case "approved":
		return badgeSuccess.Render(label)
	default:
		return label
	}
}
