package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent  = lipgloss.Color("#2196F3")
	muted   = lipgloss.Color("#6B7280")
	warning = lipgloss.Color("#FFC107")
	danger  = lipgloss.Color("#E53935")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted)

	warningBoxStyle = lipgloss.NewStyle().
			Foreground(warning).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(danger).
			Padding(0, 1)
)

// renderTable lays out rows under headers with right-aligned numeric columns.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = lipgloss.NewStyle().Width(widths[i]).Align(lipgloss.Right).Render(cell)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(parts, "  ")...)
	}

	var sb strings.Builder
	sb.WriteString(sectionStyle.Render(line(headers)))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(line(row))
		sb.WriteString("\n")
	}
	return sb.String()
}

func joinWithGap(parts []string, gap string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, p)
	}
	return out
}
