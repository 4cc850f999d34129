package tui

import (
	"strings"

	"todoform/internal/format"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const numColWidth = 4

// renderTable draws one summary table within width columns.
func renderTable(t format.Table, width int) string {
	if width <= 0 {
		width = 80
	}
	colW := width - numColWidth - 2
	if n := len(t.Columns); n > 0 {
		colW /= n
	}
	colW = min(max(colW, 8), 48)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorTableTitle).Render(t.Title))
	b.WriteString("\n")

	if len(t.Rows) == 0 {
		b.WriteString(styleMuted().Render(format.EmptyTable))
		b.WriteString("\n")
	} else {
		header := tableRow(t.Header(), colW, lipgloss.NewStyle().Bold(true))
		b.WriteString(header)
		b.WriteString("\n")
		rule := strings.Repeat(glyphHRule(), lipgloss.Width(header))
		b.WriteString(lipgloss.NewStyle().Foreground(colorTableRule).Render(rule))
		b.WriteString("\n")
		for _, r := range t.Numbered() {
			b.WriteString(tableRow(r, colW, lipgloss.NewStyle()))
			b.WriteString("\n")
		}
	}
	b.WriteString(styleMuted().Render(t.Total()))
	return b.String()
}

func tableRow(cells []string, colW int, st lipgloss.Style) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		w := colW
		if i == 0 {
			w = numColWidth
		}
		out[i] = st.Width(w).Render(xansi.Truncate(c, w-1, glyphEllipsis()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}
