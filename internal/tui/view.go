package tui

import (
	"strings"

	"todoform/internal/form"
	"todoform/internal/rows"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	formTitle   = "Add FORM"
	submitLabel = "ADD FORM"
)

func (m formModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle().Render(formTitle))
	b.WriteString("\n\n")

	for si, s := range m.sections {
		m.viewSection(&b, si, s)
		b.WriteString("\n")
	}

	b.WriteString(styleButton(m.focus.kind == targetSubmit).Render(submitLabel))
	b.WriteString("\n")
	if m.form.Saved() {
		b.WriteString(styleSuccess().Render(form.SuccessMessage))
		b.WriteString("\n")
	}
	if err := m.form.ReadErr(); err != nil {
		b.WriteString(styleError().Render("Stored draft unreadable: " + err.Error()))
		b.WriteString("\n")
	}
	if err := m.form.WriteErr(); err != nil {
		b.WriteString(styleError().Render("Draft not stored: " + err.Error()))
		b.WriteString("\n")
	}

	for _, t := range m.form.Summary().Tables() {
		b.WriteString("\n")
		b.WriteString(renderTable(t, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m formModel) viewSection(b *strings.Builder, si int, s form.Section) {
	b.WriteString(styleSectionName().Render(s.Name()))
	b.WriteString("\n")

	fields := s.Fields()
	fw := m.fieldWidth(len(fields))
	for r := 0; r < s.Len(); r++ {
		onRow := m.onRow() && m.focus.section == si && m.focus.row == r
		cursor := " "
		if onRow {
			cursor = glyphCursor()
		}

		cells := []string{cursor + " "}
		for fi, field := range fields {
			focused := onRow && m.focus.kind == targetField && m.focus.field == fi
			cells = append(cells, m.viewCell(s.Value(r, field), field, fw, focused), " ")
		}
		glyph := glyphDelete()
		if s.Affordance(r) == rows.AffordanceAdd {
			glyph = glyphAdd()
		}
		cells = append(cells, styleButton(onRow && m.focus.kind == targetAffordance).Render(glyph))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	addFocused := m.focus.kind == targetAddRow && m.focus.section == si
	b.WriteString("  ")
	b.WriteString(styleButton(addFocused).Render(form.AddLabel(s)))
	b.WriteString("\n")
	if msg := s.Message(); msg != "" {
		b.WriteString("  ")
		b.WriteString(styleError().Render(msg))
		b.WriteString("\n")
	}
}

func (m formModel) viewCell(value, field string, width int, focused bool) string {
	st := styleInput(focused).Width(width).MaxWidth(width)
	if focused {
		return st.Render(m.input.View())
	}
	if value == "" {
		return st.Render(styleMuted().Render(form.Placeholder(field)))
	}
	return st.Render(xansi.Truncate(value, width-1, glyphEllipsis()))
}
