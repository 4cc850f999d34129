package tui

import (
	"todoform/internal/form"
	"todoform/internal/logging"
	"todoform/internal/rows"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type targetKind int

const (
	targetField targetKind = iota
	targetAffordance
	targetAddRow
	targetSubmit
)

// target is one focusable element. row and field only apply to the kinds
// that live on a row.
type target struct {
	kind    targetKind
	section int
	row     int
	field   int
}

type formModel struct {
	form     *form.Form
	sections []form.Section
	log      *log.Logger

	keys  keyMap
	help  help.Model
	input textinput.Model
	focus target
	width int

	quitting bool
}

func newFormModel(f *form.Form, logger *log.Logger) formModel {
	if logger == nil {
		logger = logging.Discard()
	}
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 512

	m := formModel{
		form:     f,
		sections: f.Sections(),
		log:      logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    in,
		focus:    target{kind: targetField},
	}
	m.syncInput()
	return m
}

func (m formModel) Init() tea.Cmd { return textinput.Blink }

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.syncInput()
		return m, nil
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *formModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.submit()
	case key.Matches(msg, m.keys.Add):
		m.addRow(m.focus.section)
	case key.Matches(msg, m.keys.Remove):
		if m.onRow() && m.section().Affordance(m.focus.row) == rows.AffordanceDelete {
			m.removeRow(m.focus.section, m.focus.row)
		}
	case key.Matches(msg, m.keys.Next):
		m.move(1)
	case key.Matches(msg, m.keys.Prev):
		m.move(-1)
	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
	case key.Matches(msg, m.keys.Enter):
		m.activate()
	case key.Matches(msg, m.keys.Help) && !(m.focus.kind == targetField && msg.String() == "?"):
		m.help.ShowAll = !m.help.ShowAll
	case m.focus.kind == targetField:
		return m.updateInput(msg)
	}
	return nil
}

// updateInput feeds a key to the focused input and pushes any value change
// through the section, which persists it.
func (m *formModel) updateInput(msg tea.KeyMsg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		s := m.section()
		s.UpdateField(s.RowID(m.focus.row), s.Fields()[m.focus.field], v)
	}
	return cmd
}

func (m *formModel) activate() {
	switch m.focus.kind {
	case targetField:
		m.move(1)
	case targetAffordance:
		if m.section().Affordance(m.focus.row) == rows.AffordanceAdd {
			m.addRow(m.focus.section)
		} else {
			m.removeRow(m.focus.section, m.focus.row)
		}
	case targetAddRow:
		m.addRow(m.focus.section)
	case targetSubmit:
		m.submit()
	}
}

func (m *formModel) submit() {
	res := m.form.Submit()
	if !res.Saved {
		m.log.Debug("submit rejected", "err", res.Err())
	}
}

func (m *formModel) addRow(si int) {
	s := m.sections[si]
	if err := s.AddRow(); err != nil {
		m.log.Debug("add row rejected", "section", s.ID(), "err", err)
		return
	}
	m.focus = target{kind: targetField, section: si, row: s.Len() - 1}
	m.syncInput()
}

func (m *formModel) removeRow(si, row int) {
	s := m.sections[si]
	s.RemoveRow(s.RowID(row))
	if m.focus.section == si && m.focus.row >= s.Len() {
		m.focus.row = s.Len() - 1
	}
	m.syncInput()
}

// targets lists every focusable element in tab order.
func (m formModel) targets() []target {
	var out []target
	for si, s := range m.sections {
		for r := 0; r < s.Len(); r++ {
			for fi := range s.Fields() {
				out = append(out, target{kind: targetField, section: si, row: r, field: fi})
			}
			out = append(out, target{kind: targetAffordance, section: si, row: r})
		}
		out = append(out, target{kind: targetAddRow, section: si})
	}
	return append(out, target{kind: targetSubmit})
}

func (m *formModel) move(delta int) {
	ts := m.targets()
	i := 0
	for j, t := range ts {
		if t == m.focus {
			i = j
			break
		}
	}
	i = (i + delta + len(ts)) % len(ts)
	m.focus = ts[i]
	m.syncInput()
}

// moveRow steps to the same column of the neighbouring row, crossing into the
// adjacent section at either end. Non-row targets fall back to tab order.
func (m *formModel) moveRow(delta int) {
	if !m.onRow() {
		m.move(delta)
		return
	}
	si, row := m.focus.section, m.focus.row+delta
	switch {
	case row < 0:
		if si == 0 {
			return
		}
		si--
		row = m.sections[si].Len() - 1
	case row >= m.sections[si].Len():
		if si == len(m.sections)-1 {
			return
		}
		si++
		row = 0
	}
	m.focus.section, m.focus.row = si, row
	if n := len(m.sections[si].Fields()); m.focus.field >= n {
		m.focus.field = n - 1
	}
	m.syncInput()
}

func (m formModel) onRow() bool {
	return m.focus.kind == targetField || m.focus.kind == targetAffordance
}

func (m formModel) section() form.Section { return m.sections[m.focus.section] }

// syncInput loads the focused cell into the shared text input.
func (m *formModel) syncInput() {
	if m.focus.kind != targetField {
		m.input.Blur()
		return
	}
	s := m.section()
	field := s.Fields()[m.focus.field]
	m.input.Placeholder = form.Placeholder(field)
	m.input.Width = m.fieldWidth(len(s.Fields())) - 1
	m.input.SetValue(s.Value(m.focus.row, field))
	m.input.CursorEnd()
	m.input.Focus()
}

func (m formModel) fieldWidth(n int) int {
	w := m.width
	if w <= 0 {
		w = 80
	}
	fw := (w - 12 - 2*n) / max(n, 1)
	return min(max(fw, 12), 40)
}
