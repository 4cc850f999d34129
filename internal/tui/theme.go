package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The form must stay readable on light and dark backgrounds, so colors are
// adaptive and faint text is only used on dark terminals.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorAccent     lipgloss.TerminalColor = ac("27", "62")
	colorAccentFg   lipgloss.TerminalColor = ac("255", "235")
	colorInputBg    lipgloss.TerminalColor = ac("254", "234")
	colorFocusBg    lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorError      lipgloss.TerminalColor = ac("160", "203")
	colorSuccess    lipgloss.TerminalColor = ac("28", "78")
	colorTableRule  lipgloss.TerminalColor = ac("250", "240")
	colorTableTitle lipgloss.TerminalColor = ac("235", "252")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

func styleSectionName() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Underline(true)
}

func styleInput(focused bool) lipgloss.Style {
	st := lipgloss.NewStyle().Background(colorInputBg)
	if focused {
		st = st.Background(colorFocusBg)
	}
	return st
}

func styleButton(focused bool) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 1)
	if focused {
		return st.Bold(true).Foreground(colorAccentFg).Background(colorAccent)
	}
	return st.Foreground(colorAccent)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

func styleSuccess() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI. Only
// NO_COLOR is honored; CLICOLOR handling in termenv.EnvColorProfile can
// disable colors in an interactive session.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color") && profile != termenv.TrueColor:
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference fixes background detection for terminals that don't
// report it. TODOFORM_TUI_THEME=light|dark wins, then the COLORFGBG hint.
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TODOFORM_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	// COLORFGBG is "fg;bg" (sometimes more segments); the last one is bg.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
