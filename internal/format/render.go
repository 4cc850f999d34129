package format

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// DefaultRenderStyle is the glamour standard style used when none is given.
const DefaultRenderStyle = "dark"

var (
	renderersMu sync.Mutex
	// Keyed by style + wrap width. WithAutoStyle is avoided because it can block
	// on terminal background queries.
	renderers = map[string]*glamour.TermRenderer{}
)

// RenderMarkdown renders md for a terminal with one of glamour's standard
// styles (dark, light, notty, ascii, ...).
func RenderMarkdown(md, style string, width int) (string, error) {
	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" {
		style = DefaultRenderStyle
	}
	if width < 20 {
		width = 20
	}
	key := fmt.Sprintf("%s:%d", style, width)

	renderersMu.Lock()
	r := renderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			renderersMu.Unlock()
			return "", fmt.Errorf("markdown renderer: %w", err)
		}
		renderers[key] = rr
		r = rr
	}
	renderersMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
