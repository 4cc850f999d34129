package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// EmptyTable is printed in place of rows when a table has none.
const EmptyTable = "No tasks yet."

// Table is a titled, numbered grid of text. The "#" column is implied.
type Table struct {
	Title   string     `json:"title" yaml:"title"`
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Total is the footer line shown under a table.
func (t Table) Total() string { return "Total: " + strconv.Itoa(len(t.Rows)) }

// Header returns the column headings including the leading "#".
func (t Table) Header() []string {
	return append([]string{"#"}, t.Columns...)
}

// Numbered returns the rows with their 1-based position prepended.
func (t Table) Numbered() [][]string {
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = append([]string{strconv.Itoa(i + 1)}, r...)
	}
	return out
}

// WriteMarkdown writes tables as GitHub-flavored markdown under an optional
// top-level heading.
func WriteMarkdown(w io.Writer, heading string, tables []Table) error {
	var b strings.Builder
	if heading = strings.TrimSpace(heading); heading != "" {
		fmt.Fprintf(&b, "# %s\n\n", heading)
	}
	for i, t := range tables {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", mdEscape(t.Title))
		if len(t.Rows) == 0 {
			b.WriteString("_" + EmptyTable + "_\n\n")
		} else {
			writeMDRow(&b, t.Header())
			seps := make([]string, len(t.Columns)+1)
			for j := range seps {
				seps[j] = "---"
			}
			writeMDRow(&b, seps)
			for _, r := range t.Numbered() {
				writeMDRow(&b, r)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "**%s**\n", t.Total())
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeMDRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(mdEscape(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
