package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"todoform/internal/form"
	"todoform/internal/format"

	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var (
		out    string
		render bool
		style  string
		width  int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the completed rows of both lists",
		Long: strings.TrimSpace(`
Shows the completed rows of both lists. Besides the structured formats
(json|edn|yaml), --format accepts markdown (optionally rendered for the
terminal with --render) and pdf (requires --out).
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _, err := openForm(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			sum := f.Summary()

			w := cmd.OutOrStdout()
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return writeErr(cmd, err)
				}
				defer file.Close()
				w = file
			}

			switch strings.ToLower(strings.TrimSpace(app.Format)) {
			case "markdown", "md":
				err = writeMarkdownSummary(w, sum, render, style, width)
			case "pdf":
				if out == "" {
					return writeErr(cmd, errors.New("--format pdf requires --out <file>"))
				}
				err = format.WritePDF(w, form.SummaryHeading, sum.Tables())
			default:
				err = format.Write(w, map[string]any{
					"data": sum,
					"meta": map[string]any{"todo": sum.Todo.Total, "described": sum.Described.Total},
				}, app.Format, app.PrettyJSON)
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			if out != "" {
				app.log.Info("summary written", "path", out, "format", app.Format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&render, "render", false, "Render markdown for the terminal")
	cmd.Flags().StringVar(&style, "style", format.DefaultRenderStyle, "Render style (dark|light|notty|ascii|...)")
	cmd.Flags().IntVar(&width, "width", 80, "Render wrap width")
	return cmd
}

func writeMarkdownSummary(w io.Writer, sum form.Summary, render bool, style string, width int) error {
	if !render {
		return format.WriteMarkdown(w, form.SummaryHeading, sum.Tables())
	}
	var md bytes.Buffer
	if err := format.WriteMarkdown(&md, form.SummaryHeading, sum.Tables()); err != nil {
		return err
	}
	s, err := format.RenderMarkdown(md.String(), style, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
