package cli

import (
	"fmt"

	"todoform/internal/form"

	"github.com/spf13/cobra"
)

func newSubmitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate both lists (exits non-zero when either has empty values)",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _, err := openForm(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res := f.Submit()

			out := map[string]any{"data": res}
			if res.Saved {
				out["meta"] = map[string]any{"message": form.SuccessMessage}
				out["_hints"] = []string{"todoform summary"}
			} else {
				out["_hints"] = []string{"todoform rows list todo", "todoform rows list described"}
			}
			if err := writeOut(cmd, app, out); err != nil {
				return err
			}
			if !res.Saved {
				return writeErr(cmd, fmt.Errorf("%w: %w", errFormInvalid, res.Err()))
			}
			return nil
		},
	}
	return cmd
}
