package cli

import (
	"todoform/internal/form"
	"todoform/internal/model"

	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset [list]",
		Short: "Clear one list (or both); the next session starts with a blank row",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := []string{model.KeyTodoList, model.KeyTodoWithDescription}
			if len(args) == 1 {
				id, err := form.ParseListID(args[0])
				if err != nil {
					return writeErr(cmd, err)
				}
				keys = []string{storageKey(id)}
			}

			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			for _, k := range keys {
				if err := s.Delete(cmd.Context(), k); err != nil {
					return writeErr(cmd, err)
				}
			}
			app.log.Info("form reset", "keys", keys)
			return writeOut(cmd, app, map[string]any{
				"data":   map[string]any{"cleared": keys},
				"_hints": []string{"todoform rows list todo"},
			})
		},
	}
	return cmd
}

func storageKey(id form.ListID) string {
	if id == form.ListDescribed {
		return model.KeyTodoWithDescription
	}
	return model.KeyTodoList
}
