package cli

import (
	"fmt"
	"slices"

	"todoform/internal/form"

	"github.com/spf13/cobra"
)

func newRowsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rows",
		Short: "Edit the rows of one list (todo|described)",
	}
	cmd.AddCommand(newRowsListCmd(app))
	cmd.AddCommand(newRowsAddCmd(app))
	cmd.AddCommand(newRowsSetCmd(app))
	cmd.AddCommand(newRowsRmCmd(app))
	return cmd
}

// sectionView is the scriptable view of one list.
type sectionView struct {
	List        string   `json:"list" yaml:"list"`
	Name        string   `json:"name" yaml:"name"`
	Key         string   `json:"key" yaml:"key"`
	Fields      []string `json:"fields" yaml:"fields"`
	Rows        any      `json:"rows" yaml:"rows"`
	Affordances []string `json:"affordances" yaml:"affordances"`
	Message     string   `json:"message,omitempty" yaml:"message,omitempty"`
}

func viewSection(f *form.Form, s form.Section) sectionView {
	v := sectionView{
		List:    s.ID().String(),
		Name:    s.Name(),
		Fields:  s.Fields(),
		Message: s.Message(),
	}
	v.Key = storageKey(s.ID())
	if s.ID() == form.ListDescribed {
		v.Rows = f.Described.Records()
	} else {
		v.Rows = f.Todo.Records()
	}
	for i := 0; i < s.Len(); i++ {
		v.Affordances = append(v.Affordances, s.Affordance(i).String())
	}
	return v
}

// loadSection opens the form and resolves the <list> argument.
func loadSection(cmd *cobra.Command, app *App, list string) (*form.Form, form.Section, error) {
	id, err := form.ParseListID(list)
	if err != nil {
		return nil, nil, err
	}
	f, _, err := openForm(cmd.Context(), app)
	if err != nil {
		return nil, nil, err
	}
	s, err := f.Section(id)
	if err != nil {
		return nil, nil, err
	}
	return f, s, nil
}

func rowIndex(s form.Section, id string) int {
	for i := 0; i < s.Len(); i++ {
		if s.RowID(i) == id {
			return i
		}
	}
	return -1
}

func newRowsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <list>",
		Short: "List rows with their affordances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, s, err := loadSection(cmd, app, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			v := viewSection(f, s)
			meta := map[string]any{
				"count":     s.Len(),
				"completed": completedCount(f, s.ID()),
			}
			return writeOut(cmd, app, map[string]any{
				"data":   v,
				"meta":   meta,
				"_hints": []string{fmt.Sprintf("todoform rows set %s <row-id> <field> <value>", v.List)},
			})
		},
	}
	return cmd
}

func newRowsAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <list>",
		Short: "Append a blank row (rejected while any row has empty values)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, s, err := loadSection(cmd, app, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AddRow(); err != nil {
				return writeErr(cmd, err)
			}
			if err := f.WriteErr(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": viewSection(f, s),
				"meta": map[string]any{"rowId": s.RowID(s.Len() - 1)},
			})
		},
	}
	return cmd
}

func newRowsSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <list> <row-id> <field> <value>",
		Short: "Set one field of one row",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, s, err := loadSection(cmd, app, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			id, field, value := args[1], args[2], args[3]
			if !slices.Contains(s.Fields(), field) {
				return writeErr(cmd, unknownFieldError{list: s.Name(), field: field, fields: s.Fields()})
			}
			if rowIndex(s, id) < 0 {
				return writeErr(cmd, errNotFound("row", id))
			}
			s.UpdateField(id, field, value)
			if err := f.WriteErr(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": viewSection(f, s)})
		},
	}
	return cmd
}

func newRowsRmCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <list> <row-id>",
		Aliases: []string{"remove"},
		Short:   "Remove a row (the list always keeps at least one)",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, s, err := loadSection(cmd, app, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if rowIndex(s, args[1]) < 0 {
				return writeErr(cmd, errNotFound("row", args[1]))
			}
			s.RemoveRow(args[1])
			if err := f.WriteErr(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": viewSection(f, s)})
		},
	}
	return cmd
}

func completedCount(f *form.Form, id form.ListID) int {
	sum := f.Summary()
	if id == form.ListDescribed {
		return sum.Described.Total
	}
	return sum.Todo.Total
}
