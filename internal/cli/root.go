package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"todoform/internal/form"
	"todoform/internal/format"
	"todoform/internal/logging"
	"todoform/internal/persist"
	"todoform/internal/store"
	"todoform/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
	LogLevel   string
	// Ephemeral keeps the form in memory; nothing is read from or written to disk.
	Ephemeral bool

	cfg *store.Config
	log *log.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todoform",
		Short:        "Two-list todo form (TUI + scriptable CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Edit the form interactively
  todoform

  # Scriptable edits
  todoform rows list todo
  todoform rows set todo <row-id> task "Walk the dog"
  todoform rows add described

  # Validate both lists like the ADD FORM button
  todoform submit

  # Print what has been filled in
  todoform summary --format markdown --render
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := store.LoadConfig()
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		if app.Format == "" {
			app.Format = cfg.Format
		}
		if app.LogLevel == "" {
			app.LogLevel = cfg.LogLevel
		}
		l, err := logging.New(cmd.ErrOrStderr(), logging.Options{Level: app.LogLevel})
		if err != nil {
			return writeErr(cmd, err)
		}
		app.log = l
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TODOFORM_DIR", ""), "Path to the data dir (overrides config and discovery)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TODOFORM_FORMAT", ""), "Output format (json|edn|yaml; summary also takes markdown|pdf)")
	cmd.PersistentFlags().BoolVar(&app.Ephemeral, "ephemeral", false, "Keep the form in memory only (nothing is stored)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("TODOFORM_LOG_LEVEL", ""), "Log level (debug|info|warn|error)")

	cmd.AddCommand(newRowsCmd(app))
	cmd.AddCommand(newSubmitCmd(app))
	cmd.AddCommand(newSummaryCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newResetCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	// The alt screen owns stdout/stderr, so the session logs to a file.
	l, closer, err := logging.OpenFile(app.cfg.LogFile, logging.Options{Level: app.LogLevel})
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closer.Close()
	app.log = l

	kv, _, err := formKV(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	f := form.Open(cmd.Context(), kv, form.WithLogger(l))
	return tui.Run(f, tui.Options{Glyphs: app.cfg.TUI.Glyphs, Logger: l})
}

func resolveDir(app *App) (string, error) {
	if app.Dir != "" {
		return app.Dir, nil
	}
	d, err := store.ResolveDir("", app.cfg)
	if err != nil {
		return "", err
	}
	app.Dir = d
	return d, nil
}

func openStore(app *App) (store.Store, error) {
	if app.Ephemeral {
		return store.Store{}, errEphemeralStore
	}
	dir, err := resolveDir(app)
	if err != nil {
		return store.Store{}, err
	}
	s := store.Store{Dir: dir}
	if err := s.Ensure(); err != nil {
		return store.Store{}, fmt.Errorf("create data dir: %w", err)
	}
	return s, nil
}

// formKV picks the key-value store a form session runs against.
func formKV(app *App) (persist.KV, store.Store, error) {
	if app.Ephemeral {
		return store.NewMemory(), store.Store{}, nil
	}
	s, err := openStore(app)
	if err != nil {
		return nil, s, err
	}
	return s, s, nil
}

// openForm opens the form for a one-shot command. A store that could not be
// read is an error here: editing a blank stand-in would overwrite the data.
func openForm(ctx context.Context, app *App) (*form.Form, store.Store, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	kv, s, err := formKV(app)
	if err != nil {
		return nil, s, err
	}
	f := form.Open(ctx, kv, form.WithLogger(app.log))
	if err := f.ReadErr(); err != nil {
		return nil, s, fmt.Errorf("stored form unreadable: %w", err)
	}
	return f, s, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
