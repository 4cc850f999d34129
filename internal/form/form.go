// Package form ties the two form sections together: it loads both
// collections from the store, writes a snapshot after every change, and owns
// the submit/"saved" state that spans both sections.
package form

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"todoform/internal/format"
	"todoform/internal/logging"
	"todoform/internal/model"
	"todoform/internal/persist"
	"todoform/internal/rows"

	"github.com/charmbracelet/log"
)

// ListID selects one of the two sections.
type ListID int

const (
	ListTodo ListID = iota + 1
	ListDescribed
)

// Lists is every section in display order.
var Lists = []ListID{ListTodo, ListDescribed}

func (l ListID) String() string {
	switch l {
	case ListTodo:
		return "todo"
	case ListDescribed:
		return "described"
	default:
		return fmt.Sprintf("list(%d)", int(l))
	}
}

// ParseListID accepts todo|described (and 1|2).
func ParseListID(s string) (ListID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo", "1", "list", "todo-list":
		return ListTodo, nil
	case "described", "2", "description", "with-description":
		return ListDescribed, nil
	default:
		return 0, fmt.Errorf("unknown list %q (want todo|described)", s)
	}
}

type options struct {
	logger *log.Logger
	rowOps []rows.Option
}

type Option func(*options)

func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRowOptions forwards options to both row controllers.
func WithRowOptions(opts ...rows.Option) Option {
	return func(o *options) { o.rowOps = append(o.rowOps, opts...) }
}

// Form is the two-section editor state.
type Form struct {
	Todo      *rows.Controller[model.Task]
	Described *rows.Controller[model.DescribedTask]

	saved    bool
	readErr  error
	writeErr error
	log      *log.Logger
}

// Open loads both sections from kv and wires every mutation to a full
// snapshot write under the section's key. Sections with nothing usable stored
// are written back with their seeded blank row, unless the read itself failed:
// then the seed stays in memory only and the failure is reported by ReadErr.
// Store failures never abort the session: they are logged and surfaced
// through ReadErr and WriteErr.
func Open(ctx context.Context, kv persist.KV, opts ...Option) *Form {
	o := options{logger: logging.Discard()}
	for _, fn := range opts {
		fn(&o)
	}

	f := &Form{log: o.logger}
	rowOpts := append([]rows.Option{rows.WithLogger(o.logger)}, o.rowOps...)

	todo, todoErr := persist.Read[model.Task](ctx, kv, model.TodoList.Key, o.logger)
	saveTodo := saver[model.Task](ctx, f, kv, model.TodoList.Key)
	f.Todo = rows.New(model.TodoList, todo, saveTodo, rowOpts...)

	described, describedErr := persist.Read[model.DescribedTask](ctx, kv, model.TodoWithDescription.Key, o.logger)
	saveDescribed := saver[model.DescribedTask](ctx, f, kv, model.TodoWithDescription.Key)
	f.Described = rows.New(model.TodoWithDescription, described, saveDescribed, rowOpts...)

	f.readErr = errors.Join(todoErr, describedErr)

	// Store seeded rows right away so their ids are stable across sessions.
	// A section whose read failed may still hold data, so it is left alone.
	if len(todo) == 0 && todoErr == nil {
		saveTodo(f.Todo.Records())
	}
	if len(described) == 0 && describedErr == nil {
		saveDescribed(f.Described.Records())
	}
	return f
}

func saver[T any](ctx context.Context, f *Form, kv persist.KV, key string) func([]T) {
	return func(records []T) {
		if err := persist.Save(ctx, kv, key, records); err != nil {
			f.log.Warn("snapshot write failed", "key", key, "err", err)
			f.writeErr = err
			return
		}
		f.writeErr = nil
	}
}

// Saved reports whether the last submit succeeded and nothing changed since.
func (f *Form) Saved() bool { return f.saved }

// ReadErr reports sections whose stored snapshot could not be read at open.
// Those sections start from a blank row that has not been written back.
func (f *Form) ReadErr() error { return f.readErr }

// WriteErr is the most recent snapshot write failure, cleared by the next
// successful write.
func (f *Form) WriteErr() error { return f.writeErr }

// Section returns a uniform view of one section for hosts that render both
// lists the same way.
func (f *Form) Section(id ListID) (Section, error) {
	switch id {
	case ListTodo:
		return &section[model.Task]{form: f, id: id, c: f.Todo}, nil
	case ListDescribed:
		return &section[model.DescribedTask]{form: f, id: id, c: f.Described}, nil
	default:
		return nil, fmt.Errorf("unknown list %v", id)
	}
}

// Sections returns both sections in display order.
func (f *Form) Sections() []Section {
	out := make([]Section, 0, len(Lists))
	for _, id := range Lists {
		s, _ := f.Section(id)
		out = append(out, s)
	}
	return out
}

// SubmitResult is the outcome of validating both sections.
type SubmitResult struct {
	Saved          bool   `json:"saved" yaml:"saved"`
	TodoError      string `json:"todoError,omitempty" yaml:"todoError,omitempty"`
	DescribedError string `json:"describedError,omitempty" yaml:"describedError,omitempty"`

	errs []error
}

// Err joins the per-section errors, or nil when the form was saved.
func (r SubmitResult) Err() error { return errors.Join(r.errs...) }

// SuccessMessage is the banner shown after a successful submit.
const SuccessMessage = "Form saved successfully."

// Submit validates both sections. Each section's error is set (or cleared)
// to match; the form counts as saved only when both pass.
func (f *Form) Submit() SubmitResult {
	f.saved = false

	var res SubmitResult
	if v := f.Todo.Check(); v.Invalid {
		res.TodoError = v.Message
		res.errs = append(res.errs, f.Todo.Err())
	}
	if v := f.Described.Check(); v.Invalid {
		res.DescribedError = v.Message
		res.errs = append(res.errs, f.Described.Err())
	}
	if len(res.errs) > 0 {
		f.log.Debug("submit rejected", "todo", res.TodoError, "described", res.DescribedError)
		return res
	}
	f.saved = true
	res.Saved = true
	f.log.Info("form saved",
		"todo", countSeq(f.Todo.Completed()),
		"described", countSeq(f.Described.Completed()))
	return res
}

// Summary is the read-only view of completed rows in both sections.
type Summary struct {
	Todo      SummaryList[model.Task]          `json:"todo" yaml:"todo"`
	Described SummaryList[model.DescribedTask] `json:"described" yaml:"described"`
}

type SummaryList[T any] struct {
	Title string `json:"title" yaml:"title"`
	Total int    `json:"total" yaml:"total"`
	Items []T    `json:"items" yaml:"items"`
}

func (f *Form) Summary() Summary {
	todo := slices.Collect(f.Todo.Completed())
	described := slices.Collect(f.Described.Completed())
	if todo == nil {
		todo = []model.Task{}
	}
	if described == nil {
		described = []model.DescribedTask{}
	}
	return Summary{
		Todo:      SummaryList[model.Task]{Title: summaryTitle(model.TodoList.Name), Total: len(todo), Items: todo},
		Described: SummaryList[model.DescribedTask]{Title: summaryTitle(model.TodoWithDescription.Name), Total: len(described), Items: described},
	}
}

// SummaryHeading titles printable summaries.
const SummaryHeading = "Add FORM"

// Tables lays the summary out as printable tables, one per section.
func (s Summary) Tables() []format.Table {
	return []format.Table{
		summaryTable(s.Todo, model.TodoList.Fields),
		summaryTable(s.Described, model.TodoWithDescription.Fields),
	}
}

func summaryTable[T rows.Record[T]](l SummaryList[T], fields []string) format.Table {
	t := format.Table{Title: l.Title, Rows: make([][]string, 0, len(l.Items))}
	for _, f := range fields {
		t.Columns = append(t.Columns, model.ColumnLabel(f))
	}
	for _, it := range l.Items {
		r := make([]string, len(fields))
		for i, f := range fields {
			r[i] = it.Field(f)
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}

func summaryTitle(name string) string { return "Created Tasks (" + name + ")" }

func countSeq[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
