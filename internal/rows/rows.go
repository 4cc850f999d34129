// Package rows implements the editable row collection behind each form
// section: ordered records, blank-field validation, and the add/remove policy.
//
// A Controller is not safe for concurrent use. Hosts drive it from a single
// event loop.
package rows

import (
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// Record is a row shape managed by a Controller.
type Record[T any] interface {
	RowID() string
	Field(name string) string
	WithField(name, value string) T
}

// Schema declares a collection: its display name, storage key, required
// fields (in display order), and how to build a blank row.
type Schema[T Record[T]] struct {
	Name   string
	Key    string
	Fields []string
	Blank  func(id string) T
}

func (s Schema[T]) hasField(name string) bool {
	return slices.Contains(s.Fields, name)
}

// Affordance is the per-row action a host shows next to a row.
type Affordance int

const (
	AffordanceDelete Affordance = iota
	AffordanceAdd
)

func (a Affordance) String() string {
	if a == AffordanceAdd {
		return "add"
	}
	return "delete"
}

type settings struct {
	newID  func() string
	logger *log.Logger
}

type Option func(*settings)

// WithIDFunc overrides row id generation (default NewID).
func WithIDFunc(fn func() string) Option {
	return func(s *settings) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// Controller owns one ordered collection of records and its current
// validation error.
type Controller[T Record[T]] struct {
	schema   Schema[T]
	records  []T
	err      *IncompleteError
	onChange func([]T)
	newID    func() string
	log      *log.Logger
}

// New builds a controller seeded with initial. An empty initial sequence is
// replaced by one blank row. onChange, when non-nil, receives a copy of the
// full collection after every mutation.
func New[T Record[T]](schema Schema[T], initial []T, onChange func([]T), opts ...Option) *Controller[T] {
	st := settings{
		newID:  NewID,
		logger: log.New(io.Discard),
	}
	for _, o := range opts {
		o(&st)
	}

	c := &Controller[T]{
		schema:   schema,
		records:  slices.Clone(initial),
		onChange: onChange,
		newID:    st.newID,
		log:      st.logger.With("collection", schema.Name),
	}
	if len(c.records) == 0 {
		c.records = []T{c.blank()}
	}
	return c
}

func (c *Controller[T]) Schema() Schema[T] { return c.schema }

func (c *Controller[T]) Len() int { return len(c.records) }

// At returns the record at position i. It panics when i is out of range.
func (c *Controller[T]) At(i int) T { return c.records[i] }

// Records returns a copy of the collection in order.
func (c *Controller[T]) Records() []T { return slices.Clone(c.records) }

// Err returns the current validation error, or nil.
func (c *Controller[T]) Err() error {
	if c.err == nil {
		return nil
	}
	return c.err
}

// Message returns the current error message, or "" when there is none.
func (c *Controller[T]) Message() string {
	if c.err == nil {
		return ""
	}
	return c.err.Error()
}

// Index returns the position of the record with the given id, or -1.
func (c *Controller[T]) Index(id string) int {
	return slices.IndexFunc(c.records, func(r T) bool { return r.RowID() == id })
}

// UpdateField sets one field of one record. Unknown ids and undeclared
// fields are ignored. A successful edit clears the current error without
// re-validating.
func (c *Controller[T]) UpdateField(id, field, value string) {
	if !c.schema.hasField(field) {
		c.log.Debug("ignoring undeclared field", "field", field)
		return
	}
	i := c.Index(id)
	if i < 0 {
		return
	}
	c.records[i] = c.records[i].WithField(field, value)
	c.err = nil
	c.changed()
}

// AddRow appends a blank record when every existing record is complete.
// Otherwise it records and returns an *IncompleteError and leaves the
// collection untouched.
func (c *Controller[T]) AddRow() error {
	if c.hasIncomplete() {
		c.err = errIncomplete(c.schema.Name)
		c.log.Debug("add rejected", "rows", len(c.records))
		return c.err
	}
	c.records = append(c.records, c.blank())
	c.err = nil
	c.changed()
	return nil
}

// RemoveRow deletes the record with the given id. Removing the last record
// leaves a single fresh blank one. Any current error is cleared.
func (c *Controller[T]) RemoveRow(id string) {
	i := c.Index(id)
	if i < 0 {
		return
	}
	c.records = slices.Delete(c.records, i, i+1)
	if len(c.records) == 0 {
		c.records = []T{c.blank()}
	}
	c.err = nil
	c.changed()
}

// ValidateAll runs the AddRow blank check over the whole collection without
// touching any state.
func (c *Controller[T]) ValidateAll() Validation {
	if c.hasIncomplete() {
		return Validation{Invalid: true, Message: errIncomplete(c.schema.Name).Error()}
	}
	return Validation{}
}

// Check runs ValidateAll and records the outcome as the current error.
// Submit actions use it so the section shows the same message AddRow would.
func (c *Controller[T]) Check() Validation {
	v := c.ValidateAll()
	if v.Invalid {
		c.err = errIncomplete(c.schema.Name)
	} else {
		c.err = nil
	}
	return v
}

// Completed yields the records whose required fields are all non-blank, in
// collection order. Each range over the result reads the current collection.
func (c *Controller[T]) Completed() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, r := range c.records {
			if !c.complete(r) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Affordance reports which action the row at position i offers: the last row
// offers "add" while all of its required fields are blank; every other row
// offers "delete".
func (c *Controller[T]) Affordance(i int) Affordance {
	if i == len(c.records)-1 && c.fullyBlank(c.records[i]) {
		return AffordanceAdd
	}
	return AffordanceDelete
}

func (c *Controller[T]) Affordances() []Affordance {
	out := make([]Affordance, len(c.records))
	for i := range c.records {
		out[i] = c.Affordance(i)
	}
	return out
}

func (c *Controller[T]) blank() T {
	return c.schema.Blank(c.newID())
}

func (c *Controller[T]) changed() {
	if c.onChange != nil {
		c.onChange(slices.Clone(c.records))
	}
}

func (c *Controller[T]) hasIncomplete() bool {
	return slices.ContainsFunc(c.records, func(r T) bool { return !c.complete(r) })
}

func (c *Controller[T]) complete(r T) bool {
	for _, f := range c.schema.Fields {
		if isBlank(r.Field(f)) {
			return false
		}
	}
	return true
}

func (c *Controller[T]) fullyBlank(r T) bool {
	for _, f := range c.schema.Fields {
		if !isBlank(r.Field(f)) {
			return false
		}
	}
	return true
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
