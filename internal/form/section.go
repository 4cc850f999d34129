package form

import (
	"todoform/internal/model"
	"todoform/internal/rows"
)

// Section is a shape-independent handle on one section. Every mutating call
// clears the form's saved banner before delegating to the row controller.
type Section interface {
	ID() ListID
	Name() string
	Fields() []string
	Len() int
	RowID(i int) string
	Value(i int, field string) string
	Affordance(i int) rows.Affordance
	Message() string

	UpdateField(id, field, value string)
	AddRow() error
	RemoveRow(id string)
	Validate() rows.Validation
}

type section[T rows.Record[T]] struct {
	form *Form
	id   ListID
	c    *rows.Controller[T]
}

func (s *section[T]) ID() ListID { return s.id }
func (s *section[T]) Name() string { return s.c.Schema().Name }
func (s *section[T]) Fields() []string { return s.c.Schema().Fields }
func (s *section[T]) Len() int { return s.c.Len() }
func (s *section[T]) RowID(i int) string { return s.c.At(i).RowID() }
func (s *section[T]) Message() string { return s.c.Message() }
func (s *section[T]) Validate() rows.Validation { return s.c.ValidateAll() }

func (s *section[T]) Value(i int, field string) string {
	return s.c.At(i).Field(field)
}

func (s *section[T]) Affordance(i int) rows.Affordance { return s.c.Affordance(i) }

func (s *section[T]) UpdateField(id, field, value string) {
	s.form.saved = false
	s.c.UpdateField(id, field, value)
}

func (s *section[T]) AddRow() error {
	s.form.saved = false
	return s.c.AddRow()
}

func (s *section[T]) RemoveRow(id string) {
	s.form.saved = false
	s.c.RemoveRow(id)
}

// AddLabel is the caption of a section's "add row" action.
func AddLabel(s Section) string { return "Add " + s.Name() }

// Placeholder is the empty-input hint for a field.
func Placeholder(field string) string { return model.FieldLabel(field) }
