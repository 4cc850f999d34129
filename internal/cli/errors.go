package cli

import (
	"errors"
	"fmt"
)

var errFormInvalid = errors.New("form has empty values")

// errEphemeralStore rejects commands that act on the stored data directly.
var errEphemeralStore = errors.New("--ephemeral has no stored data to act on")

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type unknownFieldError struct {
	list   string
	field  string
	fields []string
}

func (e unknownFieldError) Error() string {
	return fmt.Sprintf("%s has no field %q (fields: %v)", e.list, e.field, e.fields)
}
