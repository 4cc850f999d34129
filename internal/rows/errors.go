package rows

import (
	"errors"
	"fmt"
)

// ErrIncomplete matches any *IncompleteError via errors.Is.
var ErrIncomplete = errors.New("collection has empty values")

// IncompleteError reports that at least one row of a collection has a blank
// required field.
type IncompleteError struct {
	Collection string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s has empty values.", e.Collection)
}

func (e *IncompleteError) Is(target error) bool { return target == ErrIncomplete }

func errIncomplete(collection string) *IncompleteError {
	return &IncompleteError{Collection: collection}
}

// Validation is the outcome of checking every row of a collection.
type Validation struct {
	Invalid bool   `json:"invalid"`
	Message string `json:"message,omitempty"`
}
