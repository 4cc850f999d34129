package persist

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const snapshotSchemaURL = "todoform://snapshot.schema.json"

// Every record needs a non-empty string id; all other properties are flat
// string fields.
const snapshotSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id"],
    "properties": {
      "id": {"type": "string", "minLength": 1}
    },
    "additionalProperties": {"type": "string"}
  }
}`

var compileSnapshotSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(snapshotSchemaURL, strings.NewReader(snapshotSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile(snapshotSchemaURL)
})

// SchemaError lists every schema violation found in a snapshot.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "invalid snapshot: " + strings.Join(e.Problems, "; ")
}

// Check reports whether b is a structurally valid snapshot: a JSON array of
// flat string records with unique, non-empty ids.
func Check(b []byte) error {
	schema, err := compileSnapshotSchema()
	if err != nil {
		return fmt.Errorf("compile snapshot schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		se := &SchemaError{}
		collectSchemaProblems(se, err)
		return se
	}

	seen := map[string]bool{}
	for _, it := range doc.([]any) {
		id, _ := it.(map[string]any)["id"].(string)
		if seen[id] {
			return &SchemaError{Problems: []string{"duplicate id " + id}}
		}
		seen[id] = true
	}
	return nil
}

func collectSchemaProblems(se *SchemaError, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		se.Problems = append(se.Problems, err.Error())
		return
	}
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		se.Problems = append(se.Problems, loc+": "+ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaProblems(se, cause)
	}
}
