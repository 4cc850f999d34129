package format

import (
	"bytes"
	"strings"
	"testing"
)

type payload struct {
	Data  any      `json:"data" yaml:"data"`
	Hints []string `json:"_hints" yaml:"_hints"`
}

type row struct {
	ID          string `json:"id" yaml:"id"`
	Task        string `json:"task" yaml:"task"`
	Description string `json:"description" yaml:"description"`
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, payload{Data: []row{{ID: "1", Task: "Walk"}}}, "", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := `{"data":[{"id":"1","task":"Walk","description":""}],"_hints":null}` + "\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWrite_EDNKeepsFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{"todoError": "TODO LIST has empty values.", "saved": false, "count": 2}
	if err := Write(&buf, []row{{ID: "1", Task: "Walk \"fast\""}}, "edn", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := `[{:id "1" :task "Walk \"fast\"" :description ""}]` + "\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := Write(&buf, v, "edn", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	// encoding/json sorts map keys.
	want = `{:count 2 :saved false :todo-error "TODO LIST has empty values."}` + "\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWrite_EDNPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, payload{Data: []any{}, Hints: []string{"todoform submit"}}, "edn", true); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "{\n  :data []\n  :_hints [\n    \"todoform submit\"\n  ]\n}\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []row{{ID: "1", Task: "Walk"}}, "yaml", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"- id: \"1\"", "task: Walk", "description: \"\""} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, 1, "xml", false); err == nil {
		t.Fatalf("expected error")
	}
	if Valid("xml") || !Valid("YAML") || !Valid("") {
		t.Fatalf("unexpected Valid results")
	}
}

func sampleTables() []Table {
	return []Table{
		{Title: "Created Tasks (TODO LIST)", Columns: []string{"Task"}, Rows: [][]string{{"Walk"}, {"Read | write"}}},
		{Title: "Created Tasks (TODO LIST with Description)", Columns: []string{"Task", "Description"}},
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, "Summary", sampleTables()); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# Summary\n",
		"## Created Tasks (TODO LIST)\n",
		"| # | Task |\n",
		"| 1 | Walk |\n",
		`| 2 | Read \| write |`,
		"**Total: 2**",
		"_No tasks yet._",
		"**Total: 0**",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	tables := sampleTables()
	tables[0].Rows = append(tables[0].Rows, []string{strings.Repeat("long task ", 40)})
	if err := WritePDF(&buf, "Add FORM", tables); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("not a pdf: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestRenderMarkdown(t *testing.T) {
	var md bytes.Buffer
	if err := WriteMarkdown(&md, "", sampleTables()); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := RenderMarkdown(md.String(), "notty", 80)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Walk") || !strings.Contains(out, "Total: 2") {
		t.Fatalf("unexpected render:\n%s", out)
	}
	if _, err := RenderMarkdown("x", "no-such-style", 80); err == nil {
		t.Fatalf("expected unknown style error")
	}
}
