package docs

import (
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := strings.Join(Topics(), ",")
	if got != "config,form,keys,storage" {
		t.Fatalf("unexpected topics %q", got)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get(" Storage ")
	if !ok || !strings.Contains(body, "todo_exam_list_1") {
		t.Fatalf("expected storage topic; ok=%v", ok)
	}
	for _, bad := range []string{"", "nope", "../docs"} {
		if _, ok := Get(bad); ok {
			t.Fatalf("expected %q to be unknown", bad)
		}
	}
}
