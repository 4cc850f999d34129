package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteKV_PutGetRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := Store{Dir: filepath.Join(t.TempDir(), "nested", "data")}

	if _, ok, err := s.Get(ctx, "todo_exam_list_1"); err != nil || ok {
		t.Fatalf("expected absent key; ok=%v err=%v", ok, err)
	}

	if err := s.Put(ctx, "todo_exam_list_1", []byte(`[{"id":"a","task":"Walk"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := s.Get(ctx, "todo_exam_list_1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"id":"a","task":"Walk"}]` {
		t.Fatalf("unexpected value: %s", got)
	}

	// Full-snapshot writes replace the previous value.
	if err := s.Put(ctx, "todo_exam_list_1", []byte(`[]`)); err != nil {
		t.Fatalf("put (replace): %v", err)
	}
	got, _, _ = s.Get(ctx, "todo_exam_list_1")
	if string(got) != `[]` {
		t.Fatalf("expected replaced value; got %s", got)
	}
}

func TestSQLiteKV_PersistsAcrossStoreValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	if err := (Store{Dir: dir}).Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := (Store{Dir: dir}).Get(ctx, "k")
	if err != nil || !ok || string(got) != "v" {
		t.Fatalf("expected value from a fresh Store; got=%q ok=%v err=%v", got, ok, err)
	}
}

func TestSQLiteKV_EntriesAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	for _, k := range []string{"b", "a"} {
		if err := s.Put(ctx, k, []byte("xyz")); err != nil {
			t.Fatalf("put %s: %v", k, err)
		}
	}
	entries, err := s.Entries(ctx)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 || entries[0].Key != "a" || entries[1].Key != "b" || entries[0].Size != 3 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if entries[0].UpdatedAt.IsZero() {
		t.Fatalf("expected updatedAt to be set")
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "a"); ok {
		t.Fatalf("expected a to be deleted")
	}
	if err := s.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestSQLiteKV_RejectsEmptyKey(t *testing.T) {
	t.Parallel()
	s := Store{Dir: t.TempDir()}
	if err := s.Put(context.Background(), "  ", []byte("x")); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestMemoryKV_CopiesValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()

	in := []byte("abc")
	_ = m.Put(ctx, "k", in)
	in[0] = 'X'
	got, ok, _ := m.Get(ctx, "k")
	if !ok || string(got) != "abc" {
		t.Fatalf("memory store must copy on put; got %q", got)
	}
}

func TestMemoryKV_ZeroValueIsUsable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var m Memory

	if _, ok, err := m.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("expected empty zero store; ok=%v err=%v", ok, err)
	}
	if err := m.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if got, ok, _ := m.Get(ctx, "k"); !ok || string(got) != "v" {
		t.Fatalf("unexpected value %q", got)
	}
}
