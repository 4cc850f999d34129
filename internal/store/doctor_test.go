package store

import (
	"context"
	"errors"
	"testing"
)

func issueCodes(r DoctorReport) map[string]string {
	out := map[string]string{}
	for _, it := range r.Issues {
		out[it.Key] = it.Code
	}
	return out
}

func TestDoctor_ReportsMissingInvalidAndUnknown(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	if err := s.Put(ctx, "good", []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "bad", []byte(`{`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "stray", []byte(`1`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	check := func(key string, b []byte) error {
		if string(b) != "[]" {
			return errors.New("malformed")
		}
		return nil
	}
	r := Doctor(ctx, s, []string{"good", "bad", "absent"}, check)
	if !r.HasErrors() {
		t.Fatalf("expected errors; got %#v", r)
	}
	codes := issueCodes(r)
	want := map[string]string{"bad": "snapshot_invalid", "absent": "snapshot_missing", "stray": "unknown_key"}
	for k, code := range want {
		if codes[k] != code {
			t.Fatalf("key %q: expected %q; got %#v", k, code, r.Issues)
		}
	}
	if _, ok := codes["good"]; ok {
		t.Fatalf("expected no issue for good key; got %#v", r.Issues)
	}
	if len(r.Entries) != 3 {
		t.Fatalf("expected 3 entries; got %d", len(r.Entries))
	}
}

func TestDoctor_EmptyStoreOnlyWarns(t *testing.T) {
	r := Doctor(context.Background(), Store{Dir: t.TempDir()}, []string{"a"}, nil)
	if r.HasErrors() {
		t.Fatalf("expected warnings only; got %#v", r.Issues)
	}
	if len(r.Issues) != 1 || r.Issues[0].Code != "snapshot_missing" {
		t.Fatalf("unexpected issues %#v", r.Issues)
	}
}
