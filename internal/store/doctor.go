package store

import (
	"context"
	"errors"
	"slices"
)

var ErrDoctorIssuesFound = errors.New("doctor found errors")

type DoctorIssueLevel string

const (
	DoctorIssueLevelError DoctorIssueLevel = "error"
	DoctorIssueLevelWarn  DoctorIssueLevel = "warn"
)

type DoctorIssue struct {
	Level   DoctorIssueLevel `json:"level" yaml:"level"`
	Code    string           `json:"code" yaml:"code"`
	Message string           `json:"message" yaml:"message"`
	Key     string           `json:"key,omitempty" yaml:"key,omitempty"`
}

type DoctorReport struct {
	Dir     string        `json:"dir" yaml:"dir"`
	Path    string        `json:"path" yaml:"path"`
	Entries []Entry       `json:"entries" yaml:"entries"`
	Issues  []DoctorIssue `json:"issues" yaml:"issues"`
}

func (r DoctorReport) HasErrors() bool {
	for _, it := range r.Issues {
		if it.Level == DoctorIssueLevelError {
			return true
		}
	}
	return false
}

// Doctor inspects the store. Every key in expected should be present and
// pass check; other keys are reported as unknown. Missing snapshots are only
// warnings since the form seeds them on first use.
func Doctor(ctx context.Context, s Store, expected []string, check func(key string, b []byte) error) DoctorReport {
	r := DoctorReport{Dir: s.Dir, Path: s.Path(), Entries: []Entry{}, Issues: []DoctorIssue{}}

	entries, err := s.Entries(ctx)
	if err != nil {
		r.Issues = append(r.Issues, DoctorIssue{
			Level:   DoctorIssueLevelError,
			Code:    "store_unreadable",
			Message: err.Error(),
		})
		return r
	}
	r.Entries = entries

	present := map[string]bool{}
	for _, e := range entries {
		present[e.Key] = true
		if !slices.Contains(expected, e.Key) {
			r.Issues = append(r.Issues, DoctorIssue{
				Level:   DoctorIssueLevelWarn,
				Code:    "unknown_key",
				Message: "key is not used by the form",
				Key:     e.Key,
			})
		}
	}

	for _, key := range expected {
		if !present[key] {
			r.Issues = append(r.Issues, DoctorIssue{
				Level:   DoctorIssueLevelWarn,
				Code:    "snapshot_missing",
				Message: "no snapshot stored yet; a blank row will be seeded",
				Key:     key,
			})
			continue
		}
		if check == nil {
			continue
		}
		b, _, err := s.Get(ctx, key)
		if err == nil {
			err = check(key, b)
		}
		if err != nil {
			r.Issues = append(r.Issues, DoctorIssue{
				Level:   DoctorIssueLevelError,
				Code:    "snapshot_invalid",
				Message: err.Error(),
				Key:     key,
			})
		}
	}
	return r
}
