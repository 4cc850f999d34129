package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectListArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"todoform"},
			want: []string{"todoform"},
		},
		{
			name: "list name first token",
			in:   []string{"todoform", "todo"},
			want: []string{"todoform", "rows", "list", "todo"},
		},
		{
			name: "list name after value flag",
			in:   []string{"todoform", "--dir", "./tmp", "described"},
			want: []string{"todoform", "--dir", "./tmp", "rows", "list", "described"},
		},
		{
			name: "list name after equals flag",
			in:   []string{"todoform", "--format=yaml", "todo"},
			want: []string{"todoform", "--format=yaml", "rows", "list", "todo"},
		},
		{
			name: "list name after bool flag",
			in:   []string{"todoform", "--pretty", "todo"},
			want: []string{"todoform", "--pretty", "rows", "list", "todo"},
		},
		{
			name: "list name after double dash",
			in:   []string{"todoform", "--", "todo"},
			want: []string{"todoform", "--", "rows", "list", "todo"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"todoform", "rows", "list", "todo"},
			want: []string{"todoform", "rows", "list", "todo"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"todoform", "wat"},
			want: []string{"todoform", "wat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectListArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectListArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
