package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectCardLookupArgs(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "bare id",
			in:   []string{"grimoire", "7"},
			want: []string{"grimoire", "cards", "show", "7"},
		},
		{
			name: "id after persistent flag",
			in:   []string{"grimoire", "--data", "d.json", "12"},
			want: []string{"grimoire", "--data", "d.json", "cards", "show", "12"},
		},
		{
			name: "id after double dash",
			in:   []string{"grimoire", "--", "3"},
			want: []string{"grimoire", "--", "cards", "show", "3"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"grimoire", "cards", "list"},
			want: []string{"grimoire", "cards", "list"},
		},
		{
			name: "non numeric untouched",
			in:   []string{"grimoire", "reveal", "7"},
			want: []string{"grimoire", "reveal", "7"},
		},
		{
			name: "no args",
			in:   []string{"grimoire"},
			want: []string{"grimoire"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rewriteDirectCardLookupArgs(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
