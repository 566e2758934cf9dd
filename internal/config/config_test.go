package config

import (
	"reflect"
	"testing"
)

func TestSplitRoles(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty disables the check", "", nil},
		{"single role", "Admin", []string{"Admin"}},
		{"multiple roles", "Admin,Manager", []string{"Admin", "Manager"}},
		{"whitespace is trimmed", " Admin , Manager ", []string{"Admin", "Manager"}},
		{"dangling commas are ignored", ",Admin,,", []string{"Admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitRoles(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitRoles(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
