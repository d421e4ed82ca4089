package bootstrap

import (
	"reflect"
	"testing"
)

func TestSplitOrigins(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"*", []string{"*"}},
		{"https://a.example, https://b.example", []string{"https://a.example", "https://b.example"}},
		{"", []string{"*"}},
		{" , ", []string{"*"}},
	}

	for _, tc := range cases {
		got := splitOrigins(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitOrigins(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}
