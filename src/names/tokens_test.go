package names

import (
	"slices"
	"testing"
)

func TestTokens(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a;b;c", []string{"a", "b", "c"}},
		{"a;b;;c;", []string{"a", "b", "", "c", ""}},
		{"", []string{""}},
		{";", []string{"", ""}},
		{"abc", []string{"abc"}},
	}
	for _, tc := range cases {
		got := slices.Collect(Tokens(tc.in, ';'))
		if !slices.Equal(got, tc.want) {
			t.Errorf("Tokens(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestForEachTokenStops(t *testing.T) {
	var seen []string
	ForEachToken("a;bad;c;d", ';', func(tok string) bool {
		seen = append(seen, tok)
		return tok != "bad"
	})
	if want := []string{"a", "bad"}; !slices.Equal(seen, want) {
		t.Fatalf("visited %q, want %q", seen, want)
	}
}
