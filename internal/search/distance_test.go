package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistance_KnownPairs(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"water", "watr", 1},
		{"supply", "suply", 1},
		{"tax", "tax", 0},
		{"abc", "", 3},
		{"", "abcd", 4},
		{"नगर", "नगरी", 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Distance(tc.a, tc.b), "Distance(%q, %q)", tc.a, tc.b)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	words := []string{"", "a", "tax", "water", "watr", "property", "license", "licence", "sanitation"}
	for _, a := range words {
		for _, b := range words {
			require.Equal(t, Distance(a, b), Distance(b, a), "asymmetric for %q/%q", a, b)
		}
	}
}

func TestDistance_IdentityAndEmpty(t *testing.T) {
	for _, s := range []string{"", "x", "building plan", "ड्रेनेज"} {
		require.Zero(t, Distance(s, s))
		require.Equal(t, len([]rune(s)), Distance(s, ""))
	}
}
