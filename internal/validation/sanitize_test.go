package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Laptop Dell  ", "Laptop Dell"},
		{"<b>Laptop</b>", "bLaptop/b"},
		{"<script>alert(1)</script>", "scriptalert(1)/script"},
		{"javascript:alert(1)", "alert(1)"},
		{"JaVaScRiPt:alert(1)", "alert(1)"},
		{"a onclick=steal() b", "a steal() b"},
		{"plain name", "plain name"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SanitizeString(tc.in), "input %q", tc.in)
	}
}

func TestSanitizeStringIdempotent(t *testing.T) {
	inputs := []string{
		"  <img src=x onerror=alert(1)>  ",
		"javasjavascript:cript:alert(1)",
		"< javascript: >",
		"  <  spaced  >  ",
		"ononclick=click=x",
	}
	for _, in := range inputs {
		once := SanitizeString(in)
		require.Equal(t, once, SanitizeString(once), "input %q", in)
	}
}

func TestSanitizeMap(t *testing.T) {
	in := map[string]any{
		"name":  " <b>Laptop</b> ",
		"qty":   float64(3),
		"price": 9.99,
	}
	out := SanitizeMap(in)
	require.Equal(t, "bLaptop/b", out["name"])
	require.Equal(t, float64(3), out["qty"])
	require.Equal(t, 9.99, out["price"])
}
