package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeBusinessName(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{in: "ACME ROOFING, LLC", expected: "acme roofing"},
		{in: "Acme Roofing", expected: "acme roofing"},
		{in: "  Smith & Sons Plumbing Co.  ", expected: "smith & sons plumbing"},
		{in: "Bay Area Electric, Inc", expected: "bay area electric"},
		{in: "LLC", expected: "llc"},
		{in: "", expected: ""},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, NormalizeBusinessName(c.in), c.in)
	}
}
