package textutil

import (
	"regexp"
	"strings"
)

var punctuationRegex = regexp.MustCompile(`[^\p{L}\p{N}\s&]+`)

// legal entity suffixes that the registry and the places directory
// disagree on, "ACME ROOFING, LLC" vs "Acme Roofing"
var entitySuffixes = map[string]bool{
	"llc":          true,
	"inc":          true,
	"corp":         true,
	"corporation":  true,
	"co":           true,
	"company":      true,
	"ltd":          true,
	"pllc":         true,
	"pa":           true,
	"incorporated": true,
}

// NormalizeBusinessName reduces a business name to lowercase words with
// punctuation and trailing entity suffixes removed.
func NormalizeBusinessName(name string) string {
	name = strings.ToLower(name)
	name = punctuationRegex.ReplaceAllString(name, " ")
	words := strings.Fields(name)
	for len(words) > 1 && entitySuffixes[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}
