package names

import (
	"regexp"
	"strings"
)

var (
	parenthesized = regexp.MustCompile(`\([^)]*\)`)
	separators    = strings.NewReplacer(",", "", ".", " ", "*", " ", "ё", "е")
)

// Normalize canonicalizes a human-typed name so it can be compared against
// roster entries and sheet titles.
func Normalize(raw string) string {
	name := strings.ToLower(raw)
	name = parenthesized.ReplaceAllString(name, " ")
	name = separators.Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
