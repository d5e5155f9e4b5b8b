package roster

import (
	"slices"
	"strings"
)

// MatchesToken reports whether the words of query occur as a contiguous run
// of whole words in name, so "иванов" matches "иванов петр" but not
// "петросиванова". Both arguments must be normalized.
func MatchesToken(name, query string) bool {
	want := strings.Fields(query)
	if len(want) == 0 {
		return false
	}
	have := strings.Fields(name)
	for i := 0; i+len(want) <= len(have); i++ {
		if slices.Equal(have[i:i+len(want)], want) {
			return true
		}
	}
	return false
}
