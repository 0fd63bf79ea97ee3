// Package shortcode derives human-readable holder identifiers from name
// initials: "Mario Rossi" yields the prefix "MR", and the first free "MR1",
// "MR2", ... is allocated against the codes already in use.
package shortcode

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var ErrEmptyName = errors.New("shortcode: empty name")

// Prefix returns the two-letter uppercased prefix from the first letters of
// the given names.
func Prefix(firstName, lastName string) (string, error) {
	f := []rune(strings.TrimSpace(firstName))
	l := []rune(strings.TrimSpace(lastName))
	if len(f) == 0 || len(l) == 0 {
		return "", ErrEmptyName
	}
	return string(unicode.ToUpper(f[0])) + string(unicode.ToUpper(l[0])), nil
}

// Next returns prefix+N for the smallest positive N not present in taken.
// Gaps left by deleted holders are reused, so the sequence is not necessarily
// contiguous.
func Next(prefix string, taken []string) string {
	used := make(map[string]struct{}, len(taken))
	for _, c := range taken {
		used[c] = struct{}{}
	}
	for n := 1; ; n++ {
		candidate := prefix + strconv.Itoa(n)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}
