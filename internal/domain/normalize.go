package domain

import (
	"strings"
	"unicode"
)

// NormalizeGroupName prepares a group label for storage:
//   - trims leading/trailing whitespace
//   - turns every run of whitespace (tabs, newlines included) into one space
//
// Case is preserved; labels are shown back to the user as typed.
func NormalizeGroupName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
