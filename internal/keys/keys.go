// Package keys derives filesystem-safe keys from user-supplied values.
//
// A user key names that user's live activity file and completed-task
// partition directory, so it must stay within a conservative charset.
package keys

import (
	"regexp"
	"strings"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	disallowedPattern = regexp.MustCompile(`[^a-z0-9_\-.]`)
)

// Sanitize converts a login (or any label) into a filesystem-safe key:
// lowercased, internal whitespace collapsed to underscores, and every
// character outside [a-z0-9_-.] removed.
func Sanitize(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = whitespacePattern.ReplaceAllString(value, "_")
	return disallowedPattern.ReplaceAllString(value, "")
}
