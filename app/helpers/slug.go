package helpers

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL slug from a display name: lowercase, drop
// everything outside [a-z0-9 -], turn whitespace runs into single hyphens,
// collapse hyphen runs and strip hyphens at both ends. The result is
// idempotent, so an already valid slug passes through unchanged.
func GenerateSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
