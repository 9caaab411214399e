package media

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	disallowedRuns = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

// SanitizeFilename maps a user-supplied filename to a name safe for the
// filesystem and URLs: runs of whitespace collapse to a single underscore,
// then every character outside [A-Za-z0-9._-] is dropped. Length is not
// capped.
func SanitizeFilename(name string) string {
	name = whitespaceRuns.ReplaceAllString(name, "_")
	return disallowedRuns.ReplaceAllString(name, "")
}

// StoredName derives the identifier an upload is stored under: the current
// timestamp in milliseconds, a dash, and the sanitized original name. The
// timestamp prefix keeps same-named uploads from overwriting each other.
// A name that sanitizes to nothing falls back to a random identifier.
func StoredName(original string, now time.Time) string {
	safe := SanitizeFilename(original)
	if safe == "" {
		safe = uuid.NewString()
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), safe)
}
