// Package classify decides whether free-text spreadsheet cells denote space
// identifiers or something else (prose, durations, branch labels).
package classify

import (
	"regexp"
	"sort"
	"strings"
)

// minIDLength is the shortest accepted identifier. Real space names are
// uppercase-hyphenated and at least this long; anything shorter is an
// abbreviation like FDNY, not a board location.
const minIDLength = 5

var (
	idPattern          = regexp.MustCompile(`^[A-Z][A-Z0-9-]+$`)
	placeholderPattern = regexp.MustCompile(`(?i)^space\s+\d+$`)
	durationPattern    = regexp.MustCompile(`(?i)\d+\s*(day|week|month)`)

	// idScanPattern mines identifier-shaped substrings out of conditional
	// prose like "Did you pass approval? YES - REG-FDNY-PLAN-EXAM - NO - Space 3".
	idScanPattern = regexp.MustCompile(`[A-Z][A-Z0-9-]{2,}`)
)

// Classifier validates space identifiers against the structural rules plus a
// dataset-specific exception table.
type Classifier struct {
	exc Exceptions
}

// New returns a Classifier using the given exception table.
func New(exc Exceptions) *Classifier {
	return &Classifier{exc: exc}
}

// IsSpaceID reports whether text denotes a valid space identifier rather
// than instructional prose, a duration, or a conditional question.
func (c *Classifier) IsSpaceID(text string) bool {
	name := strings.TrimSpace(text)
	if name == "" {
		return false
	}
	if !idPattern.MatchString(name) {
		return false
	}
	if strings.Contains(name, "?") {
		return false
	}
	if placeholderPattern.MatchString(name) {
		return false
	}
	if upper := strings.ToUpper(name); upper == "YES" || upper == "NO" {
		return false
	}
	if durationPattern.MatchString(name) {
		return false
	}
	// Sentinels skip the hyphen and length rules.
	if c.exc.IsSentinel(name) {
		return true
	}
	if !strings.Contains(name, "-") {
		return false
	}
	return len(name) >= minIDLength
}

// ExtractIDs mines all valid space identifiers embedded in free text. The
// scan is substring-based because conditional cells hold a full question, not
// a bare identifier. Results are deduplicated and sorted.
func (c *Classifier) ExtractIDs(text string) []string {
	seen := make(map[string]bool)
	for _, candidate := range idScanPattern.FindAllString(text, -1) {
		if c.IsSpaceID(candidate) {
			seen[candidate] = true
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
