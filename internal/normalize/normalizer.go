package normalize

import (
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // Compiled once, read-only
var (
	spaceRuns  = regexp.MustCompile(`\s+`)
	hyphenRuns = regexp.MustCompile(`-{2,}`)
)

// Normalizer applies the cleaning rules backed by one Tables value.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	tables *Tables
}

// New returns a Normalizer bound to tables. A nil tables uses DefaultTables.
func New(tables *Tables) *Normalizer {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Normalizer{tables: tables}
}

// Tables returns the lookup data the normalizer was built with.
func (n *Normalizer) Tables() *Tables {
	return n.tables
}

// collapse trims s and reduces every whitespace run to a single space.
func collapse(s string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(s, " "))
}

// splitField splits a comma-separated multi-value field and collapses each part.
// Empty parts are dropped.
func splitField(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = collapse(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
