package csvmap

import "fmt"

// allowedColumns is the closed set of destination fields a CSV column may
// feed. Anything outside it is reported back to the caller, never silently
// written.
var allowedColumns = []string{
	"year",
	"division",
	"class",
	"group_name",
	"home_team_id",
	"home_score",
	"away_team_id",
	"away_score",
	"match_type",
	"match_date",
	"competition",
	"typ",
	"location",
	"city",
}

// headerAliases maps normalized header spellings onto destination fields.
// Keys must already be in normalized form.
var headerAliases = map[string]string{
	"date":       "match_date",
	"matchdate":  "match_date",
	"game_date":  "match_date",
	"serie":      "division",
	"klass":      "class",
	"grupp":      "group_name",
	"group":      "group_name",
	"tournament": "competition",
	"type":       "typ",
	"home":       "home_team_id",
	"home_team":  "home_team_id",
	"away":       "away_team_id",
	"away_team":  "away_team_id",
	"place":      "location",
	"arena":      "location",
}

// Mapping is the resolved plan for one CSV header row: which destination
// field, if any, each column index feeds, plus diagnostics about headers that
// matched nothing.
type Mapping struct {
	targets []string

	// Used records raw header -> destination for every mapped column.
	Used map[string]string
	// Unknown lists raw headers that resolved to no allowed destination.
	Unknown []string
	// Notes carries non-fatal observations, such as two columns claiming the
	// same destination.
	Notes []string
}

// Target returns the destination field for a column index. The second return
// is false for unmapped columns and indexes past the header row.
func (m Mapping) Target(idx int) (string, bool) {
	if idx < 0 || idx >= len(m.targets) {
		return "", false
	}
	if m.targets[idx] == "" {
		return "", false
	}
	return m.targets[idx], true
}

// Mapped reports whether at least one column resolved to a destination.
func (m Mapping) Mapped() bool {
	return len(m.Used) > 0
}

// MapHeaders resolves a header row into a Mapping. Each header is normalized,
// run through the alias table, and checked against the allowed destination
// set. When several columns claim the same destination the later column wins
// and a note records the collision.
func MapHeaders(headers []string) Mapping {
	m := Mapping{
		targets: make([]string, len(headers)),
		Used:    make(map[string]string),
	}

	claimed := make(map[string]string)
	for i, raw := range headers {
		normalized := NormalizeHeader(raw)

		dest := normalized
		if alias, ok := headerAliases[normalized]; ok {
			dest = alias
		}
		if !allowed(dest) {
			m.Unknown = append(m.Unknown, raw)
			continue
		}

		if prev, ok := claimed[dest]; ok {
			m.Notes = append(m.Notes, fmt.Sprintf("columns %q and %q both map to %q, the later one wins", prev, raw, dest))
		}
		claimed[dest] = raw

		m.targets[i] = dest
		m.Used[raw] = dest
	}

	return m
}

func allowed(dest string) bool {
	for _, c := range allowedColumns {
		if c == dest {
			return true
		}
	}
	return false
}
