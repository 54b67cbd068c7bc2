// Package catalog holds the static table of well-known timezones offered
// by search, together with display names and search aliases.
package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxResults caps the number of entries Search returns.
const MaxResults = 8

// Entry is one searchable timezone.
type Entry struct {
	Zone    string
	Display string
	Aliases []string
}

// Search returns catalog entries whose zone, display name, or any alias
// contains the query, case-insensitively. Entries come back in catalog
// order, capped at MaxResults. An empty or whitespace query matches
// nothing.
func Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []Entry
	for _, e := range Entries() {
		if matches(e, q) {
			results = append(results, e)
			if len(results) == MaxResults {
				break
			}
		}
	}
	return results
}

func matches(e Entry, q string) bool {
	if strings.Contains(strings.ToLower(e.Zone), q) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Display), q) {
		return true
	}
	for _, a := range e.Aliases {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return false
}

// Lookup finds the catalog entry for an exact zone identifier.
func Lookup(zone string) (Entry, bool) {
	for _, e := range Entries() {
		if e.Zone == zone {
			return e, true
		}
	}
	return Entry{}, false
}

// Nearest returns the catalog zone closest to the given identifier by
// edit distance. It backs "did you mean" diagnostics when an add fails;
// it never influences search results.
func Nearest(zone string) (string, bool) {
	best := ""
	bestDist := -1
	needle := strings.ToLower(zone)
	for _, e := range Entries() {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(e.Zone))
		if bestDist == -1 || d < bestDist {
			best = e.Zone
			bestDist = d
		}
	}
	return best, best != ""
}

// DisplayName derives a human label from a zone identifier: the last
// path segment with underscores replaced, e.g. "America/New_York" →
// "New York".
func DisplayName(zone string) string {
	parts := strings.Split(zone, "/")
	return strings.ReplaceAll(parts[len(parts)-1], "_", " ")
}

// SuggestionLabel renders a search result the way the picker shows it:
// "City, Region" from the zone path.
func SuggestionLabel(zone string) string {
	parts := strings.Split(zone, "/")
	city := strings.ReplaceAll(parts[len(parts)-1], "_", " ")
	if len(parts) < 2 {
		return city
	}
	region := strings.ReplaceAll(parts[len(parts)-2], "_", " ")
	return city + ", " + region
}
