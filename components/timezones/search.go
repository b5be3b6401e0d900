package timezones

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/choices"
)

// Search filters zones by a case-insensitive substring match, ranking prefix
// matches first. A non-positive limit disables truncation. An empty query
// returns nil.
func Search(zones []string, query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedZone, 0, 32)
	for _, zone := range zones {
		lowerZone := strings.ToLower(zone)
		if !strings.Contains(lowerZone, q) {
			continue
		}
		matches = append(matches, matchedZone{
			name:     zone,
			isPrefix: strings.HasPrefix(lowerZone, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

// Choices converts a zone list into selection options; label and value are
// both the IANA name.
func Choices(zones []string) []choices.Choice {
	if len(zones) == 0 {
		return nil
	}
	out := make([]choices.Choice, 0, len(zones))
	for _, zone := range zones {
		out = append(out, choices.Choice{Label: zone, Value: zone})
	}
	return out
}

type matchedZone struct {
	name     string
	isPrefix bool
}
