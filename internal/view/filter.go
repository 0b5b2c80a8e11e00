package view

import (
	"strings"

	"github.com/gravitrone/cardlist/internal/catalog"
)

// Filter returns the records with at least one tag title containing term,
// case-insensitively, in dataset order. An empty or whitespace-only term
// returns dataset itself.
func Filter(dataset []catalog.Record, term string) []catalog.Record {
	if strings.TrimSpace(term) == "" {
		return dataset
	}
	needle := strings.ToLower(term)
	out := make([]catalog.Record, 0, len(dataset))
	for _, rec := range dataset {
		if matchesTags(rec.Tags, needle) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesTags(tags catalog.Tags, needle string) bool {
	for _, tag := range tags {
		title := tag.Title()
		if title == "" {
			continue
		}
		if strings.Contains(strings.ToLower(title), needle) {
			return true
		}
	}
	return false
}
