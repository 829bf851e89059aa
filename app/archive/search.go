package archive

import (
	"strings"

	"golang.org/x/text/cases"
)

// Searcher matches a free-text query against the archive collections using
// case-insensitive substring containment over a fixed field set per entity
// type. No tokenization, no fuzziness.
type Searcher struct{}

func NewSearcher() *Searcher {
	return &Searcher{}
}

// Run evaluates one query against the snapshot collections. A blank or
// whitespace-only query deactivates search and yields empty result sets; a
// legitimate zero-match query is still active. Result slices reference the
// input records.
func (s *Searcher) Run(query string, families []*FamilyRecord, stories []*StoryRecord, buckets map[string]*YearBucket) SearchResults {
	results := SearchResults{
		Families: []*FamilyRecord{},
		Stories:  []*StoryRecord{},
		Timeline: []TimelineEvent{},
	}

	if strings.TrimSpace(query) == "" {
		return results
	}

	// cases.Caser carries internal state, so each Run gets its own.
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))

	results.Active = true

	for _, family := range families {
		if family == nil {
			continue
		}
		if containsAny(fold, needle,
			family.FamilyName,
			family.ChildrenNames,
			family.Description,
			family.Location,
			family.TimePeriod,
		) {
			results.Families = append(results.Families, family)
		}
	}

	for _, story := range stories {
		if story == nil {
			continue
		}
		if containsAny(fold, needle,
			story.Title,
			story.Content,
			story.StoryType,
			story.TimePeriod,
		) {
			results.Stories = append(results.Stories, story)
		}
	}

	for _, event := range Flatten(buckets) {
		if containsAny(fold, needle,
			event.Title,
			event.Description,
			event.Family,
			event.Children,
			event.Location,
			event.Year,
		) {
			results.Timeline = append(results.Timeline, event)
		}
	}

	return results
}

func containsAny(fold cases.Caser, needle string, fields ...string) bool {
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}
