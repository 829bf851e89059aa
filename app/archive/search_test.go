package archive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testCollections() ([]*FamilyRecord, []*StoryRecord, map[string]*YearBucket) {
	families := []*FamilyRecord{
		{
			ID:            "1",
			FamilyName:    "Thomas",
			ChildrenNames: "Elizabeth Eckford",
			Description:   "A working-class family of six children.",
			Location:      "Little Rock, Arkansas",
			TimePeriod:    "1957-1960",
		},
		{
			ID:          "2",
			FamilyName:  "Mothershed",
			Description: "Family conference over a cardiac condition.",
			TimePeriod:  "1957-1959",
		},
	}

	stories := []*StoryRecord{
		{ID: "s1", Title: "The Walk to Central High", Content: "September 4, 1957 account.", StoryType: "oral-history", TimePeriod: "1957"},
		{ID: "s2", Title: "The Lost Year", Content: "Schools closed for a year.", StoryType: "family-account", TimePeriod: "1958-1959"},
	}

	buckets := NewAssembler().Run(families)

	return families, stories, buckets
}

func TestSearcher_EmptyQueryIsInactive(t *testing.T) {
	searcher := NewSearcher()
	families, stories, buckets := testCollections()

	for _, query := range []string{"", "   ", "\t\n"} {
		results := searcher.Run(query, families, stories, buckets)
		require.False(t, results.Active, "query %q must be inactive", query)
		require.Empty(t, results.Families)
		require.Empty(t, results.Stories)
		require.Empty(t, results.Timeline)
	}
}

func TestSearcher_ZeroMatchQueryStillActive(t *testing.T) {
	searcher := NewSearcher()
	families, stories, buckets := testCollections()

	results := searcher.Run("zzzzqqqq", families, stories, buckets)
	require.True(t, results.Active)
	require.Empty(t, results.Families)
	require.Empty(t, results.Stories)
	require.Empty(t, results.Timeline)
}

func TestSearcher_MatchesFamilyByChildrenNames(t *testing.T) {
	searcher := NewSearcher()
	families, stories, buckets := testCollections()

	// "Eckford" appears only in childrenNames; the family name is Thomas.
	results := searcher.Run("eckford", families, stories, buckets)
	require.True(t, results.Active)
	require.Len(t, results.Families, 1)
	require.Equal(t, "Thomas", results.Families[0].FamilyName)
}

func TestSearcher_CaseInsensitiveSubstring(t *testing.T) {
	searcher := NewSearcher()
	families, stories, buckets := testCollections()

	for _, query := range []string{"MOTHERSHED", "mothershed", "MotherShed", "thersh"} {
		results := searcher.Run(query, families, stories, buckets)
		require.Len(t, results.Families, 1, "query %q", query)
		require.Equal(t, "Mothershed", results.Families[0].FamilyName)
	}
}

func TestSearcher_MatchesStoryFields(t *testing.T) {
	searcher := NewSearcher()
	families, stories, buckets := testCollections()

	byTitle := searcher.Run("central high", families, stories, buckets)
	require.Len(t, byTitle.Stories, 1)
	require.Equal(t, "s1", byTitle.Stories[0].ID)

	byType := searcher.Run("oral-history", families, stories, buckets)
	require.Len(t, byType.Stories, 1)
	require.Equal(t, "s1", byType.Stories[0].ID)
}

func TestSearcher_MatchesTimelineByYear(t *testing.T) {
	searcher := NewSearcher()
	families, stories, buckets := testCollections()

	results := searcher.Run("1954", families, stories, buckets)
	require.NotEmpty(t, results.Timeline)
	for _, event := range results.Timeline {
		require.Equal(t, "1954", event.Year)
	}
}

func TestSearcher_MatchesTimelineFamilyEvent(t *testing.T) {
	searcher := NewSearcher()
	families, stories, buckets := testCollections()

	results := searcher.Run("thomas", families, stories, buckets)

	var found bool
	for _, event := range results.Timeline {
		if event.ID == "f1" {
			found = true
			require.Equal(t, "Thomas", event.Family)
		}
	}
	require.True(t, found, "expected synthesized family event to match")
}

func TestSearcher_ResultsReferenceSnapshotRecords(t *testing.T) {
	searcher := NewSearcher()
	families, stories, buckets := testCollections()

	results := searcher.Run("mothershed", families, stories, buckets)
	require.Len(t, results.Families, 1)
	require.Same(t, families[1], results.Families[0])
}

func TestSearcher_WhitespaceAroundQueryIsTrimmed(t *testing.T) {
	searcher := NewSearcher()
	families, stories, buckets := testCollections()

	results := searcher.Run("  eckford  ", families, stories, buckets)
	require.True(t, results.Active)
	require.Len(t, results.Families, 1)
}
