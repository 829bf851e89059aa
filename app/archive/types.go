package archive

import (
	"time"
)

// Canonical record types. Records are created once by the CMS decoder (or the
// bundled seed) and are read-only afterwards; every consumer shares the same
// snapshot.

type Category string

const (
	CategoryLegalMilestone       Category = "legal-milestone"
	CategoryGovernmentResistance Category = "government-resistance"
	CategoryIntegrationAttempt   Category = "integration-attempt"
	CategoryFederalIntervention  Category = "federal-intervention"
	CategoryIntegrationSuccess   Category = "integration-success"
	CategoryFamilyExperience     Category = "family-experience"
	CategoryGraduation           Category = "graduation"
)

// Defaults substituted for absent CMS fields. Missing data never surfaces as
// an empty hole in the API output.
const (
	DefaultFamilyName        = "Unknown Family"
	DefaultTimePeriod        = "Unknown Period"
	DefaultStoryTitle        = "Untitled Story"
	DefaultFamilyDescription = "Family experience during integration"
)

// ImageRef is one resolved archive photograph with its attribution metadata.
type ImageRef struct {
	URL          string `json:"url"`
	Photographer string `json:"photographer,omitempty"`
	Source       string `json:"source,omitempty"`
	Date         string `json:"date,omitempty"`
	Collection   string `json:"collection,omitempty"`
	UsageRights  string `json:"usageRights,omitempty"`
}

// FamilyRecord is one documented family unit.
type FamilyRecord struct {
	ID            string     `json:"id"`
	FamilyName    string     `json:"familyName"`
	TimePeriod    string     `json:"timePeriod"`
	Location      string     `json:"location"`
	ChildrenNames string     `json:"childrenNames"`
	Description   string     `json:"description"`
	FeaturedPhoto *ImageRef  `json:"featuredPhoto,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
}

// StoryRecord is one individual narrative account.
type StoryRecord struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	StoryType  string `json:"storyType"`
	TimePeriod string `json:"timePeriod"`
}

// HistoricalEvent is a hand-authored milestone. The full set is fixed at
// build time in events.go.
type HistoricalEvent struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Title        string   `json:"title"`
	Category     Category `json:"category"`
	Description  string   `json:"description"`
	Significance string   `json:"significance"`
	Icon         string   `json:"icon"`
}

// FamilyTimelineEvent is synthesized from a FamilyRecord for the first
// 4-digit year found in its time period. Never stored, only derived.
type FamilyTimelineEvent struct {
	ID              string   `json:"id"`
	Family          string   `json:"family"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Children        string   `json:"children"`
	Location        string   `json:"location"`
	Category        Category `json:"category"`
	Icon            string   `json:"icon"`
}

// YearBucket aggregates the events of one year. Historical events keep
// authoring order, family events keep input order.
type YearBucket struct {
	Historical []HistoricalEvent     `json:"historical"`
	Families   []FamilyTimelineEvent `json:"families"`
}

// TimelineEvent is the flattened view of a bucket entry used by the search
// and filter engines, carrying the bucket year alongside the event fields.
type TimelineEvent struct {
	Year         string   `json:"year"`
	ID           string   `json:"id"`
	Date         string   `json:"date,omitempty"`
	Title        string   `json:"title"`
	Category     Category `json:"category"`
	Description  string   `json:"description"`
	Significance string   `json:"significance,omitempty"`
	Family       string   `json:"family,omitempty"`
	Children     string   `json:"children,omitempty"`
	Location     string   `json:"location,omitempty"`
	Icon         string   `json:"icon,omitempty"`
}

// SearchResults holds the matched subsets for one query. The slices reference
// the snapshot's records, they are never mutated copies.
type SearchResults struct {
	Active   bool            `json:"active"`
	Families []*FamilyRecord `json:"families"`
	Stories  []*StoryRecord  `json:"stories"`
	Timeline []TimelineEvent `json:"timeline"`
}
