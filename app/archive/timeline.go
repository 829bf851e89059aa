package archive

import (
	"regexp"
	"sort"
	"strings"
)

// InlineDescriptionLimit is the character budget for family descriptions
// shown inline on the timeline. The untruncated text stays available in
// FullDescription for the families view.
const InlineDescriptionLimit = 120

var yearPattern = regexp.MustCompile(`\d{4}`)

type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Run merges the static historical event table with per-family events derived
// from each record's time period. Every year present in the static table gets
// a bucket even without family events, and every extracted family year gets a
// bucket even when absent from the static table.
func (a *Assembler) Run(families []*FamilyRecord) map[string]*YearBucket {
	buckets := make(map[string]*YearBucket, len(HistoricalEvents))

	for year, events := range HistoricalEvents {
		buckets[year] = &YearBucket{
			Historical: events,
			Families:   []FamilyTimelineEvent{},
		}
	}

	for _, family := range families {
		if family == nil || family.TimePeriod == "" {
			continue
		}

		// A multi-year range like "1957-1960" is placed at its first
		// mentioned year only.
		year := yearPattern.FindString(family.TimePeriod)
		if year == "" {
			// No extractable year: the record is skipped for timeline
			// purposes but still appears in the families view.
			continue
		}

		bucket, ok := buckets[year]
		if !ok {
			bucket = &YearBucket{
				Historical: []HistoricalEvent{},
				Families:   []FamilyTimelineEvent{},
			}
			buckets[year] = bucket
		}

		bucket.Families = append(bucket.Families, a.familyEvent(family))
	}

	return buckets
}

func (a *Assembler) familyEvent(family *FamilyRecord) FamilyTimelineEvent {
	name := family.FamilyName
	if name == "" {
		name = DefaultFamilyName
	}

	description := family.Description
	if description == "" {
		description = DefaultFamilyDescription
	}

	return FamilyTimelineEvent{
		ID:              "f" + family.ID,
		Family:          name,
		Title:           name + " Integration Experience",
		Description:     TruncateDescription(description),
		FullDescription: description,
		Children:        family.ChildrenNames,
		Location:        family.Location,
		Category:        CategoryFamilyExperience,
		Icon:            "👨‍👩‍👧‍👦",
	}
}

// TruncateDescription cuts text to the inline character budget with an
// ellipsis. Text within budget is returned unchanged.
func TruncateDescription(text string) string {
	runes := []rune(text)
	if len(runes) <= InlineDescriptionLimit {
		return text
	}
	return strings.TrimSpace(string(runes[:InlineDescriptionLimit])) + "..."
}

// Years returns the bucket keys in ascending order.
func Years(buckets map[string]*YearBucket) []string {
	years := make([]string, 0, len(buckets))
	for year := range buckets {
		years = append(years, year)
	}
	sort.Strings(years)
	return years
}

// Flatten turns the bucketed timeline into one event list in presentation
// order: years ascending, historical events before family events within a
// year.
func Flatten(buckets map[string]*YearBucket) []TimelineEvent {
	var events []TimelineEvent

	for _, year := range Years(buckets) {
		bucket := buckets[year]

		for _, e := range bucket.Historical {
			events = append(events, TimelineEvent{
				Year:         year,
				ID:           e.ID,
				Date:         e.Date,
				Title:        e.Title,
				Category:     e.Category,
				Description:  e.Description,
				Significance: e.Significance,
				Icon:         e.Icon,
			})
		}

		for _, e := range bucket.Families {
			events = append(events, TimelineEvent{
				Year:        year,
				ID:          e.ID,
				Title:       e.Title,
				Category:    e.Category,
				Description: e.Description,
				Family:      e.Family,
				Children:    e.Children,
				Location:    e.Location,
				Icon:        e.Icon,
			})
		}
	}

	return events
}
