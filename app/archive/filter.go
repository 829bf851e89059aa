package archive

// Filter values accepted by the timeline category filter in addition to the
// literal categories. "integration-events" is a compound alias covering both
// attempt and success events.
const (
	FilterAll               = "all"
	FilterIntegrationEvents = "integration-events"
)

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run retains the events matching the requested category. "all" is the
// identity filter. Composes with free-text search as a logical AND when the
// caller applies both.
func (f *Filterer) Run(events []TimelineEvent, category string) []TimelineEvent {
	if category == FilterAll || category == "" {
		return events
	}

	filtered := make([]TimelineEvent, 0, len(events))
	for _, event := range events {
		if f.matchesCategory(event.Category, category) {
			filtered = append(filtered, event)
		}
	}

	return filtered
}

func (f *Filterer) matchesCategory(eventCategory Category, requested string) bool {
	if requested == FilterIntegrationEvents {
		return eventCategory == CategoryIntegrationAttempt || eventCategory == CategoryIntegrationSuccess
	}
	return string(eventCategory) == requested
}
