package archive

import (
	"testing"
)

func filterTestEvents() []TimelineEvent {
	return []TimelineEvent{
		{ID: "e1", Category: CategoryLegalMilestone},
		{ID: "e2", Category: CategoryIntegrationAttempt},
		{ID: "e3", Category: CategoryIntegrationSuccess},
		{ID: "e4", Category: CategoryFamilyExperience},
		{ID: "e5", Category: CategoryGovernmentResistance},
		{ID: "e6", Category: CategoryIntegrationAttempt},
	}
}

func TestFilterer_AllIsIdentity(t *testing.T) {
	filterer := NewFilterer()
	events := filterTestEvents()

	result := filterer.Run(events, FilterAll)
	if len(result) != len(events) {
		t.Errorf("Expected %d events, got %d", len(events), len(result))
	}
}

func TestFilterer_LiteralCategory(t *testing.T) {
	filterer := NewFilterer()
	events := filterTestEvents()

	result := filterer.Run(events, "family-experience")
	if len(result) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(result))
	}
	if result[0].ID != "e4" {
		t.Errorf("Expected event e4, got %s", result[0].ID)
	}
}

func TestFilterer_IntegrationEventsAliasUnion(t *testing.T) {
	filterer := NewFilterer()
	events := filterTestEvents()

	result := filterer.Run(events, FilterIntegrationEvents)

	attempts := filterer.Run(events, string(CategoryIntegrationAttempt))
	successes := filterer.Run(events, string(CategoryIntegrationSuccess))

	if len(result) != len(attempts)+len(successes) {
		t.Fatalf("Alias should equal union of attempt and success sets: got %d, want %d",
			len(result), len(attempts)+len(successes))
	}

	for _, event := range result {
		if event.Category != CategoryIntegrationAttempt && event.Category != CategoryIntegrationSuccess {
			t.Errorf("Event %s has unexpected category %s", event.ID, event.Category)
		}
	}
}

func TestFilterer_NoMatches(t *testing.T) {
	filterer := NewFilterer()
	events := filterTestEvents()

	result := filterer.Run(events, "graduation")
	if len(result) != 0 {
		t.Errorf("Expected no events, got %d", len(result))
	}
}

func TestFilterer_ComposesWithSearch(t *testing.T) {
	searcher := NewSearcher()
	filterer := NewFilterer()

	families := []*FamilyRecord{
		{ID: "1", FamilyName: "Eckford", TimePeriod: "1957"},
	}
	buckets := NewAssembler().Run(families)

	// Search for 1957 events, then narrow to family experiences: logical AND.
	searched := searcher.Run("1957", families, nil, buckets)
	narrowed := filterer.Run(searched.Timeline, "family-experience")

	if len(narrowed) == 0 {
		t.Fatal("Expected family-experience events from 1957")
	}
	for _, event := range narrowed {
		if event.Category != CategoryFamilyExperience {
			t.Errorf("Event %s should be family-experience, got %s", event.ID, event.Category)
		}
		if event.Year != "1957" {
			t.Errorf("Event %s should be from 1957, got %s", event.ID, event.Year)
		}
	}
}
