package chat

import (
	"fmt"
	"strings"

	"github.com/hiddenhistories/archive/app/archive"
)

// Digest caps. The builder sends bounded summaries to the completion API,
// never the full dataset, to bound token usage and cost.
const (
	MaxFamilySummaries = 15
	MaxTimelineYears   = 5
	MaxEventsPerYear   = 2
	MaxHistoryMessages = 6
)

// FallbackMessage is returned to the user whenever the completion API fails.
// The assistant never fabricates an answer.
const FallbackMessage = "I'm having trouble connecting right now. Please try asking your question again, or explore the family profiles directly on the site. If the problem persists, you can browse the Timeline and Family Stories sections for detailed information."

// ContextBuilder assembles the bounded natural-language digest that
// accompanies each question sent to the completion API.
type ContextBuilder struct{}

func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{}
}

// FamilySummary renders at most MaxFamilySummaries families as one line each.
func (b *ContextBuilder) FamilySummary(families []*archive.FamilyRecord) string {
	if len(families) == 0 {
		return "Families are being loaded from the archive..."
	}

	limit := len(families)
	if limit > MaxFamilySummaries {
		limit = MaxFamilySummaries
	}

	lines := make([]string, 0, limit)
	for _, family := range families[:limit] {
		name := family.FamilyName
		if name == "" {
			name = archive.DefaultFamilyName
		}
		period := family.TimePeriod
		if period == "" {
			period = archive.DefaultTimePeriod
		}

		line := fmt.Sprintf("• %s (%s)", name, period)
		if family.ChildrenNames != "" {
			line += " - Children: " + family.ChildrenNames
		}
		if family.Location != "" {
			line += " - " + family.Location
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// TimelineSummary renders up to MaxEventsPerYear headline events for each of
// the first MaxTimelineYears years.
func (b *ContextBuilder) TimelineSummary(buckets map[string]*archive.YearBucket) string {
	if len(buckets) == 0 {
		return "Timeline events are being loaded..."
	}

	var lines []string

	years := archive.Years(buckets)
	if len(years) > MaxTimelineYears {
		years = years[:MaxTimelineYears]
	}

	for _, year := range years {
		bucket := buckets[year]
		if bucket == nil || len(bucket.Historical) == 0 {
			continue
		}

		events := bucket.Historical
		if len(events) > MaxEventsPerYear {
			events = events[:MaxEventsPerYear]
		}
		for _, event := range events {
			lines = append(lines, fmt.Sprintf("• %s: %s", year, event.Title))
		}
	}

	if len(lines) == 0 {
		return "Major events from 1954-1960 integration crisis"
	}

	return strings.Join(lines, "\n")
}

// SystemPrompt assembles the assistant persona with the archive digest.
func (b *ContextBuilder) SystemPrompt(snap *archive.Snapshot) string {
	return fmt.Sprintf(`You are Dr. Archives, the Family Stories Guide for the Little Rock School Integration Crisis digital archive (1957-1960).

ABOUT YOU:
You help users explore family experiences during the Little Rock integration crisis through personal stories, photographs, and documents from our archive.

YOUR KNOWLEDGE BASE:
You have access to detailed information about %d families affected by the integration crisis, including the Little Rock Nine and their families, second-wave students and their families, siblings, parents, and extended family members, and a timeline of historical events from 1954-1960.

AVAILABLE FAMILIES:
%s

KEY TIMELINE EVENTS:
%s

RESPONSE GUIDELINES:
1. Always cite specific families when answering
2. Be conversational but academically accurate
3. If information isn't in the archive, acknowledge the gap honestly
4. Distinguish between documented facts and interpretations
5. When asked about families, provide 2-3 sentence summaries (not full profiles)
6. Remind users that for academic research, they should verify responses against primary sources
7. Keep responses concise and engaging (2-4 paragraphs maximum)
8. Use the exact names and details from the archive provided

TONE: Professional, warm, educational. You're a knowledgeable guide, not a robotic database.`,
		len(snap.Families),
		b.FamilySummary(snap.Families),
		b.TimelineSummary(snap.Timeline))
}

// Messages builds the outgoing message array: the trailing history window in
// chronological order, then the current question.
func (b *ContextBuilder) Messages(history []Message, question string) []apiMessage {
	recent := history
	if len(recent) > MaxHistoryMessages {
		recent = recent[len(recent)-MaxHistoryMessages:]
	}

	messages := make([]apiMessage, 0, len(recent)+1)
	for _, msg := range recent {
		role := string(msg.Role)
		if role != string(RoleUser) && role != string(RoleAssistant) {
			continue
		}
		messages = append(messages, apiMessage{Role: role, Content: msg.Content})
	}

	messages = append(messages, apiMessage{Role: string(RoleUser), Content: question})

	return messages
}
