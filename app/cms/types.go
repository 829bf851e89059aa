package cms

import (
	"encoding/json"
	"strings"

	"github.com/hiddenhistories/archive/app/archive"
)

// Raw CMS wire shapes. The CMS has returned records in three layouts over
// its lifetime: fields flattened at the item root, fields under an
// "attributes" wrapper, and a legacy layout with the payload under
// "data.attributes". The decoder probes them in that priority order.

type envelope struct {
	Data []rawItem `json:"data"`
}

type rawItem struct {
	ID         flexID     `json:"id"`
	DocumentID string     `json:"documentId"`
	rawFields
	Attributes *rawFields `json:"attributes"`
	Data       *struct {
		ID         flexID     `json:"id"`
		Attributes *rawFields `json:"attributes"`
	} `json:"data"`
}

// rawFields carries every payload field any of the three layouts may hold,
// for both families and stories. Pointers distinguish absent from empty.
type rawFields struct {
	// Family fields
	FamilyName    *string         `json:"familyName"`
	TimePeriod    *string         `json:"timePeriod"`
	Location      *string         `json:"location"`
	ChildrenNames *string         `json:"childrenNames"`
	Description   *string         `json:"description"`
	FeaturedPhoto json.RawMessage `json:"featuredPhoto"`
	ImageSource   *string         `json:"imageSource"`
	Photographer  *string         `json:"photographer"`
	ImageDate     *string         `json:"imageDate"`
	Collection    *string         `json:"collection"`
	UsageRights   *string         `json:"usageRights"`
	PublishedAt   *string         `json:"publishedAt"`

	// Story fields
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	StoryType *string `json:"storyType"`
}

// present reports whether any recognizable payload field was decoded, which
// is how the decoder detects which layout an item uses.
func (f *rawFields) present() bool {
	return f.FamilyName != nil || f.TimePeriod != nil || f.Description != nil ||
		f.Title != nil || f.Content != nil
}

// flexID accepts both numeric and string identifiers.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*id = ""
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = flexID(n.String())
	return nil
}

func (id flexID) String() string {
	return string(id)
}

// FetchResult is the gateway's only output shape. Failures are folded into
// the degradation level and notice, never propagated as errors.
type FetchResult struct {
	Families    []*archive.FamilyRecord
	Stories     []*archive.StoryRecord
	Degradation archive.Degradation
	Notice      string
}

func strOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
