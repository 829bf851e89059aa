package cms

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hiddenhistories/archive/app/archive"
)

// Decoder normalizes raw CMS payloads into canonical records. Missing fields
// degrade to documented defaults, never to empty holes in the output.
type Decoder struct {
	baseURL string
}

func NewDecoder(baseURL string) *Decoder {
	return &Decoder{baseURL: strings.TrimRight(baseURL, "/")}
}

// DecodeFamilies parses a families collection response body.
func (d *Decoder) DecodeFamilies(body []byte) ([]*archive.FamilyRecord, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse families response: %w", err)
	}

	families := make([]*archive.FamilyRecord, 0, len(env.Data))
	for _, item := range env.Data {
		families = append(families, d.decodeFamily(item))
	}

	return families, nil
}

// DecodeStories parses a stories collection response body.
func (d *Decoder) DecodeStories(body []byte) ([]*archive.StoryRecord, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse stories response: %w", err)
	}

	stories := make([]*archive.StoryRecord, 0, len(env.Data))
	for _, item := range env.Data {
		stories = append(stories, d.decodeStory(item))
	}

	return stories, nil
}

func (d *Decoder) decodeFamily(item rawItem) *archive.FamilyRecord {
	fields, id := pickFields(item)

	record := &archive.FamilyRecord{
		ID:            id,
		FamilyName:    strOr(fields.FamilyName, archive.DefaultFamilyName),
		TimePeriod:    strOr(fields.TimePeriod, archive.DefaultTimePeriod),
		Location:      strOr(fields.Location, ""),
		ChildrenNames: strOr(fields.ChildrenNames, ""),
		Description:   strOr(fields.Description, ""),
	}

	if url := d.ResolveImageURL(fields.FeaturedPhoto); url != "" {
		record.FeaturedPhoto = &archive.ImageRef{
			URL:          url,
			Photographer: strOr(fields.Photographer, ""),
			Source:       strOr(fields.ImageSource, ""),
			Date:         strOr(fields.ImageDate, ""),
			Collection:   strOr(fields.Collection, ""),
			UsageRights:  strOr(fields.UsageRights, ""),
		}
	}

	if fields.PublishedAt != nil {
		if ts, err := time.Parse(time.RFC3339, *fields.PublishedAt); err == nil {
			record.PublishedAt = &ts
		}
	}

	return record
}

func (d *Decoder) decodeStory(item rawItem) *archive.StoryRecord {
	fields, id := pickFields(item)

	return &archive.StoryRecord{
		ID:         id,
		Title:      strOr(fields.Title, archive.DefaultStoryTitle),
		Content:    strOr(fields.Content, ""),
		StoryType:  strOr(fields.StoryType, ""),
		TimePeriod: strOr(fields.TimePeriod, archive.DefaultTimePeriod),
	}
}

// pickFields selects the layout an item uses, in priority order: root fields,
// then "attributes", then the legacy "data.attributes". An item matching none
// of them decodes to all defaults rather than being dropped.
func pickFields(item rawItem) (*rawFields, string) {
	if item.rawFields.present() {
		return &item.rawFields, item.ID.String()
	}

	if item.Attributes != nil && item.Attributes.present() {
		return item.Attributes, item.ID.String()
	}

	if item.Data != nil && item.Data.Attributes != nil && item.Data.Attributes.present() {
		id := item.Data.ID.String()
		if id == "" {
			id = item.ID.String()
		}
		return item.Data.Attributes, id
	}

	return &rawFields{}, item.ID.String()
}

// Image wire shapes, probed in order: array of image objects (first element
// wins), data.attributes.url, attributes.url, bare url.

type rawImage struct {
	URL string `json:"url"`
}

type wrappedImage struct {
	URL        string `json:"url"`
	Attributes *rawImage `json:"attributes"`
	Data       *struct {
		Attributes *rawImage `json:"attributes"`
	} `json:"data"`
}

// ResolveImageURL extracts one absolute image URL from whichever image shape
// the CMS returned, or "" when no recognizable shape is present. A relative
// path is prefixed with the configured CMS origin.
func (d *Decoder) ResolveImageURL(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var url string

	var list []rawImage
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		url = list[0].URL
	} else {
		var wrapped wrappedImage
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return ""
		}
		switch {
		case wrapped.Data != nil && wrapped.Data.Attributes != nil && wrapped.Data.Attributes.URL != "":
			url = wrapped.Data.Attributes.URL
		case wrapped.Attributes != nil && wrapped.Attributes.URL != "":
			url = wrapped.Attributes.URL
		default:
			url = wrapped.URL
		}
	}

	if url == "" {
		return ""
	}

	if strings.HasPrefix(url, "http") {
		return url
	}

	return d.baseURL + url
}
