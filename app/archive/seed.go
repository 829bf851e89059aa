package archive

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yml
var seedData []byte

type seedFile struct {
	Families []seedFamily `yaml:"families"`
	Stories  []seedStory  `yaml:"stories"`
}

type seedFamily struct {
	ID            string `yaml:"id"`
	FamilyName    string `yaml:"familyName"`
	TimePeriod    string `yaml:"timePeriod"`
	Location      string `yaml:"location"`
	ChildrenNames string `yaml:"childrenNames"`
	Description   string `yaml:"description"`
}

type seedStory struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Content    string `yaml:"content"`
	StoryType  string `yaml:"storyType"`
	TimePeriod string `yaml:"timePeriod"`
}

// LoadSeed parses the bundled fallback dataset. Substituted for CMS content
// when both collection fetches fail and fallback mode is "seed".
func LoadSeed() ([]*FamilyRecord, []*StoryRecord, error) {
	var parsed seedFile
	if err := yaml.Unmarshal(seedData, &parsed); err != nil {
		return nil, nil, fmt.Errorf("failed to parse seed dataset: %w", err)
	}

	families := make([]*FamilyRecord, 0, len(parsed.Families))
	for _, f := range parsed.Families {
		name := f.FamilyName
		if name == "" {
			name = DefaultFamilyName
		}
		period := f.TimePeriod
		if period == "" {
			period = DefaultTimePeriod
		}

		families = append(families, &FamilyRecord{
			ID:            f.ID,
			FamilyName:    name,
			TimePeriod:    period,
			Location:      f.Location,
			ChildrenNames: f.ChildrenNames,
			Description:   f.Description,
		})
	}

	stories := make([]*StoryRecord, 0, len(parsed.Stories))
	for _, s := range parsed.Stories {
		title := s.Title
		if title == "" {
			title = DefaultStoryTitle
		}
		period := s.TimePeriod
		if period == "" {
			period = DefaultTimePeriod
		}

		stories = append(stories, &StoryRecord{
			ID:         s.ID,
			Title:      title,
			Content:    s.Content,
			StoryType:  s.StoryType,
			TimePeriod: period,
		})
	}

	return families, stories, nil
}
