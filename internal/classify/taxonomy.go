// Package classify maps free-text book metadata into the developmental
// taxonomy used across the curation engine.
package classify

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Area is one of the seven developmental areas books are tagged with.
type Area string

const (
	AreaCommunication Area = "의사소통"
	AreaSocial        Area = "사회관계"
	AreaNature        Area = "자연탐구"
	AreaArt           Area = "예술경험"
	AreaPhysical      Area = "신체운동"
	AreaHabit         Area = "기본생활"
	AreaCognitive     Area = "인지발달"
)

// AllAreas lists every developmental area in rule-table order.
func AllAreas() []Area {
	return []Area{
		AreaCommunication,
		AreaSocial,
		AreaNature,
		AreaArt,
		AreaPhysical,
		AreaHabit,
		AreaCognitive,
	}
}

// IsValidArea reports whether a is a member of the closed area taxonomy.
func IsValidArea(a Area) bool {
	for _, known := range AllAreas() {
		if a == known {
			return true
		}
	}
	return false
}

// Category is the closed taxonomy collection records are shelved under.
// It is the area set plus an explicit fallback for unknown labels.
type Category string

const (
	CategoryCommunication Category = Category(AreaCommunication)
	CategorySocial        Category = Category(AreaSocial)
	CategoryNature        Category = Category(AreaNature)
	CategoryArt           Category = Category(AreaArt)
	CategoryPhysical      Category = Category(AreaPhysical)
	CategoryHabit         Category = Category(AreaHabit)
	CategoryCognitive     Category = Category(AreaCognitive)
	CategoryIntegrated    Category = "통합"
)

// AllCategories lists every shelf category, the fallback last.
func AllCategories() []Category {
	return []Category{
		CategoryCommunication,
		CategorySocial,
		CategoryNature,
		CategoryArt,
		CategoryPhysical,
		CategoryHabit,
		CategoryCognitive,
		CategoryIntegrated,
	}
}

// IsValidCategory reports whether c is a member of the closed category taxonomy.
func IsValidCategory(c Category) bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Form is the physical form of a book.
type Form string

const (
	FormBoard     Form = "보드북"
	FormFlap      Form = "플랩북"
	FormSound     Form = "사운드북"
	FormHardcover Form = "양장"
)

//go:embed rules.yaml
var rulesYAML []byte

// Competency is a fine-grained skill with its trigger keywords.
type Competency struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// AreaRule groups the competencies that roll up into one developmental area.
type AreaRule struct {
	Area         Area         `yaml:"area"`
	Competencies []Competency `yaml:"competencies"`
}

// RuleSet is the full static rule table consumed by the classifier and the
// feature detectors. Loaded once at process start and never mutated.
type RuleSet struct {
	Areas            []AreaRule          `yaml:"areas"`
	BoardKeywords    []string            `yaml:"board"`
	FlapKeywords     []string            `yaml:"flap"`
	SoundKeywords    []string            `yaml:"sound"`
	WorkbookKeywords []string            `yaml:"workbook"`
	SchoolKeywords   []string            `yaml:"school"`
	ActiveKeywords   []string            `yaml:"active"`
	PenKeywords      []string            `yaml:"pen"`
	HardwareFeatures map[string][]string `yaml:"hardware"`
	CategoryLabels   []CategoryLabelRule `yaml:"category_labels"`
}

// CategoryLabelRule maps a raw catalog label marker to a shelf category.
// Rules are evaluated in table order so tagging stays deterministic.
type CategoryLabelRule struct {
	Marker   string   `yaml:"marker"`
	Category Category `yaml:"category"`
}

var defaultRules = mustLoadRules(rulesYAML)

// DefaultRules returns the embedded rule table.
func DefaultRules() *RuleSet {
	return defaultRules
}

func mustLoadRules(raw []byte) *RuleSet {
	rules, err := LoadRules(raw)
	if err != nil {
		panic(err)
	}
	return rules
}

// LoadRules parses a YAML rule table and validates its taxonomy membership.
func LoadRules(raw []byte) (*RuleSet, error) {
	var rules RuleSet
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	if len(rules.Areas) == 0 {
		return nil, fmt.Errorf("rule table has no area rules")
	}
	for _, areaRule := range rules.Areas {
		if !IsValidArea(areaRule.Area) {
			return nil, fmt.Errorf("unknown area %q in rule table", areaRule.Area)
		}
		for _, competency := range areaRule.Competencies {
			if len(competency.Keywords) == 0 {
				return nil, fmt.Errorf("competency %q has no keywords", competency.Name)
			}
		}
	}
	for _, labelRule := range rules.CategoryLabels {
		if !IsValidCategory(labelRule.Category) {
			return nil, fmt.Errorf("label %q maps to unknown category %q", labelRule.Marker, labelRule.Category)
		}
	}
	return &rules, nil
}

// CategoryFromLabel resolves a raw catalog category label to the closed shelf
// taxonomy. Unknown labels resolve to the integrated fallback, never an error.
func (r *RuleSet) CategoryFromLabel(label string) Category {
	lowered := strings.ToLower(label)
	for _, labelRule := range r.CategoryLabels {
		if strings.Contains(lowered, strings.ToLower(labelRule.Marker)) {
			return labelRule.Category
		}
	}
	return CategoryIntegrated
}

// containsAny reports whether any keyword occurs in the lowered haystack.
func containsAny(loweredText string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(loweredText, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// countMatches counts how many keywords occur at least once in the haystack.
func countMatches(loweredText string, keywords []string) int {
	matched := 0
	for _, keyword := range keywords {
		if strings.Contains(loweredText, strings.ToLower(keyword)) {
			matched++
		}
	}
	return matched
}
