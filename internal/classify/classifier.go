package classify

import (
	"fmt"
	"sort"
	"strings"
)

// Result is the structured classification derived from free-text metadata.
// Classification is deterministic: the same (text, category) input always
// produces the same Result.
type Result struct {
	Areas           []Area   `json:"areas"`
	SubCompetencies []string `json:"sub_competencies"`
	Tags            []string `json:"tags"`
	Form            Form     `json:"form"`
	IsWorkbook      bool     `json:"is_workbook"`
	MinAgeMonths    int      `json:"min_age_months"`
	MaxAgeMonths    int      `json:"max_age_months"`
	EnergyLevel     int      `json:"energy_level"`
	Volume          *int     `json:"volume,omitempty"`
	Blurb           string   `json:"blurb"`
}

const (
	competencyScore    = 2
	areaScoreThreshold = 2

	energyBaseline    = 5
	energyPerKeyword  = 2
	energyFormBonus   = 2
	energyMin         = 0
	energyMax         = 10
	longDescThreshold = 150
)

// Classifier maps free text and a raw category label onto the developmental
// taxonomy. It holds only the immutable rule table, never network access.
type Classifier struct {
	rules *RuleSet
}

// NewClassifier creates a classifier over the embedded default rule table.
func NewClassifier() *Classifier {
	return NewClassifierWithRules(DefaultRules())
}

// NewClassifierWithRules creates a classifier over an injected rule table.
func NewClassifierWithRules(rules *RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// Classify derives a classification from free text and a raw category label.
// Matching is case-insensitive substring matching; failure to match anything
// yields the defaults (no areas, hardcover, 48-84 months, energy 5).
func (c *Classifier) Classify(text, categoryLabel string) Result {
	loweredText := strings.ToLower(text)
	loweredBoth := loweredText + " " + strings.ToLower(categoryLabel)

	areas, competencies, tags := c.scoreAreas(loweredBoth)

	isWorkbook := containsAny(loweredBoth, c.rules.WorkbookKeywords)
	form := c.detectForm(loweredBoth)
	minMonths, maxMonths := c.estimateAgeRange(loweredText, text, isWorkbook, form)
	energy := c.estimateEnergy(loweredText, form)
	volume := ExtractVolume(text)

	return Result{
		Areas:           areas,
		SubCompetencies: competencies,
		Tags:            tags,
		Form:            form,
		IsWorkbook:      isWorkbook,
		MinAgeMonths:    minMonths,
		MaxAgeMonths:    maxMonths,
		EnergyLevel:     energy,
		Volume:          volume,
		Blurb:           buildBlurb(competencies, areas, minMonths, maxMonths, isWorkbook),
	}
}

// scoreAreas accumulates +2 per matched competency into its parent area and
// keeps areas reaching the threshold, ordered by score descending with ties
// broken by rule-table order.
func (c *Classifier) scoreAreas(loweredText string) ([]Area, []string, []string) {
	type scoredArea struct {
		area  Area
		score int
		order int
	}

	var scored []scoredArea
	var competencies []string
	var tags []string
	seenTags := map[string]bool{}

	for order, areaRule := range c.rules.Areas {
		score := 0
		for _, competency := range areaRule.Competencies {
			matched := false
			for _, keyword := range competency.Keywords {
				if strings.Contains(loweredText, strings.ToLower(keyword)) {
					matched = true
					if !seenTags[keyword] {
						seenTags[keyword] = true
						tags = append(tags, keyword)
					}
				}
			}
			if matched {
				score += competencyScore
				competencies = append(competencies, competency.Name)
			}
		}
		if score >= areaScoreThreshold {
			scored = append(scored, scoredArea{area: areaRule.Area, score: score, order: order})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].order < scored[j].order
	})

	areas := make([]Area, 0, len(scored))
	for _, s := range scored {
		areas = append(areas, s.area)
	}
	return areas, competencies, tags
}

func (c *Classifier) detectForm(loweredText string) Form {
	switch {
	case containsAny(loweredText, c.rules.SoundKeywords):
		return FormSound
	case containsAny(loweredText, c.rules.FlapKeywords):
		return FormFlap
	case containsAny(loweredText, c.rules.BoardKeywords):
		return FormBoard
	default:
		return FormHardcover
	}
}

// estimateAgeRange runs the priority cascade: school keywords beat the
// workbook flag, which beats the physical-form branch.
func (c *Classifier) estimateAgeRange(loweredText, text string, isWorkbook bool, form Form) (int, int) {
	if containsAny(loweredText, c.rules.SchoolKeywords) {
		return 84, 120
	}
	if isWorkbook {
		return 48, 84
	}
	switch form {
	case FormBoard:
		return 0, 24
	case FormFlap:
		return 12, 36
	}
	if len([]rune(text)) < longDescThreshold {
		return 24, 48
	}
	return 48, 84
}

func (c *Classifier) estimateEnergy(loweredText string, form Form) int {
	energy := energyBaseline
	energy += energyPerKeyword * countMatches(loweredText, c.rules.ActiveKeywords)
	if form == FormSound || form == FormFlap {
		energy += energyFormBonus
	}
	if energy < energyMin {
		return energyMin
	}
	if energy > energyMax {
		return energyMax
	}
	return energy
}

// buildBlurb selects the first competency, falling back to the first area,
// then a generic template.
func buildBlurb(competencies []string, areas []Area, minMonths, maxMonths int, isWorkbook bool) string {
	topic := ""
	if len(competencies) > 0 {
		topic = competencies[0]
	} else if len(areas) > 0 {
		topic = string(areas[0])
	}

	kind := "도서"
	if isWorkbook {
		kind = "워크북"
	}
	if topic == "" {
		return fmt.Sprintf("%d~%d개월 아이와 함께 보기 좋은 %s", minMonths, maxMonths, kind)
	}
	return fmt.Sprintf("%s 발달을 돕는 %d~%d개월 추천 %s", topic, minMonths, maxMonths, kind)
}
