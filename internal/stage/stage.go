// Package stage maps a child age in months to one of four developmental
// stages, each carrying category affinities used by the shelf composer.
package stage

import "github.com/chaekmaru/chaekmaru/internal/classify"

// Stage is a fixed developmental stage with its category affinities.
type Stage struct {
	Number              int
	Label               string
	Description         string
	MinMonths           int
	MaxMonths           int
	PrimaryCategories   []classify.Category
	SecondaryCategories []classify.Category
}

// The stage table is static configuration, never mutated at runtime.
var stages = []Stage{
	{
		Number:      1,
		Label:       "영아기",
		Description: "감각 자극과 첫 애착 형성에 집중하는 시기",
		MinMonths:   0,
		MaxMonths:   24,
		PrimaryCategories: []classify.Category{
			classify.CategoryCommunication,
			classify.CategoryPhysical,
		},
		SecondaryCategories: []classify.Category{
			classify.CategoryHabit,
			classify.CategoryArt,
		},
	},
	{
		Number:      2,
		Label:       "유아 전기",
		Description: "말문이 트이고 생활 습관을 익히는 시기",
		MinMonths:   25,
		MaxMonths:   48,
		PrimaryCategories: []classify.Category{
			classify.CategoryCommunication,
			classify.CategoryHabit,
			classify.CategorySocial,
		},
		SecondaryCategories: []classify.Category{
			classify.CategoryNature,
			classify.CategoryArt,
		},
	},
	{
		Number:      3,
		Label:       "유아 후기",
		Description: "호기심이 바깥 세상으로 뻗어나가는 시기",
		MinMonths:   49,
		MaxMonths:   72,
		PrimaryCategories: []classify.Category{
			classify.CategoryNature,
			classify.CategorySocial,
			classify.CategoryCognitive,
		},
		SecondaryCategories: []classify.Category{
			classify.CategoryCommunication,
			classify.CategoryArt,
		},
	},
	{
		Number:      4,
		Label:       "학령 전환기",
		Description: "학습 기초와 또래 관계를 다지는 시기",
		MinMonths:   73,
		MaxMonths:   96,
		PrimaryCategories: []classify.Category{
			classify.CategoryCognitive,
			classify.CategoryNature,
			classify.CategorySocial,
		},
		SecondaryCategories: []classify.Category{
			classify.CategoryCommunication,
			classify.CategoryIntegrated,
		},
	},
}

// Match resolves an age in months to its developmental stage. Ages past the
// last boundary resolve to the final stage.
func Match(ageMonths int) Stage {
	switch {
	case ageMonths <= 24:
		return stages[0]
	case ageMonths <= 48:
		return stages[1]
	case ageMonths <= 72:
		return stages[2]
	default:
		return stages[3]
	}
}

// All returns every stage in order.
func All() []Stage {
	result := make([]Stage, len(stages))
	copy(result, stages)
	return result
}
