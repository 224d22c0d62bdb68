package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chaekmaru/chaekmaru/internal/classify"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name           string
		ageMonths      int
		expectedNumber int
	}{
		{name: "newborn", ageMonths: 0, expectedNumber: 1},
		{name: "stage one upper boundary", ageMonths: 24, expectedNumber: 1},
		{name: "stage two lower boundary", ageMonths: 25, expectedNumber: 2},
		{name: "stage two upper boundary", ageMonths: 48, expectedNumber: 2},
		{name: "stage three upper boundary", ageMonths: 72, expectedNumber: 3},
		{name: "stage four", ageMonths: 73, expectedNumber: 4},
		{name: "past the table", ageMonths: 200, expectedNumber: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.ageMonths)
			assert.Equal(t, tt.expectedNumber, got.Number)
			assert.NotEmpty(t, got.Label)
		})
	}
}

func TestAll_categoryAffinities(t *testing.T) {
	for _, s := range All() {
		assert.GreaterOrEqual(t, len(s.PrimaryCategories), 2)
		assert.LessOrEqual(t, len(s.PrimaryCategories), 3)
		assert.Len(t, s.SecondaryCategories, 2)

		for _, category := range append(append([]classify.Category{}, s.PrimaryCategories...), s.SecondaryCategories...) {
			assert.True(t, classify.IsValidCategory(category), "stage %d category %q", s.Number, category)
		}
	}
}
