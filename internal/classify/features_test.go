package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_DetectPenCompatible(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "seypen marker",
			text:     "세이펜 호환 전집",
			expected: true,
		},
		{
			name:     "talking pen marker",
			text:     "말하는펜이 포함된 구성",
			expected: true,
		},
		{
			name:     "no marker",
			text:     "평범한 그림책",
			expected: false,
		},
	}

	classifier := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.DetectPenCompatible(tt.text))
		})
	}
}

func TestClassifier_DetectHardwareFeatures(t *testing.T) {
	classifier := NewClassifier()

	features := classifier.DetectHardwareFeatures("세이펜 호환 사운드북, 플랩과 팝업 구성")
	assert.True(t, features[FeaturePenCompatible])
	assert.True(t, features["사운드"])
	assert.True(t, features["플랩"])
	assert.True(t, features["팝업"])
	assert.NotContains(t, features, "퍼즐")

	assert.Empty(t, classifier.DetectHardwareFeatures("아무 기능 없는 책"))
}

func TestClassifier_TagCategory(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected Category
	}{
		{
			name:     "nature observation label",
			label:    "유아 > 전집 > 자연관찰",
			expected: CategoryNature,
		},
		{
			name:     "picture book label",
			label:    "유아 > 그림책",
			expected: CategoryCommunication,
		},
		{
			name:     "math label",
			label:    "어린이 > 수학동화",
			expected: CategoryCognitive,
		},
		{
			name:     "unknown label falls back",
			label:    "잡지 > 기타",
			expected: CategoryIntegrated,
		},
		{
			name:     "empty label falls back",
			label:    "",
			expected: CategoryIntegrated,
		},
	}

	classifier := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.TagCategory(tt.label))
		})
	}
}

func TestLoadRules(t *testing.T) {
	t.Run("embedded table is valid", func(t *testing.T) {
		rules := DefaultRules()
		assert.Len(t, rules.Areas, 7)

		total := 0
		for _, areaRule := range rules.Areas {
			assert.True(t, IsValidArea(areaRule.Area))
			total += len(areaRule.Competencies)
		}
		assert.Equal(t, 27, total)
	})

	t.Run("unknown area is rejected", func(t *testing.T) {
		_, err := LoadRules([]byte("areas:\n  - area: 없는영역\n    competencies:\n      - name: x\n        keywords: [y]\n"))
		assert.Error(t, err)
	})

	t.Run("empty table is rejected", func(t *testing.T) {
		_, err := LoadRules([]byte("{}"))
		assert.Error(t, err)
	})
}
