package books

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaekmaru/chaekmaru/internal/catalog"
	"github.com/chaekmaru/chaekmaru/internal/classify"
)

func testCatalogRecord() catalog.Record {
	return catalog.Record{
		ISBN13:          "9788912345678",
		Title:           "개미의 생태",
		Author:          "김작가 (지은이)",
		Publisher:       "아람",
		PubDate:         "2023-04-01",
		CategoryLabel:   "유아 > 전집 > 자연관찰",
		Description:     "개미를 관찰하는 자연관찰 그림책",
		ListPrice:       12000,
		PopularityIndex: 4321,
		ReviewRank:      9,
	}
}

func testClassification() classify.Result {
	volume := 1
	return classify.Result{
		Areas:           []classify.Area{classify.AreaNature},
		SubCompetencies: []string{"관찰력", "동물생태"},
		Tags:            []string{"개미", "관찰"},
		Form:            classify.FormHardcover,
		MinAgeMonths:    24,
		MaxAgeMonths:    48,
		EnergyLevel:     5,
		Volume:          &volume,
		Blurb:           "관찰력 발달을 돕는 24~48개월 추천 도서",
	}
}

func TestFromEnrichment(t *testing.T) {
	book := FromEnrichment(testCatalogRecord(), testClassification(), 84)

	assert.Equal(t, "9788912345678", book.ISBN13)
	assert.Equal(t, AreaList{classify.AreaNature}, book.Areas)
	assert.Equal(t, "양장", book.Form)
	assert.Equal(t, 24, book.MinAgeMonths)
	assert.Equal(t, 48, book.MaxAgeMonths)
	assert.Equal(t, 84, book.ValidationScore)
	require.True(t, book.Volume.Valid)
	assert.EqualValues(t, 1, book.Volume.Int64)
}

func TestFromEnrichment_noVolume(t *testing.T) {
	result := testClassification()
	result.Volume = nil

	book := FromEnrichment(testCatalogRecord(), result, 0)
	assert.False(t, book.Volume.Valid)
}

func TestStringList_roundTrip(t *testing.T) {
	value, err := StringList{"개미", "관찰"}.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, StringList{"개미", "관찰"}, scanned)

	var fromNil StringList
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)
}
