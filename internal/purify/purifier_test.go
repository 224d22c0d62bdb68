package purify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chaekmaru/chaekmaru/internal/lending"
	mock_lending "github.com/chaekmaru/chaekmaru/internal/mocks/lending"
	mock_social "github.com/chaekmaru/chaekmaru/internal/mocks/social"
	"github.com/chaekmaru/chaekmaru/internal/purify"
)

func TestPurifier_PurifyAgeGroup(t *testing.T) {
	type buzz struct {
		total   int
		bracket int
	}
	tests := []struct {
		name          string
		ageGroupYears int
		docs          []lending.LoanDoc
		buzz          map[string]buzz
		wantTitles    []string
		wantPurified  map[string]bool
	}{
		{
			name:          "density at toddler threshold is purified",
			ageGroupYears: 0,
			docs: []lending.LoanDoc{
				{ISBN13: "9788901001001", Title: "사과가 쿵", LoanCount: 900},
				{ISBN13: "9788901001002", Title: "달님 안녕", LoanCount: 850},
			},
			buzz: map[string]buzz{
				// 10/2000 = 0.005 exactly, 49/10000 = 0.0049.
				"사과가 쿵": {total: 2000, bracket: 10},
				"달님 안녕": {total: 10000, bracket: 49},
			},
			wantTitles: []string{"사과가 쿵", "달님 안녕"},
			wantPurified: map[string]bool{
				"사과가 쿵": true,
				"달님 안녕": false,
			},
		},
		{
			name:          "older groups use the lower threshold",
			ageGroupYears: 5,
			docs: []lending.LoanDoc{
				{ISBN13: "9788901001003", Title: "구름빵", LoanCount: 700},
				{ISBN13: "9788901001004", Title: "지원이와 병관이", LoanCount: 650},
			},
			buzz: map[string]buzz{
				// 0.002 passes at five years where 0.0019 does not.
				"구름빵":      {total: 5000, bracket: 10},
				"지원이와 병관이": {total: 10000, bracket: 19},
			},
			wantTitles: []string{"구름빵", "지원이와 병관이"},
			wantPurified: map[string]bool{
				"구름빵":      true,
				"지원이와 병관이": false,
			},
		},
		{
			name:          "blacklisted series is excluded outright",
			ageGroupYears: 0,
			docs: []lending.LoanDoc{
				{ISBN13: "9788901001005", Title: "흔한남매 10", LoanCount: 2000},
				{ISBN13: "9788901001006", Title: "누가 내 머리에 똥 쌌어", LoanCount: 500},
			},
			buzz: map[string]buzz{
				"누가 내 머리에 똥 쌌어": {total: 1000, bracket: 20},
			},
			wantTitles: []string{"누가 내 머리에 똥 쌌어"},
			wantPurified: map[string]bool{
				"누가 내 머리에 똥 쌌어": true,
			},
		},
		{
			name:          "low-signal titles are dropped",
			ageGroupYears: 8,
			docs: []lending.LoanDoc{
				{ISBN13: "9788901001007", Title: "무명 전집", LoanCount: 300},
				{ISBN13: "9788901001008", Title: "수학 도둑", LoanCount: 280},
			},
			buzz: map[string]buzz{
				"무명 전집": {total: 9, bracket: 9},
				"수학 도둑": {total: 3000, bracket: 30},
			},
			wantTitles: []string{"수학 도둑"},
			wantPurified: map[string]bool{
				"수학 도둑": true,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lendingProvider := mock_lending.NewMockProvider(ctrl)
			socialProvider := mock_social.NewMockProvider(ctrl)

			lendingProvider.EXPECT().
				LoanPopularity(gomock.Any(), purify.BracketForAge(tc.ageGroupYears), 50).
				Return(tc.docs, nil)
			socialProvider.EXPECT().
				CountHits(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, query string) (int, error) {
					for title, counts := range tc.buzz {
						if query == `"`+title+`"` {
							return counts.total, nil
						}
						if len(query) > len(title)+2 && query[:len(title)+2] == `"`+title+`"` {
							return counts.bracket, nil
						}
					}
					t.Fatalf("unexpected buzz query: %s", query)
					return 0, nil
				}).
				AnyTimes()

			purifier := purify.NewPurifier(lendingProvider, socialProvider, purify.WithCallInterval(0))
			got, err := purifier.PurifyAgeGroup(context.Background(), tc.ageGroupYears, 50)
			require.NoError(t, err)

			titles := make([]string, 0, len(got))
			for _, record := range got {
				titles = append(titles, record.Title)
				assert.Equal(t, tc.wantPurified[record.Title], record.IsPurified, record.Title)
				assert.Equal(t, tc.ageGroupYears, record.AgeGroupYears)
			}
			assert.Equal(t, tc.wantTitles, titles)
		})
	}
}

func TestPurifier_PurifyAgeGroup_LendingOutage(t *testing.T) {
	ctrl := gomock.NewController(t)
	lendingProvider := mock_lending.NewMockProvider(ctrl)
	socialProvider := mock_social.NewMockProvider(ctrl)

	lendingProvider.EXPECT().
		LoanPopularity(gomock.Any(), lending.Bracket6to7, 20).
		Return(nil, errors.New("data4library: 503"))

	purifier := purify.NewPurifier(lendingProvider, socialProvider, purify.WithCallInterval(0))
	got, err := purifier.PurifyAgeGroup(context.Background(), 6, 20)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPurifier_PurifyAgeGroup_BuzzFailureTreatedAsNoData(t *testing.T) {
	ctrl := gomock.NewController(t)
	lendingProvider := mock_lending.NewMockProvider(ctrl)
	socialProvider := mock_social.NewMockProvider(ctrl)

	lendingProvider.EXPECT().
		LoanPopularity(gomock.Any(), lending.Bracket0to5, 10).
		Return([]lending.LoanDoc{{ISBN13: "9788901001009", Title: "강아지똥", LoanCount: 400}}, nil)
	socialProvider.EXPECT().
		CountHits(gomock.Any(), `"강아지똥"`).
		Return(0, errors.New("naver: rate limited"))

	purifier := purify.NewPurifier(lendingProvider, socialProvider, purify.WithCallInterval(0))
	got, err := purifier.PurifyAgeGroup(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBracketForAge(t *testing.T) {
	assert.Equal(t, lending.Bracket0to5, purify.BracketForAge(0))
	assert.Equal(t, lending.Bracket0to5, purify.BracketForAge(5))
	assert.Equal(t, lending.Bracket6to7, purify.BracketForAge(6))
	assert.Equal(t, lending.Bracket6to7, purify.BracketForAge(7))
	assert.Equal(t, lending.Bracket8to13, purify.BracketForAge(8))
	assert.Equal(t, lending.Bracket8to13, purify.BracketForAge(13))
}

func TestMarkersForAge(t *testing.T) {
	assert.Contains(t, purify.MarkersForAge(1), "돌아기")
	assert.Contains(t, purify.MarkersForAge(4), "유아")
	assert.Contains(t, purify.MarkersForAge(7), "예비초등")
	assert.Contains(t, purify.MarkersForAge(9), "1학년")
}
