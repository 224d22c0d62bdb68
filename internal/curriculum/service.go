// Package curriculum assembles themed 3-week reading plans from
// already-classified book records.
package curriculum

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"unicode/utf8"

	"github.com/chaekmaru/chaekmaru/internal/books"
	"github.com/chaekmaru/chaekmaru/internal/classify"
)

// Propensity biases the ordering of candidates inside each week.
type Propensity string

const (
	PropensityActive Propensity = "활동적"
	PropensityCalm   Propensity = "차분함"
	PropensityNone   Propensity = ""
)

// Entry is one recommended book with its selection reason.
type Entry struct {
	Book   books.Book `json:"book"`
	Reason string     `json:"reason"`
}

// WeekPlan is one themed week of a roadmap.
type WeekPlan struct {
	Week    int     `json:"week"`
	Theme   string  `json:"theme"`
	Label   string  `json:"label"`
	Entries []Entry `json:"entries"`
}

const (
	weekThemeInterest  = "interest"
	weekThemeKnowledge = "knowledge"
	weekThemeExpansion = "expansion"

	weekLabelInterest  = "흥미 붙이기"
	weekLabelKnowledge = "지식 쌓기"
	weekLabelExpansion = "확장하기"

	// The overlap window favors slightly older content so a roadmap keeps
	// room to grow into.
	windowBackMonths    = 6
	windowForwardMonths = 12

	minCorpusSize = 5
	maxPerWeek    = 3

	interestMinEnergy    = 7
	knowledgeMinEnergy   = 4
	knowledgeMaxEnergy   = 8
	expansionFallbackAge = 36

	minBlurbRunes = 10
)

// Service generates reading roadmaps.
type Service struct {
	books    books.Repository
	enricher Enricher
	logger   *slog.Logger
}

// NewService creates a curriculum service.
func NewService(repository books.Repository, enricher Enricher) *Service {
	return &Service{
		books:    repository,
		enricher: enricher,
		logger:   slog.Default(),
	}
}

// GenerateRoadmap queries classified records matching the keyword whose age
// range overlaps [ageMonths-6, ageMonths+12] and assembles three themed weeks.
// When fewer than 5 records match, it triggers one out-of-band enrichment run
// and re-queries once before composing from whatever exists.
func (s *Service) GenerateRoadmap(ctx context.Context, keyword string, ageMonths int, propensity Propensity) ([]WeekPlan, error) {
	minMonths := ageMonths - windowBackMonths
	if minMonths < 0 {
		minMonths = 0
	}
	maxMonths := ageMonths + windowForwardMonths

	corpus, err := s.books.SearchByKeywordAndAge(ctx, keyword, minMonths, maxMonths)
	if err != nil {
		return nil, fmt.Errorf("books.SearchByKeywordAndAge > %w", err)
	}

	if len(corpus) < minCorpusSize {
		s.logger.Info("corpus too small, triggering enrichment",
			"keyword", keyword, "age_months", ageMonths, "found", len(corpus))
		if err := s.enricher.TriggerEnrichment(ctx, keyword, ageMonths); err != nil {
			s.logger.Warn("enrichment failed, composing from existing records", "keyword", keyword, "error", err)
		} else {
			corpus, err = s.books.SearchByKeywordAndAge(ctx, keyword, minMonths, maxMonths)
			if err != nil {
				return nil, fmt.Errorf("books.SearchByKeywordAndAge(after enrichment) > %w", err)
			}
		}
	}

	orderByPropensity(corpus, propensity)

	return []WeekPlan{
		s.weekPlan(1, weekThemeInterest, weekLabelInterest, selectInterest(corpus)),
		s.weekPlan(2, weekThemeKnowledge, weekLabelKnowledge, selectKnowledge(corpus)),
		s.weekPlan(3, weekThemeExpansion, weekLabelExpansion, selectExpansion(corpus)),
	}, nil
}

func (s *Service) weekPlan(week int, theme, label string, selected []books.Book) WeekPlan {
	if len(selected) > maxPerWeek {
		selected = selected[:maxPerWeek]
	}
	entries := make([]Entry, 0, len(selected))
	for _, book := range selected {
		entries = append(entries, Entry{Book: book, Reason: reasonFor(book, label)})
	}
	return WeekPlan{Week: week, Theme: theme, Label: label, Entries: entries}
}

// selectInterest picks high-energy records, padding with board/sound books
// when fewer than two qualify.
func selectInterest(corpus []books.Book) []books.Book {
	selected := filterBooks(corpus, func(b books.Book) bool {
		return b.EnergyLevel >= interestMinEnergy
	})
	if len(selected) >= 2 {
		return selected
	}
	fallback := filterBooks(corpus, func(b books.Book) bool {
		return b.Form == string(classify.FormBoard) || b.Form == string(classify.FormSound)
	})
	return appendDistinct(selected, fallback)
}

// selectKnowledge picks mid-energy non-workbook records.
func selectKnowledge(corpus []books.Book) []books.Book {
	return filterBooks(corpus, func(b books.Book) bool {
		return b.EnergyLevel >= knowledgeMinEnergy && b.EnergyLevel < knowledgeMaxEnergy && !b.IsWorkbook
	})
}

// selectExpansion prefers workbooks, padding with older-threshold records when
// fewer than two workbooks exist.
func selectExpansion(corpus []books.Book) []books.Book {
	selected := filterBooks(corpus, func(b books.Book) bool {
		return b.IsWorkbook
	})
	if len(selected) >= 2 {
		return selected
	}
	fallback := filterBooks(corpus, func(b books.Book) bool {
		return b.MinAgeMonths > expansionFallbackAge
	})
	return appendDistinct(selected, fallback)
}

// orderByPropensity biases the corpus order. The repository already orders by
// popularity, which stays the tie-breaker within equal energy levels.
func orderByPropensity(corpus []books.Book, propensity Propensity) {
	switch propensity {
	case PropensityActive:
		sort.SliceStable(corpus, func(i, j int) bool {
			return corpus[i].EnergyLevel > corpus[j].EnergyLevel
		})
	case PropensityCalm:
		sort.SliceStable(corpus, func(i, j int) bool {
			return corpus[i].EnergyLevel < corpus[j].EnergyLevel
		})
	}
}

func reasonFor(book books.Book, weekLabel string) string {
	if utf8.RuneCountInString(book.Blurb) > minBlurbRunes {
		return book.Blurb
	}
	tag := "우리 아이"
	if len(book.Tags) > 0 {
		tag = book.Tags[0]
	}
	return fmt.Sprintf("%s 테마의 '%s' 단계에 어울리는 책이에요", tag, weekLabel)
}

func filterBooks(corpus []books.Book, keep func(books.Book) bool) []books.Book {
	var result []books.Book
	for _, book := range corpus {
		if keep(book) {
			result = append(result, book)
		}
	}
	return result
}

func appendDistinct(selected, fallback []books.Book) []books.Book {
	seen := make(map[string]struct{}, len(selected))
	for _, book := range selected {
		seen[book.ISBN13] = struct{}{}
	}
	for _, book := range fallback {
		if _, ok := seen[book.ISBN13]; ok {
			continue
		}
		seen[book.ISBN13] = struct{}{}
		selected = append(selected, book)
	}
	return selected
}
