// Package purify filters loan-popularity data for age-appropriateness using
// buzz-density heuristics against the social-content provider.
package purify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/chaekmaru/chaekmaru/internal/lending"
	"github.com/chaekmaru/chaekmaru/internal/social"
)

// Record is the ephemeral purifier output. All candidates surviving the
// noise and low-signal cuts are returned; the purified flag is advisory and
// filtering on it is left to the caller.
type Record struct {
	ISBN13        string             `json:"isbn13"`
	Title         string             `json:"title"`
	Author        string             `json:"author"`
	Publisher     string             `json:"publisher"`
	AgeGroupYears int                `json:"age_group_years"`
	Bracket       lending.AgeBracket `json:"bracket"`
	LoanCount     int                `json:"loan_count"`
	TotalBuzz     int                `json:"total_buzz"`
	BracketBuzz   int                `json:"bracket_buzz"`
	Density       float64            `json:"density"`
	IsPurified    bool               `json:"is_purified"`
}

const (
	// Density thresholds are empirical, change-controlled values. The
	// youngest bracket needs a higher density because its vocabulary is
	// narrower and false positives are likelier at low absolute counts.
	toddlerDensityThreshold = 0.005
	defaultDensityThreshold = 0.002
	toddlerMaxYears         = 2

	minTotalBuzz = 10

	// Upstream rate limits drive the fixed pacing between buzz calls,
	// making a purification pass intentionally linear in candidate count.
	defaultCallInterval = 100 * time.Millisecond
)

// Known mislabeled series that pollute the loan rankings.
var noiseBlacklist = []string{
	"흔한남매",
	"쿠키런",
	"마법천자문",
}

// Age-marker keyword sets, one per age group band.
var (
	toddlerMarkers   = []string{"돌아기", "1세", "2세", "아기"}
	preschoolMarkers = []string{"3세", "4세", "5세", "유아"}
	kinderMarkers    = []string{"6세", "7세", "예비초등", "유치원"}
	schoolMarkers    = []string{"초등", "1학년", "2학년", "8세"}
)

// Purifier cross-checks loan-popularity candidates against social buzz.
type Purifier struct {
	lending lending.Provider
	social  social.Provider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures a Purifier.
type Option func(*Purifier)

// WithCallInterval overrides the pacing between social-buzz calls.
func WithCallInterval(interval time.Duration) Option {
	return func(p *Purifier) {
		p.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

// NewPurifier creates a purifier over the two collectors.
func NewPurifier(lendingProvider lending.Provider, socialProvider social.Provider, opts ...Option) *Purifier {
	purifier := &Purifier{
		lending: lendingProvider,
		social:  socialProvider,
		limiter: rate.NewLimiter(rate.Every(defaultCallInterval), 1),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(purifier)
	}
	return purifier
}

// PurifyAgeGroup fetches up to limit loan-popularity candidates for the age
// group and annotates each with its buzz density. Candidates matching the
// noise blacklist or lacking social signal are dropped; everything else is
// returned with the advisory purified flag. A lending outage yields an empty
// result, never an error.
func (p *Purifier) PurifyAgeGroup(ctx context.Context, ageGroupYears, limit int) ([]Record, error) {
	bracket := BracketForAge(ageGroupYears)

	docs, err := p.lending.LoanPopularity(ctx, bracket, limit)
	if err != nil {
		p.logger.Warn("loan popularity fetch failed, returning empty result", "bracket", bracket, "error", err)
		return []Record{}, nil
	}

	threshold := DensityThreshold(ageGroupYears)
	markers := MarkersForAge(ageGroupYears)

	result := make([]Record, 0, len(docs))
	for _, doc := range docs {
		if isBlacklisted(doc.Title) {
			p.logger.Info("skipping blacklisted title", "title", doc.Title)
			continue
		}

		totalBuzz, ok := p.countHits(ctx, fmt.Sprintf("%q", doc.Title))
		if !ok || totalBuzz < minTotalBuzz {
			p.logger.Info("skipping low-signal title", "title", doc.Title, "total_buzz", totalBuzz)
			continue
		}

		bracketBuzz, ok := p.countHits(ctx, bracketQuery(doc.Title, markers))
		if !ok {
			bracketBuzz = 0
		}

		density := float64(bracketBuzz) / float64(totalBuzz)
		result = append(result, Record{
			ISBN13:        doc.ISBN13,
			Title:         doc.Title,
			Author:        doc.Author,
			Publisher:     doc.Publisher,
			AgeGroupYears: ageGroupYears,
			Bracket:       bracket,
			LoanCount:     doc.LoanCount,
			TotalBuzz:     totalBuzz,
			BracketBuzz:   bracketBuzz,
			Density:       density,
			IsPurified:    density >= threshold,
		})
	}
	return result, nil
}

// countHits paces and performs one buzz call, treating failures as no data.
func (p *Purifier) countHits(ctx context.Context, query string) (int, bool) {
	if err := p.limiter.Wait(ctx); err != nil {
		return 0, false
	}
	total, err := p.social.CountHits(ctx, query)
	if err != nil {
		p.logger.Warn("buzz count failed, treating as no data", "query", query, "error", err)
		return 0, false
	}
	return total, true
}

// BracketForAge maps an age group in years to a lending-API bracket.
func BracketForAge(ageGroupYears int) lending.AgeBracket {
	switch {
	case ageGroupYears <= 5:
		return lending.Bracket0to5
	case ageGroupYears <= 7:
		return lending.Bracket6to7
	default:
		return lending.Bracket8to13
	}
}

// DensityThreshold returns the purity threshold for an age group.
func DensityThreshold(ageGroupYears int) float64 {
	if ageGroupYears <= toddlerMaxYears {
		return toddlerDensityThreshold
	}
	return defaultDensityThreshold
}

// MarkersForAge returns the age-marker keywords for an age group.
func MarkersForAge(ageGroupYears int) []string {
	switch {
	case ageGroupYears <= toddlerMaxYears:
		return toddlerMarkers
	case ageGroupYears <= 5:
		return preschoolMarkers
	case ageGroupYears <= 7:
		return kinderMarkers
	default:
		return schoolMarkers
	}
}

func bracketQuery(title string, markers []string) string {
	return fmt.Sprintf("%q %s", title, strings.Join(markers, "|"))
}

func isBlacklisted(title string) bool {
	for _, noise := range noiseBlacklist {
		if strings.Contains(title, noise) {
			return true
		}
	}
	return false
}
