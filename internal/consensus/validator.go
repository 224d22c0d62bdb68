// Package consensus cross-validates catalog classifications against
// independent social signals to catch age or category mismatches.
package consensus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chaekmaru/chaekmaru/internal/social"
)

// Result is the ephemeral verdict for one (title, author, target age) triple.
// It is recomputed on demand and never persisted.
type Result struct {
	Passed            bool   `json:"passed"`
	Score             int    `json:"score"`
	Reason            string `json:"reason,omitempty"`
	Source            string `json:"source"`
	InfantSignals     int    `json:"infant_signals"`
	ElementarySignals int    `json:"elementary_signals"`
}

const (
	sourceBlog = "blog"

	snippetCount = 5

	// Score constants are empirical, change-controlled values.
	neutralScore        = 50
	acceptBaseScore     = 80
	acceptPerInfantHit  = 2
	rejectScore         = 0
	rejectElementaryMin = 4
	maxTargetAgeYears   = 6
)

// Keyword families are disjoint: one names infant/toddler content, the other
// elementary-school content.
var (
	infantKeywords = []string{
		"3세", "4세", "두돌", "세돌", "아기", "유아", "그림책",
	}
	elementaryKeywords = []string{
		"초등", "1학년", "2학년", "3학년", "학년", "학습만화", "교과서", "수험서",
	}
)

// Validator checks a book's classification against social-content signals.
type Validator struct {
	provider social.Provider
	logger   *slog.Logger
}

// NewValidator creates a validator over the given social-content provider.
func NewValidator(provider social.Provider) *Validator {
	return &Validator{
		provider: provider,
		logger:   slog.Default(),
	}
}

// ValidateByBlog fetches blog snippets for the book and decides whether its
// social footprint matches the target age. Any provider failure fails open
// with a neutral verdict: enrichment is advisory and must never block on an
// external outage.
func (v *Validator) ValidateByBlog(ctx context.Context, title, author string, targetAgeYears int) Result {
	query := BuildQuery(title, author)

	snippets, err := v.provider.SearchSnippets(ctx, query, snippetCount)
	if err != nil {
		v.logger.Warn("social provider failed, failing open", "query", query, "error", err)
		return Result{
			Passed: true,
			Score:  neutralScore,
			Reason: "validation error",
			Source: sourceBlog,
		}
	}

	// No social proof is not rejection: new or rare books have no signal yet.
	if len(snippets) == 0 {
		return Result{
			Passed: true,
			Score:  neutralScore,
			Reason: "no social signal",
			Source: sourceBlog,
		}
	}

	var builder strings.Builder
	for _, snippet := range snippets {
		builder.WriteString(snippet.Title)
		builder.WriteString(" ")
		builder.WriteString(snippet.Description)
		builder.WriteString(" ")
	}
	corpus := builder.String()

	infant := countOccurrences(corpus, infantKeywords)
	elementary := countOccurrences(corpus, elementaryKeywords)

	// Reject only unambiguous mismatches: strong elementary signal with no
	// infant signal at all, and only when a preschool age is targeted.
	if targetAgeYears > 0 && targetAgeYears <= maxTargetAgeYears &&
		elementary >= rejectElementaryMin && infant == 0 {
		return Result{
			Passed:            false,
			Score:             rejectScore,
			Reason:            fmt.Sprintf("elementary-dominant signal (%d hits)", elementary),
			Source:            sourceBlog,
			InfantSignals:     infant,
			ElementarySignals: elementary,
		}
	}

	return Result{
		Passed:            true,
		Score:             acceptBaseScore + acceptPerInfantHit*infant,
		Source:            sourceBlog,
		InfantSignals:     infant,
		ElementarySignals: elementary,
	}
}

// BuildQuery builds a quoted query from the title and the first listed
// author, disambiguating generic titles.
func BuildQuery(title, author string) string {
	first := FirstAuthor(author)
	if first == "" {
		return fmt.Sprintf("%q", title)
	}
	return fmt.Sprintf("%q %q", title, first)
}

// FirstAuthor extracts the first listed author: the text before the first
// comma or opening parenthesis, trimmed.
func FirstAuthor(author string) string {
	cut := len(author)
	if idx := strings.IndexAny(author, ",("); idx >= 0 {
		cut = idx
	}
	return strings.TrimSpace(author[:cut])
}

func countOccurrences(corpus string, keywords []string) int {
	total := 0
	for _, keyword := range keywords {
		total += strings.Count(corpus, keyword)
	}
	return total
}
