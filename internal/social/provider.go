// Package social provides the social-content collector used for buzz counts
// and snippet searches.
package social

//go:generate mockgen -source=provider.go -destination=../mocks/social/mock_provider.go -package=mock_social

import "context"

// Snippet is a single social-content search hit with markup already removed.
type Snippet struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	BloggerName string `json:"blogger_name"`
	PostDate    string `json:"post_date"`
	Link        string `json:"link"`
}

// Provider is the social-content collector boundary.
type Provider interface {
	// SearchSnippets returns up to count snippet hits for the query.
	SearchSnippets(ctx context.Context, query string, count int) ([]Snippet, error)
	// CountHits returns the total number of hits for the query.
	CountHits(ctx context.Context, query string) (int, error)
}
