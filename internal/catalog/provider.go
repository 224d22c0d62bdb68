// Package catalog provides the bookseller catalog collector.
package catalog

//go:generate mockgen -source=provider.go -destination=../mocks/catalog/mock_provider.go -package=mock_catalog

import "context"

// Record is a raw catalog record. Immutable once fetched; its identity is the
// ISBN-13.
type Record struct {
	ISBN13          string `json:"isbn13"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Publisher       string `json:"publisher"`
	PubDate         string `json:"pub_date"`
	CoverURL        string `json:"cover_url"`
	CategoryLabel   string `json:"category_label"`
	Description     string `json:"description"`
	ListPrice       int    `json:"list_price"`
	PopularityIndex int    `json:"popularity_index"`
	ReviewRank      int    `json:"review_rank"`
}

// Provider is the catalog collector boundary. Each call is a single blocking
// round-trip; retry policy lives inside the implementation, not the callers.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int, categoryFilter string) ([]Record, error)
	LookupByID(ctx context.Context, isbn13 string) (*Record, error)
	Bestsellers(ctx context.Context, categoryID, max int) ([]Record, error)
}
