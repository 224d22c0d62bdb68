// Package lending provides the public lending-popularity collector.
package lending

//go:generate mockgen -source=provider.go -destination=../mocks/lending/mock_provider.go -package=mock_lending

import "context"

// AgeBracket is an age band understood by the lending API.
type AgeBracket string

const (
	Bracket0to5  AgeBracket = "0"
	Bracket6to7  AgeBracket = "6"
	Bracket8to13 AgeBracket = "8"
)

// LoanDoc is a loan-popularity entry.
type LoanDoc struct {
	ISBN13    string `json:"isbn13"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	LoanCount int    `json:"loan_count"`
	Ranking   int    `json:"ranking"`
}

// Provider is the lending collector boundary.
type Provider interface {
	LoanPopularity(ctx context.Context, bracket AgeBracket, pageSize int) ([]LoanDoc, error)
}
