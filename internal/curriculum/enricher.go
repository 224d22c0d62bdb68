package curriculum

//go:generate mockgen -source=enricher.go -destination=../mocks/curriculum/mock_enricher.go -package=mock_curriculum

import "context"

// Enricher is the out-of-band fetch-and-persist collaborator invoked when too
// few classified records exist for a roadmap. The service waits for completion
// but never orchestrates the enrichment itself.
type Enricher interface {
	TriggerEnrichment(ctx context.Context, keyword string, ageMonths int) error
}
