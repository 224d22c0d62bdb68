// Package enrich runs the batch enrichment pipeline: catalog records in,
// classified and cross-validated book rows out.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/chaekmaru/chaekmaru/internal/books"
	"github.com/chaekmaru/chaekmaru/internal/catalog"
	"github.com/chaekmaru/chaekmaru/internal/classify"
	"github.com/chaekmaru/chaekmaru/internal/consensus"
)

const (
	// Inter-item pacing keeps the social provider under its rate limit while
	// the validator runs inside the loop.
	defaultItemInterval = 300 * time.Millisecond

	// Score stored when no target age is configured and validation is
	// skipped. Matches the validator's neutral verdict.
	unvalidatedScore = 50

	onDemandBatchSize = 20
)

// Pipeline fetches, classifies, optionally cross-validates, and persists
// books one at a time, so a failure on item N never loses items 1..N-1.
type Pipeline struct {
	catalog        catalog.Provider
	classifier     *classify.Classifier
	validator      *consensus.Validator
	books          books.Repository
	targetAgeYears int
	limiter        *rate.Limiter
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTargetAge enables cross-validation against the given age in years.
func WithTargetAge(years int) Option {
	return func(p *Pipeline) {
		p.targetAgeYears = years
	}
}

// WithItemInterval overrides the pacing between items.
func WithItemInterval(interval time.Duration) Option {
	return func(p *Pipeline) {
		p.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

// NewPipeline creates an enrichment pipeline. The validator may be nil when no
// cross-validation is wanted.
func NewPipeline(catalogProvider catalog.Provider, classifier *classify.Classifier, validator *consensus.Validator, repository books.Repository, opts ...Option) *Pipeline {
	pipeline := &Pipeline{
		catalog:    catalogProvider,
		classifier: classifier,
		validator:  validator,
		books:      repository,
		limiter:    rate.NewLimiter(rate.Every(defaultItemInterval), 1),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(pipeline)
	}
	return pipeline
}

// EnrichByQuery searches the catalog and enriches every result. It returns
// how many books were persisted; on error, the count covers the items already
// written before the failure.
func (p *Pipeline) EnrichByQuery(ctx context.Context, query string, maxResults int) (int, error) {
	records, err := p.catalog.Search(ctx, query, maxResults, "")
	if err != nil {
		return 0, fmt.Errorf("catalog.Search > %w", err)
	}
	return p.enrichAll(ctx, records)
}

// EnrichByISBN enriches a single book. A catalog miss is an insufficient-data
// outcome, not an error.
func (p *Pipeline) EnrichByISBN(ctx context.Context, isbn13 string) error {
	record, err := p.catalog.LookupByID(ctx, isbn13)
	if err != nil {
		return fmt.Errorf("catalog.LookupByID > %w", err)
	}
	if record == nil {
		p.logger.Info("catalog has no record, nothing to enrich", "isbn13", isbn13)
		return nil
	}
	_, err = p.enrichAll(ctx, []catalog.Record{*record})
	return err
}

// EnrichBestsellers enriches the current bestseller list of a catalog
// category.
func (p *Pipeline) EnrichBestsellers(ctx context.Context, categoryID, max int) (int, error) {
	records, err := p.catalog.Bestsellers(ctx, categoryID, max)
	if err != nil {
		return 0, fmt.Errorf("catalog.Bestsellers > %w", err)
	}
	return p.enrichAll(ctx, records)
}

// TriggerEnrichment lets the pipeline serve as the curriculum service's
// enrichment collaborator.
func (p *Pipeline) TriggerEnrichment(ctx context.Context, keyword string, ageMonths int) error {
	p.logger.Info("running on-demand enrichment", "keyword", keyword, "age_months", ageMonths)
	_, err := p.EnrichByQuery(ctx, keyword, onDemandBatchSize)
	return err
}

func (p *Pipeline) enrichAll(ctx context.Context, records []catalog.Record) (int, error) {
	persisted := 0
	for _, record := range records {
		if record.ISBN13 == "" {
			p.logger.Info("skipping record without ISBN", "title", record.Title)
			continue
		}
		if persisted > 0 {
			if err := p.limiter.Wait(ctx); err != nil {
				return persisted, fmt.Errorf("limiter.Wait > %w", err)
			}
		}

		result := p.classifier.Classify(record.Title+" "+record.Description, record.CategoryLabel)

		score := unvalidatedScore
		if p.validator != nil && p.targetAgeYears > 0 {
			verdict := p.validator.ValidateByBlog(ctx, record.Title, record.Author, p.targetAgeYears)
			score = verdict.Score
			if !verdict.Passed {
				p.logger.Info("cross-validation rejected book",
					"isbn13", record.ISBN13, "title", record.Title, "reason", verdict.Reason)
			}
		}

		book := books.FromEnrichment(record, result, score)
		if err := p.books.Upsert(ctx, book); err != nil {
			return persisted, fmt.Errorf("books.Upsert(%s) > %w", record.ISBN13, err)
		}
		persisted++
		p.logger.Debug("enriched book", "isbn13", record.ISBN13, "title", record.Title, "score", score)
	}
	return persisted, nil
}
