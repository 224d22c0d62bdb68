package shelf

import (
	"context"
	"fmt"

	"github.com/chaekmaru/chaekmaru/internal/catalog"
	"github.com/chaekmaru/chaekmaru/internal/classify"
	"github.com/chaekmaru/chaekmaru/internal/social"
)

// FromCatalog builds a collection record out of a raw catalog record: the
// category label is resolved to the closed taxonomy and hardware features are
// detected from the text. The buzz count starts at zero and is filled by
// re-ranking.
func FromCatalog(record catalog.Record, classifier *classify.Classifier) *Record {
	text := record.Title + " " + record.Description
	return &Record{
		Title:           record.Title,
		Publisher:       record.Publisher,
		Category:        classifier.TagCategory(record.CategoryLabel),
		Summary:         record.Description,
		Features:        classifier.DetectHardwareFeatures(text),
		PopularityIndex: record.PopularityIndex,
	}
}

// Collector ingests catalog records as collection records, refreshing their
// social-buzz counts along the way.
type Collector struct {
	catalog    catalog.Provider
	social     social.Provider
	repository Repository
	classifier *classify.Classifier
}

// NewCollector creates a collector.
func NewCollector(catalogProvider catalog.Provider, socialProvider social.Provider, repository Repository, classifier *classify.Classifier) *Collector {
	return &Collector{
		catalog:    catalogProvider,
		social:     socialProvider,
		repository: repository,
		classifier: classifier,
	}
}

// CollectByQuery searches the catalog and upserts a collection record per
// result. A buzz-count failure stores zero rather than aborting.
func (c *Collector) CollectByQuery(ctx context.Context, query string, maxResults int) (int, error) {
	records, err := c.catalog.Search(ctx, query, maxResults, "")
	if err != nil {
		return 0, fmt.Errorf("catalog.Search > %w", err)
	}

	collected := 0
	for _, catalogRecord := range records {
		record := FromCatalog(catalogRecord, c.classifier)
		if buzz, err := c.social.CountHits(ctx, fmt.Sprintf("%q", record.Title)); err == nil {
			record.BuzzCount = buzz
		}
		if err := c.repository.Upsert(ctx, record); err != nil {
			return collected, fmt.Errorf("repository.Upsert(%s) > %w", record.Title, err)
		}
		collected++
	}
	return collected, nil
}
