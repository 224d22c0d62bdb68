package shelf

import (
	"context"
	"log/slog"
	"sort"

	"github.com/chaekmaru/chaekmaru/internal/classify"
	"github.com/chaekmaru/chaekmaru/internal/stage"
)

const (
	fetchPerCategory = 10
	keepPerShelf     = 5
	spotlightSize    = 3

	// Fixed linear blend favoring the commercial sales-rank signal over
	// social buzz. Empirical, change-controlled values.
	popularityWeight = 0.7
	buzzWeight       = 0.3

	popularityBadgeThreshold = 1000
	buzzBadgeThreshold       = 5000
)

// Badge labels surfaced on ranked items.
const (
	BadgeCategoryTop    = "카테고리 베스트"
	BadgeHighVolume     = "판매 상위"
	BadgeHighEngagement = "입소문"
)

// RankedItem is a collection record with its blend score and badges.
type RankedItem struct {
	Record Record   `json:"record"`
	Score  float64  `json:"score"`
	Badges []string `json:"badges"`
}

// CategoryShelf is one ranked shelf of a dashboard.
type CategoryShelf struct {
	Category classify.Category `json:"category"`
	Items    []RankedItem      `json:"items"`
}

// Dashboard is a composed, age-targeted set of shelves.
type Dashboard struct {
	Stage     stage.Stage     `json:"stage"`
	Hero      *RankedItem     `json:"hero,omitempty"`
	Spotlight []RankedItem    `json:"spotlight"`
	Shelves   []CategoryShelf `json:"shelves"`
}

// Composer assembles dashboards out of persisted collection records.
type Composer struct {
	repository Repository
	logger     *slog.Logger
}

// NewComposer creates a composer over the given repository.
func NewComposer(repository Repository) *Composer {
	return &Composer{
		repository: repository,
		logger:     slog.Default(),
	}
}

// Compose builds the dashboard for an age. Every primary category of the
// resolved stage yields a shelf; categories with no records (or a failing
// fetch) yield an empty shelf rather than an error.
func (c *Composer) Compose(ctx context.Context, ageMonths int) *Dashboard {
	resolved := stage.Match(ageMonths)

	shelves := make([]CategoryShelf, 0, len(resolved.PrimaryCategories))
	for _, category := range resolved.PrimaryCategories {
		records, err := c.repository.FindByCategory(ctx, category, fetchPerCategory)
		if err != nil {
			c.logger.Warn("collection fetch failed, emitting empty shelf", "category", category, "error", err)
			records = nil
		}
		shelves = append(shelves, CategoryShelf{
			Category: category,
			Items:    Rank(records),
		})
	}

	dashboard := &Dashboard{
		Stage:     resolved,
		Spotlight: []RankedItem{},
		Shelves:   shelves,
	}

	// The hero is the first item of the first non-empty shelf; the spotlight
	// is the next three items in shelf-iteration order. This approximates,
	// but does not guarantee, the true cross-category top-4 by score.
	var flattened []RankedItem
	for _, s := range shelves {
		flattened = append(flattened, s.Items...)
	}
	if len(flattened) > 0 {
		dashboard.Hero = &flattened[0]
		rest := flattened[1:]
		if len(rest) > spotlightSize {
			rest = rest[:spotlightSize]
		}
		dashboard.Spotlight = rest
	}
	return dashboard
}

// Rank orders records by the weighted popularity blend, keeps the top five
// and assigns badges. The sort is stable: equal scores keep fetch order.
func Rank(records []Record) []RankedItem {
	items := make([]RankedItem, 0, len(records))
	for _, record := range records {
		items = append(items, RankedItem{
			Record: record,
			Score:  Score(record),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	if len(items) > keepPerShelf {
		items = items[:keepPerShelf]
	}

	for i := range items {
		items[i].Badges = badges(i, items[i].Record)
	}
	return items
}

// Score is the fixed popularity/buzz blend.
func Score(record Record) float64 {
	return float64(record.PopularityIndex)*popularityWeight + float64(record.BuzzCount)*buzzWeight
}

func badges(index int, record Record) []string {
	var result []string
	if index == 0 {
		result = append(result, BadgeCategoryTop)
	}
	if record.PopularityIndex > popularityBadgeThreshold {
		result = append(result, BadgeHighVolume)
	}
	if record.BuzzCount > buzzBadgeThreshold {
		result = append(result, BadgeHighEngagement)
	}

	features := make([]string, 0, len(record.Features))
	for feature, enabled := range record.Features {
		if enabled {
			features = append(features, feature)
		}
	}
	sort.Strings(features)
	return append(result, features...)
}
