// Package shelf composes ranked, age-targeted shelves out of collection
// records.
package shelf

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chaekmaru/chaekmaru/internal/classify"
)

// FeatureMap stores accessory feature flags as a JSON column.
type FeatureMap map[string]bool

// Value implements driver.Valuer.
func (m FeatureMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(FeatureMap{})
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *FeatureMap) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(value, m)
	case string:
		return json.Unmarshal([]byte(value), m)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

// Record is a curated collection entry. Identity is (publisher, title);
// popularity and buzz are refreshed by periodic re-ranking jobs.
type Record struct {
	ID              int64             `db:"id"`
	Title           string            `db:"title"`
	Publisher       string            `db:"publisher"`
	Category        classify.Category `db:"category"`
	Summary         string            `db:"summary"`
	Features        FeatureMap        `db:"features"`
	PopularityIndex int               `db:"popularity_index"`
	BuzzCount       int               `db:"buzz_count"`
	CreatedAt       time.Time         `db:"created_at"`
	UpdatedAt       time.Time         `db:"updated_at"`
}
