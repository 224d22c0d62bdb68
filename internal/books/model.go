// Package books persists enriched book records: raw catalog fields plus the
// classification derived for them.
package books

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chaekmaru/chaekmaru/internal/catalog"
	"github.com/chaekmaru/chaekmaru/internal/classify"
)

// StringList stores a []string as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

// AreaList stores developmental areas as a JSON column.
type AreaList []classify.Area

// Value implements driver.Valuer.
func (l AreaList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *AreaList) Scan(src any) error {
	return scanJSON(src, l)
}

func scanJSON(src, dest any) error {
	switch value := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(value, dest)
	case string:
		return json.Unmarshal([]byte(value), dest)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

// Book is an enriched book record. Identity is the ISBN-13.
type Book struct {
	ID              int64         `db:"id"`
	ISBN13          string        `db:"isbn13"`
	Title           string        `db:"title"`
	Author          string        `db:"author"`
	Publisher       string        `db:"publisher"`
	PubDate         string        `db:"pub_date"`
	CoverURL        string        `db:"cover_url"`
	CategoryLabel   string        `db:"category_label"`
	Description     string        `db:"description"`
	ListPrice       int           `db:"list_price"`
	PopularityIndex int           `db:"popularity_index"`
	ReviewRank      int           `db:"review_rank"`
	Areas           AreaList      `db:"areas"`
	SubCompetencies StringList    `db:"sub_competencies"`
	Tags            StringList    `db:"tags"`
	Form            string        `db:"form"`
	IsWorkbook      bool          `db:"is_workbook"`
	MinAgeMonths    int           `db:"min_age_months"`
	MaxAgeMonths    int           `db:"max_age_months"`
	EnergyLevel     int           `db:"energy_level"`
	Volume          sql.NullInt64 `db:"volume"`
	Blurb           string        `db:"blurb"`
	ValidationScore int           `db:"validation_score"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

// FromEnrichment combines a catalog record with its classification.
func FromEnrichment(record catalog.Record, result classify.Result, validationScore int) *Book {
	book := &Book{
		ISBN13:          record.ISBN13,
		Title:           record.Title,
		Author:          record.Author,
		Publisher:       record.Publisher,
		PubDate:         record.PubDate,
		CoverURL:        record.CoverURL,
		CategoryLabel:   record.CategoryLabel,
		Description:     record.Description,
		ListPrice:       record.ListPrice,
		PopularityIndex: record.PopularityIndex,
		ReviewRank:      record.ReviewRank,
		Areas:           AreaList(result.Areas),
		SubCompetencies: StringList(result.SubCompetencies),
		Tags:            StringList(result.Tags),
		Form:            string(result.Form),
		IsWorkbook:      result.IsWorkbook,
		MinAgeMonths:    result.MinAgeMonths,
		MaxAgeMonths:    result.MaxAgeMonths,
		EnergyLevel:     result.EnergyLevel,
		Blurb:           result.Blurb,
		ValidationScore: validationScore,
	}
	if result.Volume != nil {
		book.Volume = sql.NullInt64{Int64: int64(*result.Volume), Valid: true}
	}
	return book
}

// HasTagOrTitleKeyword reports whether the keyword occurs in the title or any
// tag.
func (b *Book) HasTagOrTitleKeyword(keyword string) bool {
	if keyword == "" {
		return false
	}
	if containsFold(b.Title, keyword) {
		return true
	}
	for _, tag := range b.Tags {
		if containsFold(tag, keyword) {
			return true
		}
	}
	return false
}
