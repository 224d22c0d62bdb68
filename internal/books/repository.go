package books

//go:generate mockgen -source=repository.go -destination=../mocks/books/mock_repository.go -package=mock_books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Repository defines persistence for enriched book records.
type Repository interface {
	Upsert(ctx context.Context, book *Book) error
	FindByISBN(ctx context.Context, isbn13 string) (*Book, error)
	// SearchByKeywordAndAge returns books whose title or tags contain the
	// keyword and whose age range overlaps [minMonths, maxMonths].
	SearchByKeywordAndAge(ctx context.Context, keyword string, minMonths, maxMonths int) ([]Book, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

var _ Repository = (*DBRepository)(nil)

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Upsert inserts a book or refreshes the existing row with the same ISBN-13.
// Re-writing the same book with fresher data is always safe.
func (r *DBRepository) Upsert(ctx context.Context, book *Book) error {
	query := `INSERT INTO books (
			isbn13, title, author, publisher, pub_date, cover_url,
			category_label, description, list_price, popularity_index, review_rank,
			areas, sub_competencies, tags, form, is_workbook,
			min_age_months, max_age_months, energy_level, volume, blurb, validation_score
		) VALUES (
			:isbn13, :title, :author, :publisher, :pub_date, :cover_url,
			:category_label, :description, :list_price, :popularity_index, :review_rank,
			:areas, :sub_competencies, :tags, :form, :is_workbook,
			:min_age_months, :max_age_months, :energy_level, :volume, :blurb, :validation_score
		) ON DUPLICATE KEY UPDATE
			title = VALUES(title), author = VALUES(author), publisher = VALUES(publisher),
			pub_date = VALUES(pub_date), cover_url = VALUES(cover_url),
			category_label = VALUES(category_label), description = VALUES(description),
			list_price = VALUES(list_price), popularity_index = VALUES(popularity_index),
			review_rank = VALUES(review_rank), areas = VALUES(areas),
			sub_competencies = VALUES(sub_competencies), tags = VALUES(tags),
			form = VALUES(form), is_workbook = VALUES(is_workbook),
			min_age_months = VALUES(min_age_months), max_age_months = VALUES(max_age_months),
			energy_level = VALUES(energy_level), volume = VALUES(volume),
			blurb = VALUES(blurb), validation_score = VALUES(validation_score)`
	if _, err := r.db.NamedExecContext(ctx, query, book); err != nil {
		return fmt.Errorf("db.NamedExecContext(upsert book) > %w", err)
	}
	return nil
}

// FindByISBN returns the book with the given ISBN-13, or nil if not found.
func (r *DBRepository) FindByISBN(ctx context.Context, isbn13 string) (*Book, error) {
	var book Book
	err := r.db.GetContext(ctx, &book, "SELECT * FROM books WHERE isbn13 = ?", isbn13)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(book) > %w", err)
	}
	return &book, nil
}

// SearchByKeywordAndAge returns books matching the keyword whose age range
// overlaps the window.
func (r *DBRepository) SearchByKeywordAndAge(ctx context.Context, keyword string, minMonths, maxMonths int) ([]Book, error) {
	var result []Book
	pattern := "%" + keyword + "%"
	query := `SELECT * FROM books
		WHERE (title LIKE ? OR tags LIKE ?)
			AND min_age_months <= ? AND max_age_months >= ?
		ORDER BY popularity_index DESC, id`
	if err := r.db.SelectContext(ctx, &result, query, pattern, pattern, maxMonths, minMonths); err != nil {
		return nil, fmt.Errorf("db.SelectContext(books by keyword) > %w", err)
	}
	return result, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
