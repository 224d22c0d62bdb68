package shelf

//go:generate mockgen -source=repository.go -destination=../mocks/shelf/mock_repository.go -package=mock_shelf

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chaekmaru/chaekmaru/internal/classify"
)

// Repository defines persistence for collection records.
type Repository interface {
	FindByCategory(ctx context.Context, category classify.Category, limit int) ([]Record, error)
	Upsert(ctx context.Context, record *Record) error
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

// FindByCategory returns up to limit records tagged with the category.
func (r *DBRepository) FindByCategory(ctx context.Context, category classify.Category, limit int) ([]Record, error) {
	var result []Record
	query := `SELECT * FROM collections WHERE category = ? ORDER BY popularity_index DESC, id LIMIT ?`
	if err := r.db.SelectContext(ctx, &result, query, category, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(collections by category) > %w", err)
	}
	return result, nil
}

// Upsert inserts a collection record or refreshes the row sharing its
// (publisher, title) identity.
func (r *DBRepository) Upsert(ctx context.Context, record *Record) error {
	query := `INSERT INTO collections (
			title, publisher, category, summary, features, popularity_index, buzz_count
		) VALUES (
			:title, :publisher, :category, :summary, :features, :popularity_index, :buzz_count
		) ON DUPLICATE KEY UPDATE
			category = VALUES(category), summary = VALUES(summary),
			features = VALUES(features), popularity_index = VALUES(popularity_index),
			buzz_count = VALUES(buzz_count)`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("db.NamedExecContext(upsert collection) > %w", err)
	}
	return nil
}
