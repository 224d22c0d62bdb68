package shelf

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaekmaru/chaekmaru/internal/classify"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestDBRepository_FindByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewDBRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "title", "publisher", "category", "summary", "features",
		"popularity_index", "buzz_count", "created_at", "updated_at",
	}).
		AddRow(1, "자연이랑", "아람", "자연탐구", "자연관찰 전집", `{"세이펜":true}`, 4321, 980, now, now).
		AddRow(2, "호기심 과학", "한솔", "자연탐구", "과학 전집", `{}`, 1200, 5200, now, now)

	mock.ExpectQuery("SELECT \\* FROM collections WHERE category = \\?").
		WithArgs("자연탐구", 10).
		WillReturnRows(rows)

	records, err := repository.FindByCategory(context.Background(), classify.CategoryNature, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "자연이랑", records[0].Title)
	assert.Equal(t, classify.CategoryNature, records[0].Category)
	assert.True(t, records[0].Features["세이펜"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewDBRepository(db)

	mock.ExpectExec("INSERT INTO collections").
		WillReturnResult(sqlmock.NewResult(1, 1))

	record := &Record{
		Title:           "자연이랑",
		Publisher:       "아람",
		Category:        classify.CategoryNature,
		Summary:         "자연관찰 전집",
		Features:        FeatureMap{"세이펜": true},
		PopularityIndex: 4321,
		BuzzCount:       980,
	}
	require.NoError(t, repository.Upsert(context.Background(), record))
	require.NoError(t, mock.ExpectationsWereMet())
}
