package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-service/internal/model"
)

var articleCols = []string{"id", "name", "description", "published_at", "owner_id"}

func createTestArticleRepository(t *testing.T) (ArticleRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewArticlePostgresRepository(mock), mock
}

func TestArticleRepository_FindByID(t *testing.T) {
	published := time.Date(2024, time.April, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface)
		want    *model.Article
		wantErr bool
	}{
		{
			name: "found",
			setupDB: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, name, description, published_at, owner_id").
					WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows(articleCols).
						AddRow(int64(1), "Valid Name", "A description at least 24 chars long", published, int64(7)))
			},
			want: &model.Article{
				ID:          1,
				Name:        "Valid Name",
				Description: "A description at least 24 chars long",
				PublishedAt: published,
				OwnerID:     7,
			},
		},
		{
			name: "not found returns nil",
			setupDB: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, name").
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "database error",
			setupDB: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, name").
					WithArgs(int64(1)).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := createTestArticleRepository(t)
			tt.setupDB(mock)

			got, err := repo.FindByID(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "query article failed")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestArticleRepository_FindByOwner(t *testing.T) {
	repo, mock := createTestArticleRepository(t)
	published := time.Date(2024, time.April, 19, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM articles\\s+WHERE owner_id = \\$1").
		WithArgs(int64(7), 5, 5).
		WillReturnRows(pgxmock.NewRows(articleCols).
			AddRow(int64(3), "third", "desc", published, int64(7)).
			AddRow(int64(2), "second", "desc", published, int64(7)))

	articles, err := repo.FindByOwner(context.Background(), 7, 5, 5)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, int64(3), articles[0].ID)
	assert.Equal(t, int64(2), articles[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepository_FindByOwner_Empty(t *testing.T) {
	repo, mock := createTestArticleRepository(t)

	mock.ExpectQuery("WHERE owner_id").
		WithArgs(int64(7), 10, 0).
		WillReturnRows(pgxmock.NewRows(articleCols))

	articles, err := repo.FindByOwner(context.Background(), 7, 0, 10)
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepository_FindByDateRange(t *testing.T) {
	repo, mock := createTestArticleRepository(t)
	start := time.Date(2024, time.April, 19, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 19, 23, 59, 59, 999_000_000, time.UTC)

	mock.ExpectQuery("WHERE published_at BETWEEN \\$1 AND \\$2").
		WithArgs(start, end, 10, 0).
		WillReturnRows(pgxmock.NewRows(articleCols).
			AddRow(int64(1), "first", "desc", start, int64(1)).
			AddRow(int64(2), "last", "desc", end, int64(2)))

	articles, err := repo.FindByDateRange(context.Background(), start, end, 0, 10)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, end, articles[1].PublishedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepository_FindByDateRange_QueryError(t *testing.T) {
	repo, mock := createTestArticleRepository(t)

	mock.ExpectQuery("WHERE published_at BETWEEN").
		WillReturnError(errors.New("timeout"))

	_, err := repo.FindByDateRange(context.Background(), time.Now(), time.Now(), 0, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query articles failed")
}

func TestArticleRepository_Save(t *testing.T) {
	repo, mock := createTestArticleRepository(t)
	published := time.Date(2024, time.April, 19, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO articles").
		WithArgs("Valid Name", "A description at least 24 chars long", pgxmock.AnyArg(), int64(7)).
		WillReturnRows(pgxmock.NewRows(articleCols).
			AddRow(int64(11), "Valid Name", "A description at least 24 chars long", published, int64(7)))

	saved, err := repo.Save(context.Background(), &model.Article{
		Name:        "Valid Name",
		Description: "A description at least 24 chars long",
		PublishedAt: published,
		OwnerID:     7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), saved.ID)
	assert.Equal(t, published, saved.PublishedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepository_UpdateFields(t *testing.T) {
	tests := []struct {
		name    string
		result  int64
		execErr error
		wantErr string
	}{
		{name: "updated", result: 1},
		{name: "no rows", result: 0, wantErr: "not found"},
		{name: "exec error", execErr: errors.New("deadlock"), wantErr: "update article failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := createTestArticleRepository(t)

			exp := mock.ExpectExec("UPDATE articles\\s+SET name = \\$1, description = \\$2").
				WithArgs("new name", "new description", int64(4))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("UPDATE", tt.result))
			}

			err := repo.UpdateFields(context.Background(), 4, "new name", "new description")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestArticleRepository_Delete(t *testing.T) {
	repo, mock := createTestArticleRepository(t)

	mock.ExpectExec("DELETE FROM articles WHERE id = \\$1").
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM articles").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Delete(context.Background(), 4))
	assert.Error(t, repo.Delete(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}
