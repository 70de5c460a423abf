package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"article-service/internal/db"
	"article-service/internal/model"
)

const articleColumns = `id, name, description, published_at, owner_id`

// articlePostgresRepo implement ArticleRepository with PostgreSQL
type articlePostgresRepo struct {
	db db.DBTX
}

// NewArticlePostgresRepository
func NewArticlePostgresRepository(conn db.DBTX) ArticleRepository {
	return &articlePostgresRepo{db: conn}
}

func scanArticle(row pgx.Row) (*model.Article, error) {
	var article model.Article
	err := row.Scan(
		&article.ID,
		&article.Name,
		&article.Description,
		&article.PublishedAt,
		&article.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindByID
func (r *articlePostgresRepo) FindByID(ctx context.Context, id int64) (*model.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE id = $1
	`
	article, err := scanArticle(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query article failed: %w", err)
	}
	return article, nil
}

// FindByOwner
func (r *articlePostgresRepo) FindByOwner(ctx context.Context, ownerID int64, skip, take int) ([]*model.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE owner_id = $1
		ORDER BY published_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, ownerID, take, skip)
}

// FindByDateRange
func (r *articlePostgresRepo) FindByDateRange(ctx context.Context, start, end time.Time, skip, take int) ([]*model.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE published_at BETWEEN $1 AND $2
		ORDER BY published_at ASC, id ASC
		LIMIT $3 OFFSET $4
	`
	return r.list(ctx, query, start, end, take, skip)
}

func (r *articlePostgresRepo) list(ctx context.Context, query string, args ...any) ([]*model.Article, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles failed: %w", err)
	}
	defer rows.Close()

	articles := make([]*model.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article failed: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles failed: %w", err)
	}
	return articles, nil
}

// Save new article
func (r *articlePostgresRepo) Save(ctx context.Context, article *model.Article) (*model.Article, error) {
	query := `
		INSERT INTO articles (name, description, published_at, owner_id)
		VALUES ($1, $2, COALESCE($3, CURRENT_TIMESTAMP), $4)
		RETURNING ` + articleColumns

	var publishedAt *time.Time
	if !article.PublishedAt.IsZero() {
		publishedAt = &article.PublishedAt
	}

	saved, err := scanArticle(r.db.QueryRow(ctx, query, article.Name, article.Description, publishedAt, article.OwnerID))
	if err != nil {
		return nil, fmt.Errorf("create article failed: %w", err)
	}
	return saved, nil
}

// UpdateFields
func (r *articlePostgresRepo) UpdateFields(ctx context.Context, id int64, name, description string) error {
	query := `
		UPDATE articles
		SET name = $1, description = $2
		WHERE id = $3
	`
	result, err := r.db.Exec(ctx, query, name, description, id)
	if err != nil {
		return fmt.Errorf("update article failed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("article with ID %d not found", id)
	}
	return nil
}

// Delete article
func (r *articlePostgresRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM articles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete article failed: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("article with ID %d not found", id)
	}
	return nil
}
