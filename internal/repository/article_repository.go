package repository

import (
	"context"
	"time"

	"article-service/internal/model"
)

// ArticleRepository define persistence operations for articles
type ArticleRepository interface {
	// FindByID returns nil, nil when no article has the id
	FindByID(ctx context.Context, id int64) (*model.Article, error)

	// FindByOwner lists an owner's articles, newest first
	FindByOwner(ctx context.Context, ownerID int64, skip, take int) ([]*model.Article, error)

	// FindByDateRange lists articles published within [start, end] inclusive
	FindByDateRange(ctx context.Context, start, end time.Time, skip, take int) ([]*model.Article, error)

	// Save inserts the article and returns it with id and published_at assigned
	Save(ctx context.Context, article *model.Article) (*model.Article, error)

	// UpdateFields changes name and description only
	UpdateFields(ctx context.Context, id int64, name, description string) error

	// Delete article
	Delete(ctx context.Context, id int64) error
}

// UserRepository define persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
}
