package model

import "time"

// Article is the persisted article row.
type Article struct {
	ID          int64
	Name        string
	Description string
	PublishedAt time.Time
	OwnerID     int64
}

// ArticleDTO carries the client-supplied article fields for create and update.
type ArticleDTO struct {
	Name        string `json:"name" validate:"required,min=4,max=26"`
	Description string `json:"description" validate:"required,min=24,max=32767"`
}

// ArticleModel is the response projection of an Article. It is also the shape
// stored in the cache, so field names are part of the cached snapshot format.
type ArticleModel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PublishedAt time.Time `json:"publishedAt"`
	AuthorID    int64     `json:"authorId"`
}
