package mapper

import (
	"fmt"
	"time"

	"article-service/internal/model"
)

// DateLayout is the dd-mm-yyyy layout used for date listings. Both request
// parsing and cache-key formatting go through it.
const DateLayout = "02-01-2006"

// Option configures a Mapper.
type Option func(*Mapper)

// WithClock overrides the publish-time source.
func WithClock(now func() time.Time) Option {
	return func(m *Mapper) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLocation sets the zone day boundaries are computed in.
func WithLocation(loc *time.Location) Option {
	return func(m *Mapper) {
		if loc != nil {
			m.loc = loc
		}
	}
}

// Mapper translates between transfer objects, entities and response models.
type Mapper struct {
	now func() time.Time
	loc *time.Location
}

// NewMapper returns a Mapper using the wall clock and local time.
func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{
		now: time.Now,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DTOToEntity builds a new, unsaved article owned by owner.
func (m *Mapper) DTOToEntity(dto model.ArticleDTO, owner *model.User) *model.Article {
	return &model.Article{
		Name:        dto.Name,
		Description: dto.Description,
		PublishedAt: m.now(),
		OwnerID:     owner.ID,
	}
}

// EntityToModel projects an article to its response shape.
func (m *Mapper) EntityToModel(article *model.Article) model.ArticleModel {
	return model.ArticleModel{
		ID:          article.ID,
		Name:        article.Name,
		Description: article.Description,
		PublishedAt: article.PublishedAt,
		AuthorID:    article.OwnerID,
	}
}

// ModelToEntity reverses EntityToModel for articles read back from the cache.
func (m *Mapper) ModelToEntity(am model.ArticleModel) *model.Article {
	return &model.Article{
		ID:          am.ID,
		Name:        am.Name,
		Description: am.Description,
		PublishedAt: am.PublishedAt,
		OwnerID:     am.AuthorID,
	}
}

// EntitiesToModels projects a listing, keeping store order.
func (m *Mapper) EntitiesToModels(articles []*model.Article) []model.ArticleModel {
	models := make([]model.ArticleModel, 0, len(articles))
	for _, a := range articles {
		models = append(models, m.EntityToModel(a))
	}
	return models
}

// DateStringToDayRange parses a dd-mm-yyyy string into the first and last
// millisecond of that day. Malformed or impossible dates (31-02-2024) are
// rejected.
func (m *Mapper) DateStringToDayRange(date string) (start, end time.Time, err error) {
	day, err := time.ParseInLocation(DateLayout, date, m.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}

	start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, m.loc)
	end = time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), m.loc)
	return start, end, nil
}

// DateKey formats t as the dd-mm-yyyy day it falls on.
func (m *Mapper) DateKey(t time.Time) string {
	return t.In(m.loc).Format(DateLayout)
}
