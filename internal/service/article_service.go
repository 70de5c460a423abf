package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"article-service/internal/apperror"
	"article-service/internal/cache"
	"article-service/internal/mapper"
	"article-service/internal/metrics"
	"article-service/internal/model"
	"article-service/internal/repository"
)

// ArticleService owns article reads and writes: authorization against the
// owning user, persistence, and keeping the cache consistent with the store.
//
// Reads go cache first and fall back to the store. Writes hit the store,
// then delete every cache entry whose data set they touched. Listings are
// cached for the canonical first page only; other pages always go to the store.
type ArticleService struct {
	users    repository.UserRepository
	articles repository.ArticleRepository
	cache    cache.Gateway
	mapper   *mapper.Mapper
	logger   *zap.SugaredLogger
}

func NewArticleService(
	users repository.UserRepository,
	articles repository.ArticleRepository,
	gateway cache.Gateway,
	m *mapper.Mapper,
	logger *zap.SugaredLogger,
) *ArticleService {
	return &ArticleService{
		users:    users,
		articles: articles,
		cache:    gateway,
		mapper:   m,
		logger:   logger,
	}
}

// CreateArticle saves a new article owned by ownerID.
func (s *ArticleService) CreateArticle(ctx context.Context, dto model.ArticleDTO, ownerID int64) (model.ArticleModel, error) {
	user, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return model.ArticleModel{}, err
	}
	if user == nil {
		s.logger.Infow("[CreateArticle] user not found", "user_id", ownerID)
		return model.ArticleModel{}, apperror.ErrUserNotFound
	}

	saved, err := s.articles.Save(ctx, s.mapper.DTOToEntity(dto, user))
	if err != nil {
		return model.ArticleModel{}, err
	}
	created := s.mapper.EntityToModel(saved)

	s.logger.Infow("[CreateArticle] article created", "article_id", saved.ID, "user_id", ownerID)

	if err := s.invalidate(ctx,
		cache.AuthorKey(saved.OwnerID),
		cache.DateKey(s.mapper.DateKey(saved.PublishedAt)),
	); err != nil {
		return model.ArticleModel{}, err
	}
	s.store(ctx, cache.ArticleKey(saved.ID), created)

	return created, nil
}

// UpdateArticle replaces name and description of an article owned by ownerID.
// The returned model is re-read from the store after the update.
func (s *ArticleService) UpdateArticle(ctx context.Context, id, ownerID int64, dto model.ArticleDTO) (model.ArticleModel, error) {
	article, err := s.ownedArticle(ctx, id, ownerID)
	if err != nil {
		return model.ArticleModel{}, err
	}

	if err := s.articles.UpdateFields(ctx, article.ID, dto.Name, dto.Description); err != nil {
		return model.ArticleModel{}, err
	}

	updated, err := s.articles.FindByID(ctx, article.ID)
	if err != nil {
		return model.ArticleModel{}, err
	}
	if updated == nil {
		return model.ArticleModel{}, apperror.ErrArticleNotFound
	}

	s.logger.Infow("[UpdateArticle] article updated", "article_id", updated.ID, "user_id", ownerID)

	if err := s.invalidate(ctx,
		cache.ArticleKey(updated.ID),
		cache.AuthorKey(updated.OwnerID),
		cache.DateKey(s.mapper.DateKey(updated.PublishedAt)),
	); err != nil {
		return model.ArticleModel{}, err
	}

	result := s.mapper.EntityToModel(updated)
	s.store(ctx, cache.ArticleKey(updated.ID), result)

	return result, nil
}

// DeleteArticle removes an article owned by ownerID and returns its id.
func (s *ArticleService) DeleteArticle(ctx context.Context, id, ownerID int64) (int64, error) {
	article, err := s.ownedArticle(ctx, id, ownerID)
	if err != nil {
		return 0, err
	}

	if err := s.articles.Delete(ctx, article.ID); err != nil {
		return 0, err
	}

	s.logger.Infow("[DeleteArticle] article deleted", "article_id", article.ID, "user_id", ownerID)

	if err := s.invalidate(ctx,
		cache.ArticleKey(article.ID),
		cache.AuthorKey(article.OwnerID),
		cache.DateKey(s.mapper.DateKey(article.PublishedAt)),
	); err != nil {
		return 0, err
	}

	return article.ID, nil
}

// GetArticleByID reads one article through the cache.
func (s *ArticleService) GetArticleByID(ctx context.Context, id int64) (model.ArticleModel, error) {
	key := cache.ArticleKey(id)

	var result model.ArticleModel
	if !s.load(ctx, key, &result) {
		article, err := s.articles.FindByID(ctx, id)
		if err != nil {
			return model.ArticleModel{}, err
		}
		if article == nil {
			return model.ArticleModel{}, apperror.ErrArticleMissing
		}
		result = s.mapper.EntityToModel(article)
	}

	s.store(ctx, key, result)
	return result, nil
}

// GetArticlesByAuthorID lists one page of an author's articles.
func (s *ArticleService) GetArticlesByAuthorID(ctx context.Context, ownerID int64, page model.Pagination) ([]model.ArticleModel, error) {
	key := cache.AuthorKey(ownerID)

	var cached []model.ArticleModel
	if page.IsDefault() && s.load(ctx, key, &cached) {
		return cached, nil
	}

	user, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrAuthorNotFound
	}

	articles, err := s.articles.FindByOwner(ctx, ownerID, page.Skip(), page.Take())
	if err != nil {
		return nil, err
	}
	result := s.mapper.EntitiesToModels(articles)

	if page.IsDefault() {
		s.store(ctx, key, result)
	}
	return result, nil
}

// GetArticlesByDate lists one page of the articles published on a
// dd-mm-yyyy day.
func (s *ArticleService) GetArticlesByDate(ctx context.Context, date string, page model.Pagination) ([]model.ArticleModel, error) {
	start, end, err := s.mapper.DateStringToDayRange(date)
	if err != nil {
		return nil, apperror.ErrInvalidDate
	}
	key := cache.DateKey(s.mapper.DateKey(start))

	var cached []model.ArticleModel
	if page.IsDefault() && s.load(ctx, key, &cached) {
		return cached, nil
	}

	articles, err := s.articles.FindByDateRange(ctx, start, end, page.Skip(), page.Take())
	if err != nil {
		return nil, err
	}
	result := s.mapper.EntitiesToModels(articles)

	if page.IsDefault() {
		s.store(ctx, key, result)
	}
	return result, nil
}

// ownedArticle runs the mutation preconditions in order: the acting user
// exists, the article exists, and only then that the user owns it.
func (s *ArticleService) ownedArticle(ctx context.Context, id, ownerID int64) (*model.Article, error) {
	user, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperror.ErrArticleNotFound
	}

	if article.OwnerID != user.ID {
		s.logger.Warnw("access denied", "article_id", id, "owner_id", article.OwnerID, "user_id", user.ID)
		return nil, apperror.ErrAccessDenied
	}
	return article, nil
}

// load reports a hit only when the entry exists and decodes. Gateway errors
// are logged and count as a miss.
func (s *ArticleService) load(ctx context.Context, key cache.Key, dst any) bool {
	hit, err := cache.GetJSON(ctx, s.cache, key, dst)
	if err != nil {
		metrics.CacheErrors.WithLabelValues("get").Inc()
		s.logger.Warnw("cache read failed, using database", "key", key.String(), "error", err)
		return false
	}
	if hit {
		metrics.CacheHits.WithLabelValues(string(key.Scope)).Inc()
	} else {
		metrics.CacheMisses.WithLabelValues(string(key.Scope)).Inc()
	}
	return hit
}

// store populates key. A failure leaves the key absent, which only costs a
// later miss, so it is logged and dropped.
func (s *ArticleService) store(ctx context.Context, key cache.Key, v any) {
	if err := cache.SetJSON(ctx, s.cache, key, v); err != nil {
		metrics.CacheErrors.WithLabelValues("set").Inc()
		s.logger.Warnw("cache write failed", "key", key.String(), "error", err)
	}
}

// invalidate deletes keys after a committed write. A failure here can leave a
// stale entry behind, so it is returned to the caller.
func (s *ArticleService) invalidate(ctx context.Context, keys ...cache.Key) error {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		metrics.CacheErrors.WithLabelValues("delete").Inc()
		s.logger.Errorw("cache invalidation failed", "keys", keys, "error", err)
		return fmt.Errorf("invalidate cache: %w", err)
	}
	return nil
}
