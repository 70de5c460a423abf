package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"article-service/internal/apperror"
	"article-service/internal/auth"
	"article-service/internal/response"
)

// renderError writes err and logs anything that is not a request rejection.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if apperror.StatusOf(err) >= http.StatusInternalServerError {
		s.logger.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	_ = render.Render(w, r, response.ErrFrom(err))
}

func (s *Server) renderInvalid(w http.ResponseWriter, r *http.Request, message string) {
	_ = render.Render(w, r, response.ErrInvalidRequest(message))
}

// CreateArticle handles POST /articles.
func (s *Server) CreateArticle(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.UserIDFromContext(r.Context())

	data := &ArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		s.renderInvalid(w, r, err.Error())
		return
	}
	if err := s.validate.Struct(data.ArticleDTO); err != nil {
		s.renderInvalid(w, r, validationMessage(err))
		return
	}

	created, err := s.articles.CreateArticle(r.Context(), *data.ArticleDTO, ownerID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, response.Created("Successfully add new article", created))
}

// GetArticle handles GET /articles/{id}.
func (s *Server) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		s.renderInvalid(w, r, msgIDRequired)
		return
	}

	article, err := s.articles.GetArticleByID(r.Context(), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, response.OK("Success", article))
}

// GetArticlesByAuthor handles GET /articles/by-author/{id}.
func (s *Server) GetArticlesByAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		s.renderInvalid(w, r, msgIDRequired)
		return
	}
	page, ok := paginationParams(r)
	if !ok {
		s.renderInvalid(w, r, msgInvalidPagination)
		return
	}

	articles, err := s.articles.GetArticlesByAuthorID(r.Context(), id, page)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, response.OK(fmt.Sprintf("Articles found: %d", len(articles)), articles))
}

// GetArticlesByDate handles GET /articles/by-date/{date}.
func (s *Server) GetArticlesByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !dateFormat.MatchString(date) {
		_ = render.Render(w, r, response.ErrFrom(apperror.ErrInvalidDate))
		return
	}
	page, ok := paginationParams(r)
	if !ok {
		s.renderInvalid(w, r, msgInvalidPagination)
		return
	}

	articles, err := s.articles.GetArticlesByDate(r.Context(), date, page)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, response.OK(fmt.Sprintf("Articles found: %d", len(articles)), articles))
}

// UpdateArticle handles PATCH /articles/{id}.
func (s *Server) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.UserIDFromContext(r.Context())

	id, ok := idParam(r)
	if !ok {
		s.renderInvalid(w, r, msgIDRequired)
		return
	}

	data := &ArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		s.renderInvalid(w, r, err.Error())
		return
	}
	if err := s.validate.Struct(data.ArticleDTO); err != nil {
		s.renderInvalid(w, r, validationMessage(err))
		return
	}

	updated, err := s.articles.UpdateArticle(r.Context(), id, ownerID, *data.ArticleDTO)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, response.OK("Success", updated))
}

// DeleteArticle handles DELETE /articles/{id}.
func (s *Server) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.UserIDFromContext(r.Context())

	id, ok := idParam(r)
	if !ok {
		s.renderInvalid(w, r, msgIDRequired)
		return
	}

	deleted, err := s.articles.DeleteArticle(r.Context(), id, ownerID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, response.OK(fmt.Sprintf("Article was removed with id: %d", deleted), nil))
}
