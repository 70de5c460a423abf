package server

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"article-service/internal/model"
)

const (
	msgIDRequired        = "Id field required"
	msgInvalidPagination = "Page and limit values should be => 0 "
	msgFieldsRequired    = "All fields must be filled."
)

var dateFormat = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])-(0[1-9]|1[0-2])-\d{4}$`)

var errMissingBody = errors.New("missing request body")

// ArticleRequest is the create/update payload.
type ArticleRequest struct {
	*model.ArticleDTO
}

func (a *ArticleRequest) Bind(r *http.Request) error {
	if a.ArticleDTO == nil {
		return errMissingBody
	}
	a.Name = strings.TrimSpace(a.Name)
	return nil
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	*model.UserDTO
}

func (u *RegisterRequest) Bind(r *http.Request) error {
	if u.UserDTO == nil {
		return errMissingBody
	}
	u.Email = strings.TrimSpace(u.Email)
	return nil
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (l *LoginRequest) Bind(r *http.Request) error {
	return nil
}

// idParam parses a positive {id} URL parameter.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// paginationParams reads ?page and ?limit. Absent values fall back to the
// first page of ten.
func paginationParams(r *http.Request) (model.Pagination, bool) {
	p := model.DefaultPagination()
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return p, false
		}
		p.Page = v
	}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return p, false
		}
		p.Limit = v
	}
	return p, true
}
