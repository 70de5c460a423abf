package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"article-service/internal/auth"
	"article-service/internal/model"
	"article-service/internal/response"
)

// ArticleService is the article API the handlers call.
type ArticleService interface {
	CreateArticle(ctx context.Context, dto model.ArticleDTO, ownerID int64) (model.ArticleModel, error)
	UpdateArticle(ctx context.Context, id, ownerID int64, dto model.ArticleDTO) (model.ArticleModel, error)
	DeleteArticle(ctx context.Context, id, ownerID int64) (int64, error)
	GetArticleByID(ctx context.Context, id int64) (model.ArticleModel, error)
	GetArticlesByAuthorID(ctx context.Context, ownerID int64, page model.Pagination) ([]model.ArticleModel, error)
	GetArticlesByDate(ctx context.Context, date string, page model.Pagination) ([]model.ArticleModel, error)
}

// AuthService registers users and issues tokens.
type AuthService interface {
	Register(ctx context.Context, dto model.UserDTO) (*model.User, error)
	Login(ctx context.Context, email, password string) (model.AccessToken, error)
}

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Deps struct {
	Articles     ArticleService
	Auth         AuthService
	JWTSecret    string
	Logger       *zap.SugaredLogger
	HealthChecks map[string]HealthCheck
}

// Server serves the REST API.
type Server struct {
	articles  ArticleService
	auth      AuthService
	jwtSecret string
	logger    *zap.SugaredLogger
	checks    map[string]HealthCheck
	validate  *validator.Validate
}

func NewServer(d Deps) *Server {
	return &Server{
		articles:  d.Articles,
		auth:      d.Auth,
		jwtSecret: d.JWTSecret,
		logger:    d.Logger,
		checks:    d.HealthChecks,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/health", s.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
	})

	r.Route("/articles", func(r chi.Router) {
		r.Get("/by-author/{id}", s.GetArticlesByAuthor)
		r.Get("/by-date/{date}", s.GetArticlesByDate)
		r.Get("/{id}", s.GetArticle)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(s.jwtSecret))
			r.Post("/", s.CreateArticle)
			r.Patch("/{id}", s.UpdateArticle)
			r.Delete("/{id}", s.DeleteArticle)
		})
	})

	return r
}

// Health pings every registered dependency.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	var errs []error
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			s.logger.Warnw("[Health] dependency unhealthy", "dependency", name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if len(errs) > 0 {
		_ = render.Render(w, r, response.ErrUnavailable(errors.Join(errs...)))
		return
	}

	_ = render.Render(w, r, response.OK("Healthy", nil))
}
