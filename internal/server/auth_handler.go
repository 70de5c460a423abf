package server

import (
	"net/http"

	"github.com/go-chi/render"

	"article-service/internal/response"
)

// Register handles POST /auth/register.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	data := &RegisterRequest{}
	if err := render.Bind(r, data); err != nil {
		s.renderInvalid(w, r, msgFieldsRequired)
		return
	}
	if err := s.validate.Struct(data.UserDTO); err != nil {
		s.renderInvalid(w, r, msgFieldsRequired)
		return
	}

	created, err := s.auth.Register(r.Context(), *data.UserDTO)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, response.Created("Successfully register new user", created))
}

// Login handles POST /auth/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	data := &LoginRequest{}
	if err := render.Bind(r, data); err != nil {
		s.renderInvalid(w, r, msgFieldsRequired)
		return
	}
	if err := s.validate.Struct(data); err != nil {
		s.renderInvalid(w, r, msgFieldsRequired)
		return
	}

	token, err := s.auth.Login(r.Context(), data.Email, data.Password)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	render.JSON(w, r, token)
}
