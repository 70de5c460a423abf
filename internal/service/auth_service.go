package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"article-service/internal/apperror"
	"article-service/internal/model"
	"article-service/internal/repository"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID int64, email string) (string, error)
}

type AuthService struct {
	users      repository.UserRepository
	issuer     TokenIssuer
	bcryptCost int
	logger     *zap.SugaredLogger
}

func NewAuthService(users repository.UserRepository, issuer TokenIssuer, bcryptCost int, logger *zap.SugaredLogger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		issuer:     issuer,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a user with a hashed password.
func (s *AuthService) Register(ctx context.Context, dto model.UserDTO) (*model.User, error) {
	duplicate, err := s.users.FindByEmail(ctx, dto.Email)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, apperror.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &model.User{
		Name:     dto.Name,
		Email:    dto.Email,
		Password: string(hash),
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil, apperror.ErrUserExists
	}
	if err != nil {
		return nil, err
	}

	s.logger.Infow("[Register] user created", "user_id", created.ID)
	return created, nil
}

// Login checks the credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.AccessToken, error) {
	candidate, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return model.AccessToken{}, err
	}
	if candidate == nil {
		return model.AccessToken{}, apperror.ErrUserNotExists
	}

	if err := bcrypt.CompareHashAndPassword([]byte(candidate.Password), []byte(password)); err != nil {
		return model.AccessToken{}, apperror.ErrCredentialsMismatch
	}

	token, err := s.issuer.GenerateToken(candidate.ID, candidate.Email)
	if err != nil {
		return model.AccessToken{}, err
	}

	s.logger.Infow("[Login] token issued", "user_id", candidate.ID)
	return model.AccessToken{AccessToken: token}, nil
}
