package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"article-service/internal/db"
	"article-service/internal/model"
)

const uniqueViolation = "23505"

// ErrDuplicateEmail is returned by Create when the email is already taken.
var ErrDuplicateEmail = errors.New("email already registered")

// userPostgresRepo implement UserRepository with PostgreSQL
type userPostgresRepo struct {
	db db.DBTX
}

func NewUserPostgresRepository(conn db.DBTX) UserRepository {
	return &userPostgresRepo{db: conn}
}

func (r *userPostgresRepo) findOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var user model.User
	err := r.db.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user failed: %w", err)
	}
	return &user, nil
}

func (r *userPostgresRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return r.findOne(ctx, `SELECT id, name, email, password FROM users WHERE id = $1`, id)
}

func (r *userPostgresRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT id, name, email, password FROM users WHERE email = $1`, email)
}

func (r *userPostgresRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password
	`
	var created model.User
	err := r.db.QueryRow(ctx, query, user.Name, user.Email, user.Password).
		Scan(&created.ID, &created.Name, &created.Email, &created.Password)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("create user failed: %w", err)
	}
	return &created, nil
}
