package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-service/internal/model"
)

var userCols = []string{"id", "name", "email", "password"}

func createTestUserRepository(t *testing.T) (UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewUserPostgresRepository(mock), mock
}

func TestUserRepository_FindByID(t *testing.T) {
	repo, mock := createTestUserRepository(t)

	mock.ExpectQuery("FROM users WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int64(1), "John", "john@mail.com", "hash"))
	mock.ExpectQuery("FROM users WHERE id = \\$1").
		WithArgs(int64(2)).
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &model.User{ID: 1, Name: "John", Email: "john@mail.com", Password: "hash"}, user)

	missing, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo, mock := createTestUserRepository(t)

	mock.ExpectQuery("FROM users WHERE email = \\$1").
		WithArgs("john@mail.com").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindByEmail(context.Background(), "john@mail.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query user failed")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := createTestUserRepository(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("John", "john@mail.com", "hash").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int64(5), "John", "john@mail.com", "hash"))

	created, err := repo.Create(context.Background(), &model.User{Name: "John", Email: "john@mail.com", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := createTestUserRepository(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("John", "john@mail.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &model.User{Name: "John", Email: "john@mail.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}
