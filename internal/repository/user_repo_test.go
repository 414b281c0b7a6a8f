package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"gym-trainer-service/internal/database"
	"gym-trainer-service/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "first_name", "last_name", "username", "password_hash", "is_active", "created_at"}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *database.Queries) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock, database.New(db)
}

func TestUserRepository_Create_Success(t *testing.T) {
	_, mock, queries := newMockDB(t)
	repo := NewUserRepository(queries)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("u-1", "John", "Doe", "John.Doe", "hash", true).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-1", "John", "Doe", "John.Doe", "hash", true, time.Now()))

	user, err := repo.Create(context.Background(), &domain.User{
		ID:           "u-1",
		FirstName:    "John",
		LastName:     "Doe",
		Username:     "John.Doe",
		PasswordHash: "hash",
		IsActive:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "John.Doe", user.Username)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DBError(t *testing.T) {
	_, mock, queries := newMockDB(t)
	repo := NewUserRepository(queries)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errors.New("db down"))

	user, err := repo.Create(context.Background(), &domain.User{ID: "u-1", Username: "John.Doe"})

	assert.Nil(t, user)
	assert.ErrorContains(t, err, "failed to create user: db down")
}

func TestUserRepository_GetByUsername_Found(t *testing.T) {
	_, mock, queries := newMockDB(t)
	repo := NewUserRepository(queries)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1")).
		WithArgs("John.Doe").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-1", "John", "Doe", "John.Doe", "hash", false, time.Now()))

	user, err := repo.GetByUsername(context.Background(), "John.Doe")

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.False(t, user.IsActive)
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	_, mock, queries := newMockDB(t)
	repo := NewUserRepository(queries)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.GetByUsername(context.Background(), "ghost")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	testCases := []struct {
		name     string
		count    int64
		expected bool
	}{
		{"Taken", 1, true},
		{"Free", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mock, queries := newMockDB(t)
			repo := NewUserRepository(queries)

			mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
				WithArgs("John.Doe").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tc.count))

			exists, err := repo.ExistsByUsername(context.Background(), "John.Doe")

			require.NoError(t, err)
			assert.Equal(t, tc.expected, exists)
		})
	}
}
