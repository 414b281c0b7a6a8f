package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gym-trainer-service/internal/database"
	"gym-trainer-service/internal/domain"
)

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	queries *database.Queries
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(queries *database.Queries) domain.UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

// Create сохраняет нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	dbUser, err := database.QueriesFromContext(ctx, r.queries).CreateUser(ctx, database.CreateUserParams{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		IsActive:     user.IsActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toDomainUser(dbUser), nil
}

// GetByUsername возвращает пользователя по username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	dbUser, err := database.QueriesFromContext(ctx, r.queries).GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toDomainUser(dbUser), nil
}

// ExistsByUsername проверяет, занят ли username.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	count, err := database.QueriesFromContext(ctx, r.queries).UsernameExists(ctx, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return count > 0, nil
}

func toDomainUser(dbUser database.User) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		FirstName:    dbUser.FirstName,
		LastName:     dbUser.LastName,
		Username:     dbUser.Username,
		PasswordHash: dbUser.PasswordHash,
		IsActive:     dbUser.IsActive,
	}
}
