package domain

import "context"

// User представляет учетную запись пользователя.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Username     string
	PasswordHash string
	IsActive     bool

	// Password заполняется только при создании пользователя (сгенерированный пароль).
	Password string
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
