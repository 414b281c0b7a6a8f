package usecase

import (
	"gym-trainer-service/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// PasswordAuthenticator сверяет пароль с bcrypt-хэшем пользователя.
type PasswordAuthenticator struct{}

// NewPasswordAuthenticator создает новый экземпляр PasswordAuthenticator.
func NewPasswordAuthenticator() domain.AuthenticationService {
	return &PasswordAuthenticator{}
}

// CheckAccess возвращает true, если пароль совпадает с хэшем.
func (a *PasswordAuthenticator) CheckAccess(password string, user *domain.User) bool {
	if user == nil || user.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
