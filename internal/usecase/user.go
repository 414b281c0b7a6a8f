package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"gym-trainer-service/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// UserUseCase создает учетные записи и ищет пользователей.
type UserUseCase struct {
	userRepo       domain.UserRepository
	passwordLength int
	bcryptCost     int
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo domain.UserRepository, passwordLength, bcryptCost int) domain.UserService {
	return &UserUseCase{
		userRepo:       userRepo,
		passwordLength: passwordLength,
		bcryptCost:     bcryptCost,
	}
}

// Save создает активного пользователя с username вида First.Last[N] и случайным паролем.
// Сгенерированный пароль возвращается в поле Password.
func (uc *UserUseCase) Save(ctx context.Context, firstName, lastName string) (*domain.User, error) {
	username, err := uc.uniqueUsername(ctx, firstName+"."+lastName)
	if err != nil {
		return nil, err
	}

	password, err := generatePassword(uc.passwordLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := uc.userRepo.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	user.Password = password
	return user, nil
}

// FindByUsername возвращает пользователя или domain.ErrUserNotFound.
func (uc *UserUseCase) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return uc.userRepo.GetByUsername(ctx, username)
}

// uniqueUsername подбирает первый свободный username: base, base1, base2, ...
func (uc *UserUseCase) uniqueUsername(ctx context.Context, base string) (string, error) {
	for i := 0; ; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s%d", base, i)
		}

		exists, err := uc.userRepo.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

func generatePassword(length int) (string, error) {
	limit := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
