package mocks

import (
	"context"

	"gym-trainer-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// UserService - мок domain.UserService.
type UserService struct {
	mock.Mock
}

func (m *UserService) Save(ctx context.Context, firstName, lastName string) (*domain.User, error) {
	args := m.Called(ctx, firstName, lastName)
	return userArg(args, 0), args.Error(1)
}

func (m *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	return userArg(args, 0), args.Error(1)
}

// AuthenticationService - мок domain.AuthenticationService.
type AuthenticationService struct {
	mock.Mock
}

func (m *AuthenticationService) CheckAccess(password string, user *domain.User) bool {
	args := m.Called(password, user)
	return args.Bool(0)
}

// TrainerUseCase - мок domain.TrainerUseCase.
type TrainerUseCase struct {
	mock.Mock
}

func (m *TrainerUseCase) CreateTrainer(ctx context.Context, input domain.TrainerInput) (*domain.Trainer, error) {
	args := m.Called(ctx, input)
	return trainerArg(args, 0), args.Error(1)
}

func (m *TrainerUseCase) GetTrainer(ctx context.Context, username, password string) (*domain.Trainer, error) {
	args := m.Called(ctx, username, password)
	return trainerArg(args, 0), args.Error(1)
}

func (m *TrainerUseCase) UpdateTrainerProfile(ctx context.Context, username, password string, input domain.TrainerProfileInput) (*domain.Trainer, error) {
	args := m.Called(ctx, username, password, input)
	return trainerArg(args, 0), args.Error(1)
}

func (m *TrainerUseCase) GetUnassignedActiveTrainers(ctx context.Context, username, password string) ([]*domain.Trainer, error) {
	args := m.Called(ctx, username, password)
	return trainersArg(args, 0), args.Error(1)
}

// TrainingTypeUseCase - мок domain.TrainingTypeUseCase.
type TrainingTypeUseCase struct {
	mock.Mock
}

func (m *TrainingTypeUseCase) ListTrainingTypes(ctx context.Context) ([]*domain.TrainingType, error) {
	args := m.Called(ctx)
	var types []*domain.TrainingType
	if v := args.Get(0); v != nil {
		types = v.([]*domain.TrainingType)
	}
	return types, args.Error(1)
}

// Transactor выполняет fn сразу и запоминает результат транзакции.
type Transactor struct {
	Calls      int
	Committed  int
	RolledBack int
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	if err := fn(ctx); err != nil {
		t.RolledBack++
		return err
	}
	t.Committed++
	return nil
}
