package mocks

import (
	"context"

	"gym-trainer-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// UserRepository - мок domain.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	return userArg(args, 0), args.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	return userArg(args, 0), args.Error(1)
}

func (m *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// TrainingTypeRepository - мок domain.TrainingTypeRepository.
type TrainingTypeRepository struct {
	mock.Mock
}

func (m *TrainingTypeRepository) GetByID(ctx context.Context, id string) (*domain.TrainingType, error) {
	args := m.Called(ctx, id)
	var tt *domain.TrainingType
	if v := args.Get(0); v != nil {
		tt = v.(*domain.TrainingType)
	}
	return tt, args.Error(1)
}

func (m *TrainingTypeRepository) List(ctx context.Context) ([]*domain.TrainingType, error) {
	args := m.Called(ctx)
	var types []*domain.TrainingType
	if v := args.Get(0); v != nil {
		types = v.([]*domain.TrainingType)
	}
	return types, args.Error(1)
}

// TrainerRepository - мок domain.TrainerRepository.
type TrainerRepository struct {
	mock.Mock
}

func (m *TrainerRepository) Save(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	args := m.Called(ctx, trainer)
	return trainerArg(args, 0), args.Error(1)
}

func (m *TrainerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Trainer, error) {
	args := m.Called(ctx, userID)
	return trainerArg(args, 0), args.Error(1)
}

func (m *TrainerRepository) GetUnassignedActive(ctx context.Context) ([]*domain.Trainer, error) {
	args := m.Called(ctx)
	return trainersArg(args, 0), args.Error(1)
}

func userArg(args mock.Arguments, i int) *domain.User {
	if v := args.Get(i); v != nil {
		return v.(*domain.User)
	}
	return nil
}

func trainerArg(args mock.Arguments, i int) *domain.Trainer {
	if v := args.Get(i); v != nil {
		return v.(*domain.Trainer)
	}
	return nil
}

func trainersArg(args mock.Arguments, i int) []*domain.Trainer {
	if v := args.Get(i); v != nil {
		return v.([]*domain.Trainer)
	}
	return nil
}
