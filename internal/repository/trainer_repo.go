package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gym-trainer-service/internal/database"
	"gym-trainer-service/internal/domain"

	"github.com/google/uuid"
)

// TrainerRepository реализует взаимодействие с данными тренеров в PostgreSQL.
type TrainerRepository struct {
	queries *database.Queries
}

// NewTrainerRepository создает новый экземпляр TrainerRepository.
func NewTrainerRepository(queries *database.Queries) domain.TrainerRepository {
	return &TrainerRepository{
		queries: queries,
	}
}

// Save создает тренера (если ID пустой) или обновляет специализацию и профиль пользователя.
// Для атомарности вызывать внутри Transactor.WithinTransaction.
func (r *TrainerRepository) Save(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	q := database.QueriesFromContext(ctx, r.queries)

	if trainer.ID == "" {
		id := uuid.NewString()
		err := q.CreateTrainer(ctx, database.CreateTrainerParams{
			ID:             id,
			UserID:         trainer.User.ID,
			TrainingTypeID: trainer.TrainingType.ID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create trainer: %w", err)
		}

		trainer.ID = id
		if trainer.Trainees == nil {
			trainer.Trainees = []*domain.TraineeSummary{}
		}
		return trainer, nil
	}

	// 1. Обновляем специализацию
	err := q.UpdateTrainerTrainingType(ctx, database.UpdateTrainerTrainingTypeParams{
		ID:             trainer.ID,
		TrainingTypeID: trainer.TrainingType.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update trainer training type: %w", err)
	}

	// 2. Обновляем профиль пользователя
	err = q.UpdateUserProfile(ctx, database.UpdateUserProfileParams{
		ID:        trainer.User.ID,
		FirstName: trainer.User.FirstName,
		LastName:  trainer.User.LastName,
		IsActive:  trainer.User.IsActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update trainer user profile: %w", err)
	}

	return trainer, nil
}

// GetByUserID возвращает тренера вместе с подопечными по ID пользователя.
func (r *TrainerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Trainer, error) {
	q := database.QueriesFromContext(ctx, r.queries)

	row, err := q.GetTrainerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTrainerNotFound
		}
		return nil, fmt.Errorf("failed to get trainer: %w", err)
	}

	dbTrainees, err := q.GetTrainerTrainees(ctx, row.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get trainer trainees: %w", err)
	}

	trainees := make([]*domain.TraineeSummary, 0, len(dbTrainees))
	for _, t := range dbTrainees {
		trainees = append(trainees, &domain.TraineeSummary{
			Username:  t.Username,
			FirstName: t.FirstName,
			LastName:  t.LastName,
		})
	}

	return &domain.Trainer{
		ID: row.ID,
		User: &domain.User{
			ID:           row.UserID,
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			Username:     row.Username,
			PasswordHash: row.PasswordHash,
			IsActive:     row.IsActive,
		},
		TrainingType: &domain.TrainingType{
			ID:   row.TrainingTypeID,
			Name: row.TrainingTypeName,
		},
		Trainees: trainees,
	}, nil
}

// GetUnassignedActive возвращает активных тренеров без подопечных, упорядоченных по username.
func (r *TrainerRepository) GetUnassignedActive(ctx context.Context) ([]*domain.Trainer, error) {
	rows, err := database.QueriesFromContext(ctx, r.queries).GetUnassignedActiveTrainers(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get unassigned active trainers: %w", err)
	}

	trainers := make([]*domain.Trainer, 0, len(rows))
	for _, row := range rows {
		trainers = append(trainers, &domain.Trainer{
			ID: row.ID,
			User: &domain.User{
				ID:        row.UserID,
				FirstName: row.FirstName,
				LastName:  row.LastName,
				Username:  row.Username,
				IsActive:  row.IsActive,
			},
			TrainingType: &domain.TrainingType{
				ID:   row.TrainingTypeID,
				Name: row.TrainingTypeName,
			},
			Trainees: []*domain.TraineeSummary{},
		})
	}

	return trainers, nil
}
