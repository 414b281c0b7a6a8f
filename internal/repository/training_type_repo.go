package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gym-trainer-service/internal/database"
	"gym-trainer-service/internal/domain"
)

// TrainingTypeRepository реализует domain.TrainingTypeRepository для справочника специализаций.
type TrainingTypeRepository struct {
	queries *database.Queries
}

// NewTrainingTypeRepository создает новый экземпляр TrainingTypeRepository.
func NewTrainingTypeRepository(queries *database.Queries) domain.TrainingTypeRepository {
	return &TrainingTypeRepository{
		queries: queries,
	}
}

// GetByID возвращает тип тренировки по идентификатору.
func (r *TrainingTypeRepository) GetByID(ctx context.Context, id string) (*domain.TrainingType, error) {
	dbType, err := database.QueriesFromContext(ctx, r.queries).GetTrainingTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTrainingTypeNotFound
		}
		return nil, fmt.Errorf("failed to get training type: %w", err)
	}

	return &domain.TrainingType{
		ID:   dbType.TrainingTypeID,
		Name: dbType.TrainingTypeName,
	}, nil
}

// List возвращает все типы тренировок.
func (r *TrainingTypeRepository) List(ctx context.Context) ([]*domain.TrainingType, error) {
	dbTypes, err := database.QueriesFromContext(ctx, r.queries).ListTrainingTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list training types: %w", err)
	}

	result := make([]*domain.TrainingType, len(dbTypes))
	for i, dbType := range dbTypes {
		result[i] = &domain.TrainingType{
			ID:   dbType.TrainingTypeID,
			Name: dbType.TrainingTypeName,
		}
	}

	return result, nil
}
