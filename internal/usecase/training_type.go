package usecase

import (
	"context"

	"gym-trainer-service/internal/domain"
)

// TrainingTypeUseCase реализует бизнес-логику для справочника специализаций.
type TrainingTypeUseCase struct {
	trainingTypeRepo domain.TrainingTypeRepository
}

// NewTrainingTypeUseCase создает новый экземпляр TrainingTypeUseCase.
func NewTrainingTypeUseCase(trainingTypeRepo domain.TrainingTypeRepository) domain.TrainingTypeUseCase {
	return &TrainingTypeUseCase{
		trainingTypeRepo: trainingTypeRepo,
	}
}

// ListTrainingTypes возвращает все специализации.
func (uc *TrainingTypeUseCase) ListTrainingTypes(ctx context.Context) ([]*domain.TrainingType, error) {
	return uc.trainingTypeRepo.List(ctx)
}
