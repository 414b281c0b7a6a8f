package handler

import (
	"gym-trainer-service/api"
	"gym-trainer-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*TrainerHandler
	*TrainingTypeHandler
}

func NewAPIHandler(
	trainerUseCase domain.TrainerUseCase,
	trainingTypeUseCase domain.TrainingTypeUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		TrainerHandler:      NewTrainerHandler(trainerUseCase, logger),
		TrainingTypeHandler: NewTrainingTypeHandler(trainingTypeUseCase, logger),
	}
}
