package handler

import (
	"errors"
	"net/http"

	"gym-trainer-service/api"
	"gym-trainer-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPITrainerCredentials(trainer *domain.Trainer) api.TrainerCredentials {
	return api.TrainerCredentials{
		Username: trainer.User.Username,
		Password: trainer.User.Password,
	}
}

func toAPITrainerProfile(trainer *domain.Trainer) api.TrainerProfile {
	return api.TrainerProfile{
		FirstName:      trainer.User.FirstName,
		LastName:       trainer.User.LastName,
		Specialization: trainer.TrainingType.ID,
		IsActive:       trainer.User.IsActive,
		Trainees:       toAPITraineeShorts(trainer.Trainees),
	}
}

func toAPITrainerUpdated(trainer *domain.Trainer) api.TrainerUpdated {
	return api.TrainerUpdated{
		Username:       trainer.User.Username,
		FirstName:      trainer.User.FirstName,
		LastName:       trainer.User.LastName,
		Specialization: trainer.TrainingType.ID,
		IsActive:       trainer.User.IsActive,
		Trainees:       toAPITraineeShorts(trainer.Trainees),
	}
}

func toAPITrainerShorts(trainers []*domain.Trainer) []api.TrainerShort {
	result := make([]api.TrainerShort, len(trainers))
	for i, trainer := range trainers {
		result[i] = api.TrainerShort{
			Username:       trainer.User.Username,
			FirstName:      trainer.User.FirstName,
			LastName:       trainer.User.LastName,
			Specialization: trainer.TrainingType.ID,
		}
	}
	return result
}

func toAPITraineeShorts(trainees []*domain.TraineeSummary) []api.TraineeShort {
	result := make([]api.TraineeShort, len(trainees))
	for i, trainee := range trainees {
		result[i] = api.TraineeShort{
			Username:  trainee.Username,
			FirstName: trainee.FirstName,
			LastName:  trainee.LastName,
		}
	}
	return result
}

func toAPITrainingTypes(types []*domain.TrainingType) []api.TrainingType {
	result := make([]api.TrainingType, len(types))
	for i, tt := range types {
		result[i] = api.TrainingType{
			Id:   tt.ID,
			Name: tt.Name,
		}
	}
	return result
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    api.ErrorResponseErrorCode(code),
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Not Found errors (404)
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	// Access errors (403): неверный пароль или неизвестная специализация
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden

	default:
		return http.StatusInternalServerError
	}
}
