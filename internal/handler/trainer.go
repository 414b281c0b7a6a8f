package handler

import (
	"net/http"

	"gym-trainer-service/api"
	"gym-trainer-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TrainerHandler обрабатывает HTTP-запросы для управления тренерами
type TrainerHandler struct {
	*BaseHandler
	trainerUseCase domain.TrainerUseCase
}

// NewTrainerHandler создает новый экземпляр TrainerHandler
func NewTrainerHandler(trainerUseCase domain.TrainerUseCase, logger *logrus.Logger) *TrainerHandler {
	return &TrainerHandler{
		BaseHandler:    NewBaseHandler(logger),
		trainerUseCase: trainerUseCase,
	}
}

// PostTrainerAdd обрабатывает регистрацию нового тренера
func (h *TrainerHandler) PostTrainerAdd(c echo.Context) error {
	var req api.PostTrainerAddJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create trainer request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_trainer").WithFields(logrus.Fields{
		"first_name":     req.FirstName,
		"last_name":      req.LastName,
		"specialization": req.Specialization,
	})
	logEntry.Info("Creating trainer")

	trainer, err := h.trainerUseCase.CreateTrainer(c.Request().Context(), domain.TrainerInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
	})
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to create trainer")
	}

	logEntry.WithField("username", trainer.User.Username).Info("Trainer created successfully")
	return c.JSON(http.StatusCreated, toAPITrainerCredentials(trainer))
}

// GetTrainerGet обрабатывает получение профиля тренера
func (h *TrainerHandler) GetTrainerGet(c echo.Context, params api.GetTrainerGetParams) error {
	logEntry := h.logRequest(c, "get_trainer").WithField("username", params.Username)
	logEntry.Info("Getting trainer profile")

	trainer, err := h.trainerUseCase.GetTrainer(c.Request().Context(), params.Username, params.XPassword)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get trainer")
	}

	logEntry.WithField("trainees_count", len(trainer.Trainees)).Info("Trainer profile retrieved")
	return c.JSON(http.StatusOK, toAPITrainerProfile(trainer))
}

// PostTrainerUpdate обрабатывает обновление профиля тренера
func (h *TrainerHandler) PostTrainerUpdate(c echo.Context, params api.PostTrainerUpdateParams) error {
	var req api.PostTrainerUpdateJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind update trainer request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "update_trainer").WithFields(logrus.Fields{
		"username":       params.Username,
		"specialization": req.Specialization,
	})
	logEntry.Info("Updating trainer profile")

	trainer, err := h.trainerUseCase.UpdateTrainerProfile(c.Request().Context(), params.Username, params.XPassword, domain.TrainerProfileInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to update trainer")
	}

	logEntry.Info("Trainer profile updated successfully")
	return c.JSON(http.StatusOK, toAPITrainerUpdated(trainer))
}

// GetTrainerUnassigned обрабатывает получение активных тренеров без подопечных
func (h *TrainerHandler) GetTrainerUnassigned(c echo.Context, params api.GetTrainerUnassignedParams) error {
	logEntry := h.logRequest(c, "get_unassigned_trainers").WithField("username", params.Username)
	logEntry.Info("Getting unassigned active trainers")

	trainers, err := h.trainerUseCase.GetUnassignedActiveTrainers(c.Request().Context(), params.Username, params.XPassword)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get unassigned trainers")
	}

	logEntry.WithField("trainers_count", len(trainers)).Info("Unassigned trainers retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"trainers": toAPITrainerShorts(trainers),
	})
}
