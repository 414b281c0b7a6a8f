package handler

import (
	"net/http"

	"gym-trainer-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TrainingTypeHandler обрабатывает HTTP-запросы к справочнику специализаций.
type TrainingTypeHandler struct {
	*BaseHandler
	trainingTypeUseCase domain.TrainingTypeUseCase
}

// NewTrainingTypeHandler создает новый экземпляр TrainingTypeHandler.
func NewTrainingTypeHandler(trainingTypeUseCase domain.TrainingTypeUseCase, logger *logrus.Logger) *TrainingTypeHandler {
	return &TrainingTypeHandler{
		BaseHandler:         NewBaseHandler(logger),
		trainingTypeUseCase: trainingTypeUseCase,
	}
}

// GetTrainingTypes обрабатывает GET запрос для получения списка специализаций.
func (h *TrainingTypeHandler) GetTrainingTypes(c echo.Context) error {
	logEntry := h.logRequest(c, "list_training_types")
	logEntry.Info("Listing training types")

	types, err := h.trainingTypeUseCase.ListTrainingTypes(c.Request().Context())
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to list training types")
	}

	logEntry.WithField("types_count", len(types)).Info("Training types retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"training_types": toAPITrainingTypes(types),
	})
}
