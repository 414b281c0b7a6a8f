package handler

import (
	"net/http"

	"gym-trainer-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}

// respondError логирует ошибку use case и отдает ответ по виду ошибки.
func (h *BaseHandler) respondError(c echo.Context, logEntry *logrus.Entry, err error, msg string) error {
	status := getHTTPStatusCode(err)
	if status >= 500 {
		logEntry.WithError(err).Error(msg)
	} else {
		logEntry.WithError(err).Warn(msg)
	}

	if httpErr, exists := domain.ToHTTPError(err); exists {
		return c.JSON(status, toAPIErrorResponse(httpErr))
	}
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
}
