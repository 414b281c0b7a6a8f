package domain

import (
	"errors"
	"fmt"
)

// Виды ошибок, которые отдает сервис тренеров
var (
	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")
)

// Ошибки сущностей (оборачивают ErrNotFound)
var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrTrainerNotFound      = fmt.Errorf("trainer %w", ErrNotFound)
	ErrTrainingTypeNotFound = fmt.Errorf("training type %w", ErrNotFound)
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг видов domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrNotFound:     {Code: "NOT_FOUND", Message: "resource not found"},
	ErrAccessDenied: {Code: "ACCESS_DENIED", Message: "access denied"},
}

// ToHTTPError преобразует domain ошибку (в том числе обернутую) в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for kind, httpErr := range ErrorMapping {
		if errors.Is(err, kind) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
