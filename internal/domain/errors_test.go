package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		code     string
		expected bool
	}{
		{"User not found", ErrUserNotFound, "NOT_FOUND", true},
		{"Trainer not found", ErrTrainerNotFound, "NOT_FOUND", true},
		{"Wrapped not found", fmt.Errorf("lookup: %w", ErrTrainerNotFound), "NOT_FOUND", true},
		{"Access denied", ErrAccessDenied, "ACCESS_DENIED", true},
		{"Unknown error", errors.New("db down"), "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpErr, ok := ToHTTPError(tc.err)
			assert.Equal(t, tc.expected, ok)
			assert.Equal(t, tc.code, httpErr.Code)
		})
	}
}

func TestTrainer_ApplyProfile_KeepsSpecialization(t *testing.T) {
	trainer := &Trainer{
		User:         &User{FirstName: "John", LastName: "Doe", IsActive: true},
		TrainingType: &TrainingType{ID: "CARDIO", Name: "Cardio"},
	}

	trainer.ApplyProfile(TrainerProfileInput{FirstName: "Jane", LastName: "Roe", Specialization: "YOGA", IsActive: false})

	assert.Equal(t, "Jane", trainer.User.FirstName)
	assert.Equal(t, "Roe", trainer.User.LastName)
	assert.False(t, trainer.User.IsActive)
	assert.Equal(t, "CARDIO", trainer.TrainingType.ID)
}
