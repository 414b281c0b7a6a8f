package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"gym-trainer-service/api"
	"gym-trainer-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetTrainingTypes(t *testing.T) {
	t.Run("Catalog", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.trainingTypeUC.On("ListTrainingTypes", mock.Anything).Return([]*domain.TrainingType{
			{ID: "CARDIO", Name: "Cardio"},
			{ID: "YOGA", Name: "Yoga"},
		}, nil).Once()

		rec := f.do(http.MethodGet, "/trainingTypes", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			TrainingTypes []api.TrainingType `json:"training_types"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []api.TrainingType{{Id: "CARDIO", Name: "Cardio"}, {Id: "YOGA", Name: "Yoga"}}, resp.TrainingTypes)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.trainingTypeUC.On("ListTrainingTypes", mock.Anything).Return(nil, errors.New("db down")).Once()

		rec := f.do(http.MethodGet, "/trainingTypes", "", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
