package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"gym-trainer-service/internal/database"
	"gym-trainer-service/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	trainerColumns = []string{
		"id", "user_id", "first_name", "last_name", "username", "password_hash", "is_active",
		"training_type_id", "training_type_name",
	}
	unassignedColumns = []string{
		"id", "user_id", "first_name", "last_name", "username", "is_active",
		"training_type_id", "training_type_name",
	}
	traineeColumns = []string{"username", "first_name", "last_name"}
)

func TestTrainerRepository_Save_New(t *testing.T) {
	_, mock, queries := newMockDB(t)
	repo := NewTrainerRepository(queries)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trainers")).
		WithArgs(sqlmock.AnyArg(), "u-1", "CARDIO").
		WillReturnResult(sqlmock.NewResult(0, 1))

	trainer, err := repo.Save(context.Background(), &domain.Trainer{
		User:         &domain.User{ID: "u-1", Username: "John.Doe"},
		TrainingType: &domain.TrainingType{ID: "CARDIO"},
	})

	require.NoError(t, err)
	_, parseErr := uuid.Parse(trainer.ID)
	assert.NoError(t, parseErr)
	assert.NotNil(t, trainer.Trainees)
	assert.Empty(t, trainer.Trainees)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrainerRepository_Save_ExistingInTransaction(t *testing.T) {
	db, mock, queries := newMockDB(t)
	repo := NewTrainerRepository(queries)
	txManager := database.NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trainers SET training_type_id")).
		WithArgs("t-1", "YOGA").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs("u-1", "Jane", "Doe", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	trainer := &domain.Trainer{
		ID:           "t-1",
		User:         &domain.User{ID: "u-1", FirstName: "Jane", LastName: "Doe", IsActive: true},
		TrainingType: &domain.TrainingType{ID: "YOGA"},
	}

	err := txManager.WithinTransaction(context.Background(), func(ctx context.Context) error {
		_, err := repo.Save(ctx, trainer)
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrainerRepository_Save_UserUpdateFailsRollsBack(t *testing.T) {
	db, mock, queries := newMockDB(t)
	repo := NewTrainerRepository(queries)
	txManager := database.NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trainers SET training_type_id")).
		WithArgs("t-1", "YOGA").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	trainer := &domain.Trainer{
		ID:           "t-1",
		User:         &domain.User{ID: "u-1", FirstName: "Jane", LastName: "Doe", IsActive: true},
		TrainingType: &domain.TrainingType{ID: "YOGA"},
	}

	err := txManager.WithinTransaction(context.Background(), func(ctx context.Context) error {
		_, err := repo.Save(ctx, trainer)
		return err
	})

	assert.ErrorContains(t, err, "failed to update trainer user profile")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrainerRepository_GetByUserID_WithTrainees(t *testing.T) {
	_, mock, queries := newMockDB(t)
	repo := NewTrainerRepository(queries)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.user_id = $1")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(trainerColumns).
			AddRow("t-1", "u-1", "John", "Doe", "John.Doe", "hash", true, "CARDIO", "Cardio"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM trainer_trainees tt")).
		WithArgs("t-1").
		WillReturnRows(sqlmock.NewRows(traineeColumns).
			AddRow("Ann.Lee", "Ann", "Lee").
			AddRow("Bob.Ray", "Bob", "Ray"))

	trainer, err := repo.GetByUserID(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Equal(t, "t-1", trainer.ID)
	assert.Equal(t, "John.Doe", trainer.User.Username)
	assert.Equal(t, "CARDIO", trainer.TrainingType.ID)
	require.Len(t, trainer.Trainees, 2)
	assert.Equal(t, "Ann.Lee", trainer.Trainees[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrainerRepository_GetByUserID_NotFound(t *testing.T) {
	_, mock, queries := newMockDB(t)
	repo := NewTrainerRepository(queries)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.user_id = $1")).
		WithArgs("u-404").
		WillReturnRows(sqlmock.NewRows(trainerColumns))

	trainer, err := repo.GetByUserID(context.Background(), "u-404")

	assert.Nil(t, trainer)
	assert.ErrorIs(t, err, domain.ErrTrainerNotFound)
}

func TestTrainerRepository_GetUnassignedActive_Empty(t *testing.T) {
	_, mock, queries := newMockDB(t)
	repo := NewTrainerRepository(queries)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE u.is_active = TRUE")).
		WillReturnRows(sqlmock.NewRows(unassignedColumns))

	trainers, err := repo.GetUnassignedActive(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, trainers)
	assert.Empty(t, trainers)
}

func TestTrainerRepository_GetUnassignedActive_KeepsOrder(t *testing.T) {
	_, mock, queries := newMockDB(t)
	repo := NewTrainerRepository(queries)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE u.is_active = TRUE")).
		WillReturnRows(sqlmock.NewRows(unassignedColumns).
			AddRow("t-2", "u-2", "Ann", "Lee", "Ann.Lee", true, "YOGA", "Yoga").
			AddRow("t-1", "u-1", "John", "Doe", "John.Doe", true, "CARDIO", "Cardio"))

	trainers, err := repo.GetUnassignedActive(context.Background())

	require.NoError(t, err)
	require.Len(t, trainers, 2)
	assert.Equal(t, "Ann.Lee", trainers[0].User.Username)
	assert.Equal(t, "John.Doe", trainers[1].User.Username)
	assert.Equal(t, "CARDIO", trainers[1].TrainingType.ID)
}

func TestTrainerRepository_GetUnassignedActive_DBError(t *testing.T) {
	_, mock, queries := newMockDB(t)
	repo := NewTrainerRepository(queries)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE u.is_active = TRUE")).
		WillReturnError(errors.New("db down"))

	trainers, err := repo.GetUnassignedActive(context.Background())

	assert.Nil(t, trainers)
	assert.ErrorContains(t, err, "failed to get unassigned active trainers")
}
