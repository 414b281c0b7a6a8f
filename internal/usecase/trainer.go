package usecase

import (
	"context"
	"errors"

	"gym-trainer-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// TrainerUseCase реализует бизнес-логику для работы с тренерами.
type TrainerUseCase struct {
	trainerRepo        domain.TrainerRepository
	trainingTypeRepo   domain.TrainingTypeRepository
	userService        domain.UserService
	authService        domain.AuthenticationService
	transactor         domain.Transactor
	freeActiveTrainers domain.Gauge
	logger             logrus.FieldLogger
}

// NewTrainerUseCase создает новый экземпляр TrainerUseCase и обнуляет метрику свободных тренеров.
func NewTrainerUseCase(
	trainerRepo domain.TrainerRepository,
	trainingTypeRepo domain.TrainingTypeRepository,
	userService domain.UserService,
	authService domain.AuthenticationService,
	transactor domain.Transactor,
	freeActiveTrainers domain.Gauge,
	logger logrus.FieldLogger,
) domain.TrainerUseCase {
	freeActiveTrainers.Set(0)

	return &TrainerUseCase{
		trainerRepo:        trainerRepo,
		trainingTypeRepo:   trainingTypeRepo,
		userService:        userService,
		authService:        authService,
		transactor:         transactor,
		freeActiveTrainers: freeActiveTrainers,
		logger:             logger,
	}
}

// CreateTrainer регистрирует пользователя и тренера в одной транзакции.
func (uc *TrainerUseCase) CreateTrainer(ctx context.Context, input domain.TrainerInput) (*domain.Trainer, error) {
	uc.logger.WithFields(logrus.Fields{
		"first_name":     input.FirstName,
		"last_name":      input.LastName,
		"specialization": input.Specialization,
	}).Info("Creating trainer")

	var trainer *domain.Trainer
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		// 1. Создаем пользователя
		user, err := uc.userService.Save(ctx, input.FirstName, input.LastName)
		if err != nil {
			return err
		}

		// 2. Находим специализацию
		trainingType, err := uc.findTrainingType(ctx, input.Specialization)
		if err != nil {
			return err
		}

		// 3. Сохраняем тренера
		trainer, err = uc.trainerRepo.Save(ctx, &domain.Trainer{
			User:         user,
			TrainingType: trainingType,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return trainer, nil
}

// GetTrainer возвращает профиль тренера после проверки учетных данных.
func (uc *TrainerUseCase) GetTrainer(ctx context.Context, username, password string) (*domain.Trainer, error) {
	uc.logger.WithField("username", username).Info("Getting trainer")

	user, err := uc.authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return uc.trainerRepo.GetByUserID(ctx, user.ID)
}

// UpdateTrainerProfile обновляет профиль тренера. Справочник специализаций
// запрашивается только если специализация меняется.
func (uc *TrainerUseCase) UpdateTrainerProfile(ctx context.Context, username, password string, input domain.TrainerProfileInput) (*domain.Trainer, error) {
	uc.logger.WithFields(logrus.Fields{
		"username":       username,
		"specialization": input.Specialization,
	}).Info("Updating trainer profile")

	user, err := uc.authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	var updated *domain.Trainer
	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		trainer, err := uc.trainerRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return err
		}

		if input.Specialization != trainer.TrainingType.ID {
			trainingType, err := uc.findTrainingType(ctx, input.Specialization)
			if err != nil {
				return err
			}
			trainer.TrainingType = trainingType
		}

		trainer.ApplyProfile(input)

		updated, err = uc.trainerRepo.Save(ctx, trainer)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// GetUnassignedActiveTrainers возвращает активных тренеров без подопечных
// и записывает их количество в метрику.
func (uc *TrainerUseCase) GetUnassignedActiveTrainers(ctx context.Context, username, password string) ([]*domain.Trainer, error) {
	uc.logger.WithField("username", username).Info("Getting unassigned active trainers")

	if _, err := uc.authenticate(ctx, username, password); err != nil {
		return nil, err
	}

	trainers, err := uc.trainerRepo.GetUnassignedActive(ctx)
	if err != nil {
		return nil, err
	}

	// Перезаписываем, параллельные вызовы: побеждает последний
	uc.freeActiveTrainers.Set(float64(len(trainers)))

	if len(trainers) == 0 {
		return []*domain.Trainer{}, nil
	}

	return trainers, nil
}

// authenticate находит пользователя и проверяет пароль.
func (uc *TrainerUseCase) authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := uc.userService.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !uc.authService.CheckAccess(password, user) {
		return nil, domain.ErrAccessDenied
	}

	return user, nil
}

// findTrainingType ищет специализацию. Отсутствие в справочнике - ошибка доступа.
func (uc *TrainerUseCase) findTrainingType(ctx context.Context, id string) (*domain.TrainingType, error) {
	trainingType, err := uc.trainingTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAccessDenied
		}
		return nil, err
	}
	return trainingType, nil
}
