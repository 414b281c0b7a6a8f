package domain

import "context"

// TrainerUseCase определяет бизнес-логику для работы с тренерами.
type TrainerUseCase interface {
	CreateTrainer(ctx context.Context, input TrainerInput) (*Trainer, error)
	GetTrainer(ctx context.Context, username, password string) (*Trainer, error)
	UpdateTrainerProfile(ctx context.Context, username, password string, input TrainerProfileInput) (*Trainer, error)
	GetUnassignedActiveTrainers(ctx context.Context, username, password string) ([]*Trainer, error)
}

// TrainingTypeUseCase определяет бизнес-логику для работы со справочником специализаций.
type TrainingTypeUseCase interface {
	ListTrainingTypes(ctx context.Context) ([]*TrainingType, error)
}

// UserService создает пользователей и ищет их по username.
type UserService interface {
	Save(ctx context.Context, firstName, lastName string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// AuthenticationService проверяет пароль пользователя.
// CheckAccess возвращает true, если пароль верный.
type AuthenticationService interface {
	CheckAccess(password string, user *User) bool
}

// Transactor выполняет fn в рамках одной транзакции.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Gauge - значение метрики, которое можно перезаписать в любой момент.
type Gauge interface {
	Set(value float64)
}
