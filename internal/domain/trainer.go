package domain

import "context"

// TraineeSummary - краткие данные подопечного тренера.
type TraineeSummary struct {
	Username  string
	FirstName string
	LastName  string
}

// Trainer представляет сущность тренера. User и TrainingType всегда заданы.
type Trainer struct {
	ID           string
	User         *User
	TrainingType *TrainingType
	Trainees     []*TraineeSummary
}

// TrainerInput - данные для регистрации тренера.
type TrainerInput struct {
	FirstName      string
	LastName       string
	Specialization string
}

// TrainerProfileInput - данные для обновления профиля тренера.
type TrainerProfileInput struct {
	FirstName      string
	LastName       string
	Specialization string
	IsActive       bool
}

// ApplyProfile переносит поля профиля (кроме специализации) на тренера.
func (t *Trainer) ApplyProfile(input TrainerProfileInput) {
	t.User.FirstName = input.FirstName
	t.User.LastName = input.LastName
	t.User.IsActive = input.IsActive
}

// TrainerRepository определяет контракт для работы с хранилищем тренеров.
type TrainerRepository interface {
	Save(ctx context.Context, trainer *Trainer) (*Trainer, error)
	GetByUserID(ctx context.Context, userID string) (*Trainer, error)
	GetUnassignedActive(ctx context.Context) ([]*Trainer, error)
}
