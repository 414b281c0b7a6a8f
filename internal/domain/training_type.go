package domain

import "context"

// TrainingType представляет специализацию тренера из справочника.
type TrainingType struct {
	ID   string
	Name string
}

// TrainingTypeRepository определяет контракт для работы со справочником типов тренировок.
type TrainingTypeRepository interface {
	GetByID(ctx context.Context, id string) (*TrainingType, error)
	List(ctx context.Context) ([]*TrainingType, error)
}
