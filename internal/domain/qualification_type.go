package domain

import "context"

// QualificationType is a dictionary entry (degree, diploma, certificate ...)
// referenced by qualifications.
type QualificationType struct {
	Lifecycle
	Name string `json:"name" validate:"notblank"`
}

type QualificationTypeRepository interface {
	Save(ctx context.Context, qualificationType *QualificationType) (*QualificationType, error)
	FindByID(ctx context.Context, id int64) (*QualificationType, error)
	FindAll(ctx context.Context) ([]QualificationType, error)
}

type QualificationTypeUsecase interface {
	Add(ctx context.Context, payload *QualificationType) (*QualificationType, error)
	GetActive(ctx context.Context, id int64) (*QualificationType, error)
	Delete(ctx context.Context, id int64) error
	Retire(ctx context.Context, id int64) error
	List(ctx context.Context) ([]QualificationType, error)
}
