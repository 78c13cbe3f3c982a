package domain

import "context"

// Qualification references one candidate and one qualification type; both
// references are resolved strictly on add.
type Qualification struct {
	Lifecycle
	Name         string `json:"name" validate:"notblank"`
	Institution  string `json:"institution" validate:"notblank"`
	Country      string `json:"country" validate:"notblank"`
	DateObtained string `json:"dateObtained" validate:"notblank,pastdate"`

	Candidate         *Candidate         `json:"candidate,omitempty" validate:"-"`
	QualificationType *QualificationType `json:"qualificationType,omitempty" validate:"-"`
}

type QualificationRepository interface {
	Save(ctx context.Context, qualification *Qualification) (*Qualification, error)
	FindByID(ctx context.Context, id int64) (*Qualification, error)
	FindAll(ctx context.Context) ([]Qualification, error)
	FindAllByCandidate(ctx context.Context, candidateID int64) ([]Qualification, error)
}

type QualificationUsecase interface {
	Add(ctx context.Context, payload *Qualification) (*Qualification, error)
	GetActive(ctx context.Context, id int64) (*Qualification, error)
	Delete(ctx context.Context, id int64) error
	Retire(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Qualification, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Qualification, error)
}
