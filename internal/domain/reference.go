package domain

import "context"

// Reference is a referee contact for a candidate.
type Reference struct {
	Lifecycle
	Name          string `json:"name" validate:"notblank"`
	JobTitle      string `json:"jobTitle" validate:"notblank"`
	Institution   string `json:"institution" validate:"notblank"`
	Email         string `json:"email" validate:"notblank,email"`
	ContactNumber string `json:"contactNumber" validate:"notblank"`
	AddressLine1  string `json:"addressLine1" validate:"notblank"`
	AddressLine2  string `json:"addressLine2,omitempty"`
	AddressLine3  string `json:"addressLine3,omitempty"`
	Postcode      string `json:"postcode,omitempty"`
	Country       string `json:"country" validate:"notblank"`

	Candidate *Candidate `json:"candidate,omitempty" validate:"-"`
}

type ReferenceRepository interface {
	Save(ctx context.Context, reference *Reference) (*Reference, error)
	FindByID(ctx context.Context, id int64) (*Reference, error)
	FindAll(ctx context.Context) ([]Reference, error)
	FindAllByCandidate(ctx context.Context, candidateID int64) ([]Reference, error)
}

type ReferenceUsecase interface {
	Add(ctx context.Context, payload *Reference) (*Reference, error)
	GetActive(ctx context.Context, id int64) (*Reference, error)
	Delete(ctx context.Context, id int64) error
	Retire(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Reference, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Reference, error)
}
