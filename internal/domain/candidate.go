package domain

import "context"

// Candidate is the person a CV belongs to. Qualifications, references, skills
// and work experience entries all hang off a candidate.
type Candidate struct {
	Lifecycle
	FirstName                string `json:"firstName" validate:"notblank"`
	MiddleName               string `json:"middleName,omitempty"`
	LastName                 string `json:"lastName" validate:"notblank"`
	Title                    string `json:"title,omitempty"`
	Gender                   string `json:"gender" validate:"notblank,oneof=M F"`
	Email                    string `json:"email" validate:"notblank,email"`
	PreferredContactNumber   string `json:"preferredContactNumber,omitempty"`
	AlternativeContactNumber string `json:"alternativeContactNumber,omitempty"`
	AddressLine1             string `json:"addressLine1" validate:"notblank"`
	AddressLine2             string `json:"addressLine2,omitempty"`
	AddressLine3             string `json:"addressLine3,omitempty"`
	Postcode                 string `json:"postcode,omitempty"`
	Country                  string `json:"country" validate:"notblank"`
	// DateOfBirth travels as YYYY-MM-DD and must be in the past when present.
	DateOfBirth string `json:"dateOfBirth,omitempty" validate:"omitempty,pastdate"`
}

type CandidateRepository interface {
	Save(ctx context.Context, candidate *Candidate) (*Candidate, error)
	FindByID(ctx context.Context, id int64) (*Candidate, error)
	FindAll(ctx context.Context) ([]Candidate, error)
	FindAllByPortfolio(ctx context.Context, portfolioID int64) ([]Candidate, error)
	AttachPortfolio(ctx context.Context, candidateID, portfolioID int64) error
	HasPortfolio(ctx context.Context, candidateID, portfolioID int64) (bool, error)
}

type CandidateUsecase interface {
	Add(ctx context.Context, payload *Candidate) (*Candidate, error)
	GetActive(ctx context.Context, id int64) (*Candidate, error)
	Delete(ctx context.Context, id int64) error
	Retire(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Candidate, error)
	ListByPortfolio(ctx context.Context, portfolioID int64) ([]Candidate, error)
}
