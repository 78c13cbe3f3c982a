package domain

import "context"

// WorkExperience is a past position held by a candidate. Both dates are
// required, must be in the past, and the end date must be strictly after the
// start date.
type WorkExperience struct {
	Lifecycle
	Organisation string `json:"organisation" validate:"notblank"`
	Country      string `json:"country" validate:"notblank"`
	Position     string `json:"position" validate:"notblank"`
	StartDate    string `json:"startDate" validate:"notblank,pastdate"`
	EndDate      string `json:"endDate" validate:"notblank,pastdate"`

	Candidate *Candidate `json:"candidate,omitempty" validate:"-"`
}

type WorkExperienceRepository interface {
	Save(ctx context.Context, workExperience *WorkExperience) (*WorkExperience, error)
	FindByID(ctx context.Context, id int64) (*WorkExperience, error)
	FindAll(ctx context.Context) ([]WorkExperience, error)
	FindAllByCandidate(ctx context.Context, candidateID int64) ([]WorkExperience, error)
}

type WorkExperienceUsecase interface {
	Add(ctx context.Context, payload *WorkExperience) (*WorkExperience, error)
	GetActive(ctx context.Context, id int64) (*WorkExperience, error)
	Delete(ctx context.Context, id int64) error
	Retire(ctx context.Context, id int64) error
	List(ctx context.Context) ([]WorkExperience, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]WorkExperience, error)
}
