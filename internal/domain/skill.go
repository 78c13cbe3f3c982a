package domain

import "context"

// Skill is a free-text skill entry owned by a candidate.
type Skill struct {
	Lifecycle
	Description string `json:"description" validate:"notblank"`

	Candidate *Candidate `json:"candidate,omitempty" validate:"-"`
}

type SkillRepository interface {
	Save(ctx context.Context, skill *Skill) (*Skill, error)
	FindByID(ctx context.Context, id int64) (*Skill, error)
	FindAll(ctx context.Context) ([]Skill, error)
	FindAllByCandidate(ctx context.Context, candidateID int64) ([]Skill, error)
}

type SkillUsecase interface {
	Add(ctx context.Context, payload *Skill) (*Skill, error)
	GetActive(ctx context.Context, id int64) (*Skill, error)
	Delete(ctx context.Context, id int64) error
	Retire(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Skill, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Skill, error)
}
