package domain

import "context"

// Portfolio groups candidates under the users managing them. The association
// lists double as reference payloads on add (only the ids are read) and as
// reverse-association views on reads, filtered to active members.
type Portfolio struct {
	Lifecycle
	Name       string            `json:"name" validate:"notblank"`
	Users      []ApplicationUser `json:"applicationUser" validate:"-"`
	Candidates []Candidate       `json:"candidate" validate:"-"`
}

type PortfolioRepository interface {
	Save(ctx context.Context, portfolio *Portfolio) (*Portfolio, error)
	FindByID(ctx context.Context, id int64) (*Portfolio, error)
	FindAll(ctx context.Context) ([]Portfolio, error)
	FindAllByUser(ctx context.Context, userID int64) ([]Portfolio, error)
	FindAllByName(ctx context.Context, name string) ([]Portfolio, error)
}

type PortfolioUsecase interface {
	Add(ctx context.Context, payload *Portfolio) (*Portfolio, error)
	GetActive(ctx context.Context, id int64) (*Portfolio, error)
	GetByName(ctx context.Context, name string) (*Portfolio, error)
	Delete(ctx context.Context, id int64) error
	Retire(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Portfolio, error)
	ListByUser(ctx context.Context, userID int64) ([]Portfolio, error)
	// AttachUser associates an active user with an active portfolio. When the
	// portfolio id does not resolve, a non-nil fallback payload is created in
	// its place, pre-seeded with the single user association.
	AttachUser(ctx context.Context, userID, portfolioID int64, fallback *Portfolio) (*Portfolio, error)
	AttachCandidate(ctx context.Context, candidateID, portfolioID int64, fallback *Portfolio) (*Portfolio, error)
}
