package domain

import "context"

// ApplicationUser is an account that can own portfolios.
type ApplicationUser struct {
	Lifecycle
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
	FullName string `json:"fullName" validate:"notblank"`
}

type ApplicationUserRepository interface {
	// Save inserts when the id is zero and updates otherwise.
	Save(ctx context.Context, user *ApplicationUser) (*ApplicationUser, error)
	// FindByID returns nil without error when no record exists.
	FindByID(ctx context.Context, id int64) (*ApplicationUser, error)
	FindAll(ctx context.Context) ([]ApplicationUser, error)
	FindAllByPortfolio(ctx context.Context, portfolioID int64) ([]ApplicationUser, error)
	// AttachPortfolio records the user↔portfolio association from the owning
	// (user) side of the relationship.
	AttachPortfolio(ctx context.Context, userID, portfolioID int64) error
	HasPortfolio(ctx context.Context, userID, portfolioID int64) (bool, error)
}

type ApplicationUserUsecase interface {
	Add(ctx context.Context, payload *ApplicationUser) (*ApplicationUser, error)
	GetActive(ctx context.Context, id int64) (*ApplicationUser, error)
	Delete(ctx context.Context, id int64) error
	Retire(ctx context.Context, id int64) error
	List(ctx context.Context) ([]ApplicationUser, error)
}
