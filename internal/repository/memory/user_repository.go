package memory

import (
	"context"

	"go-cvs-backend/internal/domain"
)

type ApplicationUserRepository struct {
	table      *table[domain.ApplicationUser, *domain.ApplicationUser]
	portfolios *joinTable
}

func (r *ApplicationUserRepository) Save(ctx context.Context, user *domain.ApplicationUser) (*domain.ApplicationUser, error) {
	return r.table.save(ctx, user)
}

func (r *ApplicationUserRepository) FindByID(_ context.Context, id int64) (*domain.ApplicationUser, error) {
	return r.table.findByID(id)
}

func (r *ApplicationUserRepository) FindAll(_ context.Context) ([]domain.ApplicationUser, error) {
	return r.table.findAll()
}

func (r *ApplicationUserRepository) FindAllByPortfolio(_ context.Context, portfolioID int64) ([]domain.ApplicationUser, error) {
	return r.table.findByIDs(r.portfolios.lefts(portfolioID))
}

func (r *ApplicationUserRepository) AttachPortfolio(_ context.Context, userID, portfolioID int64) error {
	r.portfolios.attach(userID, portfolioID)
	return nil
}

func (r *ApplicationUserRepository) HasPortfolio(_ context.Context, userID, portfolioID int64) (bool, error) {
	return r.portfolios.has(userID, portfolioID), nil
}
