package memory

import (
	"context"

	"go-cvs-backend/internal/domain"
)

type PortfolioRepository struct {
	table *table[domain.Portfolio, *domain.Portfolio]
	// userPortfolios is the user-owned association table, read here to answer
	// the by-user view.
	userPortfolios *joinTable
}

func (r *PortfolioRepository) Save(ctx context.Context, portfolio *domain.Portfolio) (*domain.Portfolio, error) {
	return r.table.save(ctx, portfolio)
}

func (r *PortfolioRepository) FindByID(_ context.Context, id int64) (*domain.Portfolio, error) {
	return r.table.findByID(id)
}

func (r *PortfolioRepository) FindAll(_ context.Context) ([]domain.Portfolio, error) {
	return r.table.findAll()
}

func (r *PortfolioRepository) FindAllByUser(_ context.Context, userID int64) ([]domain.Portfolio, error) {
	return r.table.findByIDs(r.userPortfolios.rights(userID))
}

func (r *PortfolioRepository) FindAllByName(_ context.Context, name string) ([]domain.Portfolio, error) {
	return r.table.findWhere(func(p *domain.Portfolio) bool { return p.Name == name })
}
