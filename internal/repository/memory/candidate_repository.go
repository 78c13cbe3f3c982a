package memory

import (
	"context"

	"go-cvs-backend/internal/domain"
)

type CandidateRepository struct {
	table      *table[domain.Candidate, *domain.Candidate]
	portfolios *joinTable
}

func (r *CandidateRepository) Save(ctx context.Context, candidate *domain.Candidate) (*domain.Candidate, error) {
	return r.table.save(ctx, candidate)
}

func (r *CandidateRepository) FindByID(_ context.Context, id int64) (*domain.Candidate, error) {
	return r.table.findByID(id)
}

func (r *CandidateRepository) FindAll(_ context.Context) ([]domain.Candidate, error) {
	return r.table.findAll()
}

func (r *CandidateRepository) FindAllByPortfolio(_ context.Context, portfolioID int64) ([]domain.Candidate, error) {
	return r.table.findByIDs(r.portfolios.lefts(portfolioID))
}

func (r *CandidateRepository) AttachPortfolio(_ context.Context, candidateID, portfolioID int64) error {
	r.portfolios.attach(candidateID, portfolioID)
	return nil
}

func (r *CandidateRepository) HasPortfolio(_ context.Context, candidateID, portfolioID int64) (bool, error) {
	return r.portfolios.has(candidateID, portfolioID), nil
}
