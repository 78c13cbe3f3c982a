package memory

import (
	"context"

	"go-cvs-backend/internal/domain"
)

type ReferenceRepository struct {
	table *table[domain.Reference, *domain.Reference]
}

func (r *ReferenceRepository) Save(ctx context.Context, reference *domain.Reference) (*domain.Reference, error) {
	return r.table.save(ctx, reference)
}

func (r *ReferenceRepository) FindByID(_ context.Context, id int64) (*domain.Reference, error) {
	return r.table.findByID(id)
}

func (r *ReferenceRepository) FindAll(_ context.Context) ([]domain.Reference, error) {
	return r.table.findAll()
}

func (r *ReferenceRepository) FindAllByCandidate(_ context.Context, candidateID int64) ([]domain.Reference, error) {
	return r.table.findWhere(func(ref *domain.Reference) bool {
		return ref.Candidate != nil && ref.Candidate.ID == candidateID
	})
}
