package memory

import (
	"context"

	"go-cvs-backend/internal/domain"
)

type QualificationRepository struct {
	table *table[domain.Qualification, *domain.Qualification]
}

func (r *QualificationRepository) Save(ctx context.Context, qualification *domain.Qualification) (*domain.Qualification, error) {
	return r.table.save(ctx, qualification)
}

func (r *QualificationRepository) FindByID(_ context.Context, id int64) (*domain.Qualification, error) {
	return r.table.findByID(id)
}

func (r *QualificationRepository) FindAll(_ context.Context) ([]domain.Qualification, error) {
	return r.table.findAll()
}

func (r *QualificationRepository) FindAllByCandidate(_ context.Context, candidateID int64) ([]domain.Qualification, error) {
	return r.table.findWhere(func(q *domain.Qualification) bool {
		return q.Candidate != nil && q.Candidate.ID == candidateID
	})
}
