package memory

import (
	"context"

	"go-cvs-backend/internal/domain"
)

type QualificationTypeRepository struct {
	table *table[domain.QualificationType, *domain.QualificationType]
}

func (r *QualificationTypeRepository) Save(ctx context.Context, qualificationType *domain.QualificationType) (*domain.QualificationType, error) {
	return r.table.save(ctx, qualificationType)
}

func (r *QualificationTypeRepository) FindByID(_ context.Context, id int64) (*domain.QualificationType, error) {
	return r.table.findByID(id)
}

func (r *QualificationTypeRepository) FindAll(_ context.Context) ([]domain.QualificationType, error) {
	return r.table.findAll()
}
