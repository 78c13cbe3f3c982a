package memory

import (
	"context"

	"go-cvs-backend/internal/domain"
)

type WorkExperienceRepository struct {
	table *table[domain.WorkExperience, *domain.WorkExperience]
}

func (r *WorkExperienceRepository) Save(ctx context.Context, workExperience *domain.WorkExperience) (*domain.WorkExperience, error) {
	return r.table.save(ctx, workExperience)
}

func (r *WorkExperienceRepository) FindByID(_ context.Context, id int64) (*domain.WorkExperience, error) {
	return r.table.findByID(id)
}

func (r *WorkExperienceRepository) FindAll(_ context.Context) ([]domain.WorkExperience, error) {
	return r.table.findAll()
}

func (r *WorkExperienceRepository) FindAllByCandidate(_ context.Context, candidateID int64) ([]domain.WorkExperience, error) {
	return r.table.findWhere(func(w *domain.WorkExperience) bool {
		return w.Candidate != nil && w.Candidate.ID == candidateID
	})
}
