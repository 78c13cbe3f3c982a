package memory

import (
	"context"

	"go-cvs-backend/internal/domain"
)

type SkillRepository struct {
	table *table[domain.Skill, *domain.Skill]
}

func (r *SkillRepository) Save(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	return r.table.save(ctx, skill)
}

func (r *SkillRepository) FindByID(_ context.Context, id int64) (*domain.Skill, error) {
	return r.table.findByID(id)
}

func (r *SkillRepository) FindAll(_ context.Context) ([]domain.Skill, error) {
	return r.table.findAll()
}

func (r *SkillRepository) FindAllByCandidate(_ context.Context, candidateID int64) ([]domain.Skill, error) {
	return r.table.findWhere(func(s *domain.Skill) bool {
		return s.Candidate != nil && s.Candidate.ID == candidateID
	})
}
