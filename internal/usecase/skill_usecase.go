package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
	"go-cvs-backend/pkg/metrics"
	"go-cvs-backend/pkg/validation"
)

const skillKind = "SKILL"

type skillUsecase struct {
	repo       domain.SkillRepository
	candidates domain.CandidateUsecase
	tx         domain.TxManager
	validate   *validator.Validate
	metrics    *metrics.Metrics
}

func NewSkillUsecase(repo domain.SkillRepository, candidates domain.CandidateUsecase, tx domain.TxManager, validate *validator.Validate, m *metrics.Metrics) domain.SkillUsecase {
	return &skillUsecase{repo: repo, candidates: candidates, tx: tx, validate: validate, metrics: m}
}

func (u *skillUsecase) Add(ctx context.Context, payload *domain.Skill) (*domain.Skill, error) {
	green := &domain.Skill{Description: payload.Description}

	if err := validation.Check(u.validate, green); err != nil {
		return nil, err
	}

	existing, err := resolveCandidateRef(ctx, u.candidates, payload.Candidate)
	if err != nil {
		return nil, err
	}

	// Persist the bare record first, then attach the resolved reference.
	var saved *domain.Skill
	err = u.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		saved, err = u.repo.Save(ctx, green)
		if err != nil {
			return err
		}
		saved.Candidate = existing
		saved, err = u.repo.Save(ctx, saved)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.metrics.Created(skillKind)
	return saved, nil
}

func (u *skillUsecase) GetActive(ctx context.Context, id int64) (*domain.Skill, error) {
	skill, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill == nil || skill.Voided {
		return nil, apperror.NotFound(fmt.Sprintf("Invalid operation for [SKILL].%d", id))
	}
	if skill.Retired {
		return nil, apperror.Locked(fmt.Sprintf("Invalid operation for [SKILL].%d", id))
	}
	return skill, nil
}

func (u *skillUsecase) Delete(ctx context.Context, id int64) error {
	skill, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if skill == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [SKILL].%d", id))
	}
	if err := skill.MarkVoided(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [SKILL].%d", id))
	}
	if _, err := u.repo.Save(ctx, skill); err != nil {
		return err
	}
	slog.Info("Deleted skill", "id", id)
	u.metrics.Voided(skillKind)
	return nil
}

func (u *skillUsecase) Retire(ctx context.Context, id int64) error {
	skill, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if skill == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [SKILL].%d", id))
	}
	if err := skill.MarkRetired(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [SKILL].%d", id))
	}
	if _, err := u.repo.Save(ctx, skill); err != nil {
		return err
	}
	slog.Info("Retired skill", "id", id)
	u.metrics.Retired(skillKind)
	return nil
}

func (u *skillUsecase) List(ctx context.Context) ([]domain.Skill, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Skill, 0, len(all))
	for _, skill := range all {
		if skill.IsActive() {
			active = append(active, skill)
		}
	}
	return active, nil
}

func (u *skillUsecase) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Skill, error) {
	owned, err := u.repo.FindAllByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Skill, 0, len(owned))
	for _, skill := range owned {
		if skill.IsActive() {
			active = append(active, skill)
		}
	}
	return active, nil
}
