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

const workExperienceKind = "WORK_EXPERIENCE"

type workExperienceUsecase struct {
	repo       domain.WorkExperienceRepository
	candidates domain.CandidateUsecase
	tx         domain.TxManager
	validate   *validator.Validate
	metrics    *metrics.Metrics
}

func NewWorkExperienceUsecase(repo domain.WorkExperienceRepository, candidates domain.CandidateUsecase, tx domain.TxManager, validate *validator.Validate, m *metrics.Metrics) domain.WorkExperienceUsecase {
	return &workExperienceUsecase{repo: repo, candidates: candidates, tx: tx, validate: validate, metrics: m}
}

func (u *workExperienceUsecase) Add(ctx context.Context, payload *domain.WorkExperience) (*domain.WorkExperience, error) {
	green := &domain.WorkExperience{
		Organisation: payload.Organisation,
		Country:      payload.Country,
		Position:     payload.Position,
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
	}

	if err := validation.Check(u.validate, green); err != nil {
		return nil, err
	}

	// The gate guarantees both dates parse; ordering is checked before any
	// reference resolution.
	start, _ := validation.ParseDate(green.StartDate)
	end, _ := validation.ParseDate(green.EndDate)
	if !end.After(start) {
		return nil, apperror.NotAcceptable("End Date should be after Start Date")
	}

	existing, err := resolveCandidateRef(ctx, u.candidates, payload.Candidate)
	if err != nil {
		return nil, err
	}

	var saved *domain.WorkExperience
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

	u.metrics.Created(workExperienceKind)
	return saved, nil
}

func (u *workExperienceUsecase) GetActive(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	workExperience, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if workExperience == nil || workExperience.Voided {
		return nil, apperror.NotFound(fmt.Sprintf("Invalid operation for [WORK_EXPERIENCE].%d", id))
	}
	if workExperience.Retired {
		return nil, apperror.Locked(fmt.Sprintf("Invalid operation for [WORK_EXPERIENCE].%d", id))
	}
	return workExperience, nil
}

func (u *workExperienceUsecase) Delete(ctx context.Context, id int64) error {
	workExperience, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if workExperience == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [WORK_EXPERIENCE].%d", id))
	}
	if err := workExperience.MarkVoided(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [WORK_EXPERIENCE].%d", id))
	}
	if _, err := u.repo.Save(ctx, workExperience); err != nil {
		return err
	}
	slog.Info("Deleted work experience", "id", id)
	u.metrics.Voided(workExperienceKind)
	return nil
}

func (u *workExperienceUsecase) Retire(ctx context.Context, id int64) error {
	workExperience, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if workExperience == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [WORK_EXPERIENCE].%d", id))
	}
	if err := workExperience.MarkRetired(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [WORK_EXPERIENCE].%d", id))
	}
	if _, err := u.repo.Save(ctx, workExperience); err != nil {
		return err
	}
	slog.Info("Retired work experience", "id", id)
	u.metrics.Retired(workExperienceKind)
	return nil
}

func (u *workExperienceUsecase) List(ctx context.Context) ([]domain.WorkExperience, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.WorkExperience, 0, len(all))
	for _, workExperience := range all {
		if workExperience.IsActive() {
			active = append(active, workExperience)
		}
	}
	return active, nil
}

func (u *workExperienceUsecase) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.WorkExperience, error) {
	owned, err := u.repo.FindAllByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	active := make([]domain.WorkExperience, 0, len(owned))
	for _, workExperience := range owned {
		if workExperience.IsActive() {
			active = append(active, workExperience)
		}
	}
	return active, nil
}
