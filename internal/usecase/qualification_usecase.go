package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
	"go-cvs-backend/pkg/metrics"
	"go-cvs-backend/pkg/validation"
)

const qualificationKind = "QUALIFICATION"

type qualificationUsecase struct {
	repo               domain.QualificationRepository
	candidates         domain.CandidateUsecase
	qualificationTypes domain.QualificationTypeUsecase
	tx                 domain.TxManager
	validate           *validator.Validate
	metrics            *metrics.Metrics
}

func NewQualificationUsecase(repo domain.QualificationRepository, candidates domain.CandidateUsecase, qualificationTypes domain.QualificationTypeUsecase, tx domain.TxManager, validate *validator.Validate, m *metrics.Metrics) domain.QualificationUsecase {
	return &qualificationUsecase{
		repo:               repo,
		candidates:         candidates,
		qualificationTypes: qualificationTypes,
		tx:                 tx,
		validate:           validate,
		metrics:            m,
	}
}

func (u *qualificationUsecase) Add(ctx context.Context, payload *domain.Qualification) (*domain.Qualification, error) {
	green := &domain.Qualification{
		Name:         payload.Name,
		Institution:  payload.Institution,
		Country:      payload.Country,
		DateObtained: payload.DateObtained,
	}

	if err := validation.Check(u.validate, green); err != nil {
		return nil, err
	}

	// Both references must be present in the payload before any lookup.
	if payload.Candidate == nil || payload.Candidate.ID == 0 ||
		payload.QualificationType == nil || payload.QualificationType.ID == 0 {
		return nil, apperror.NotFound("Unable to find existing CANDIDATE or QUALIFICATION_TYPE references")
	}

	existingCandidate, err := u.candidates.GetActive(ctx, payload.Candidate.ID)
	if err != nil {
		return nil, collapseQualificationRefError(err)
	}
	existingType, err := u.qualificationTypes.GetActive(ctx, payload.QualificationType.ID)
	if err != nil {
		return nil, collapseQualificationRefError(err)
	}

	var saved *domain.Qualification
	err = u.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		saved, err = u.repo.Save(ctx, green)
		if err != nil {
			return err
		}
		saved.Candidate = existingCandidate
		saved.QualificationType = existingType
		saved, err = u.repo.Save(ctx, saved)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.metrics.Created(qualificationKind)
	return saved, nil
}

// collapseQualificationRefError folds both resolution failures into the
// not-found shape the original reported; only the wording distinguishes a
// missing reference from an inactive one.
func collapseQualificationRefError(err error) error {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return err
	}
	if appErr.Code == http.StatusLocked {
		return apperror.NotFound("Unable to find active CANDIDATE or QUALIFICATION_TYPE references")
	}
	return apperror.NotFound("Unable to find existing CANDIDATE or QUALIFICATION_TYPE references")
}

func (u *qualificationUsecase) GetActive(ctx context.Context, id int64) (*domain.Qualification, error) {
	qualification, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if qualification == nil || qualification.Voided {
		return nil, apperror.NotFound(fmt.Sprintf("Invalid operation for [QUALIFICATION].%d", id))
	}
	if qualification.Retired {
		return nil, apperror.Locked(fmt.Sprintf("Invalid operation for [QUALIFICATION].%d", id))
	}
	return qualification, nil
}

func (u *qualificationUsecase) Delete(ctx context.Context, id int64) error {
	qualification, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if qualification == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [QUALIFICATION].%d", id))
	}
	if err := qualification.MarkVoided(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [QUALIFICATION].%d", id))
	}
	if _, err := u.repo.Save(ctx, qualification); err != nil {
		return err
	}
	slog.Info("Deleted qualification", "id", id)
	u.metrics.Voided(qualificationKind)
	return nil
}

func (u *qualificationUsecase) Retire(ctx context.Context, id int64) error {
	qualification, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if qualification == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [QUALIFICATION].%d", id))
	}
	if err := qualification.MarkRetired(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [QUALIFICATION].%d", id))
	}
	if _, err := u.repo.Save(ctx, qualification); err != nil {
		return err
	}
	slog.Info("Retired qualification", "id", id)
	u.metrics.Retired(qualificationKind)
	return nil
}

func (u *qualificationUsecase) List(ctx context.Context) ([]domain.Qualification, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Qualification, 0, len(all))
	for _, qualification := range all {
		if qualification.IsActive() {
			active = append(active, qualification)
		}
	}
	return active, nil
}

func (u *qualificationUsecase) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Qualification, error) {
	owned, err := u.repo.FindAllByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Qualification, 0, len(owned))
	for _, qualification := range owned {
		if qualification.IsActive() {
			active = append(active, qualification)
		}
	}
	return active, nil
}
