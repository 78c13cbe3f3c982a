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

const referenceKind = "REFERENCE"

type referenceUsecase struct {
	repo       domain.ReferenceRepository
	candidates domain.CandidateUsecase
	tx         domain.TxManager
	validate   *validator.Validate
	metrics    *metrics.Metrics
}

func NewReferenceUsecase(repo domain.ReferenceRepository, candidates domain.CandidateUsecase, tx domain.TxManager, validate *validator.Validate, m *metrics.Metrics) domain.ReferenceUsecase {
	return &referenceUsecase{repo: repo, candidates: candidates, tx: tx, validate: validate, metrics: m}
}

func (u *referenceUsecase) Add(ctx context.Context, payload *domain.Reference) (*domain.Reference, error) {
	green := &domain.Reference{
		Name:          payload.Name,
		JobTitle:      payload.JobTitle,
		Institution:   payload.Institution,
		Email:         payload.Email,
		ContactNumber: payload.ContactNumber,
		AddressLine1:  payload.AddressLine1,
		AddressLine2:  payload.AddressLine2,
		AddressLine3:  payload.AddressLine3,
		Postcode:      payload.Postcode,
		Country:       payload.Country,
	}

	if err := validation.Check(u.validate, green); err != nil {
		return nil, err
	}

	existing, err := resolveCandidateRef(ctx, u.candidates, payload.Candidate)
	if err != nil {
		return nil, err
	}

	var saved *domain.Reference
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

	u.metrics.Created(referenceKind)
	return saved, nil
}

func (u *referenceUsecase) GetActive(ctx context.Context, id int64) (*domain.Reference, error) {
	reference, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reference == nil || reference.Voided {
		return nil, apperror.NotFound(fmt.Sprintf("Invalid operation for [REFERENCE].%d", id))
	}
	if reference.Retired {
		return nil, apperror.Locked(fmt.Sprintf("Invalid operation for [REFERENCE].%d", id))
	}
	return reference, nil
}

func (u *referenceUsecase) Delete(ctx context.Context, id int64) error {
	reference, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if reference == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [REFERENCE].%d", id))
	}
	if err := reference.MarkVoided(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [REFERENCE].%d", id))
	}
	if _, err := u.repo.Save(ctx, reference); err != nil {
		return err
	}
	slog.Info("Deleted reference", "id", id)
	u.metrics.Voided(referenceKind)
	return nil
}

func (u *referenceUsecase) Retire(ctx context.Context, id int64) error {
	reference, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if reference == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [REFERENCE].%d", id))
	}
	if err := reference.MarkRetired(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [REFERENCE].%d", id))
	}
	if _, err := u.repo.Save(ctx, reference); err != nil {
		return err
	}
	slog.Info("Retired reference", "id", id)
	u.metrics.Retired(referenceKind)
	return nil
}

func (u *referenceUsecase) List(ctx context.Context) ([]domain.Reference, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Reference, 0, len(all))
	for _, reference := range all {
		if reference.IsActive() {
			active = append(active, reference)
		}
	}
	return active, nil
}

func (u *referenceUsecase) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Reference, error) {
	owned, err := u.repo.FindAllByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Reference, 0, len(owned))
	for _, reference := range owned {
		if reference.IsActive() {
			active = append(active, reference)
		}
	}
	return active, nil
}
