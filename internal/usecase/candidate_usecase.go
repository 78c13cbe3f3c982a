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

const candidateKind = "CANDIDATE"

type candidateUsecase struct {
	repo     domain.CandidateRepository
	tx       domain.TxManager
	validate *validator.Validate
	metrics  *metrics.Metrics
}

func NewCandidateUsecase(repo domain.CandidateRepository, tx domain.TxManager, validate *validator.Validate, m *metrics.Metrics) domain.CandidateUsecase {
	return &candidateUsecase{repo: repo, tx: tx, validate: validate, metrics: m}
}

func (u *candidateUsecase) Add(ctx context.Context, payload *domain.Candidate) (*domain.Candidate, error) {
	// Extract whitelisted fields only; caller-supplied id, audit fields and
	// lifecycle flags are never trusted.
	green := &domain.Candidate{
		FirstName:                payload.FirstName,
		MiddleName:               payload.MiddleName,
		LastName:                 payload.LastName,
		Title:                    payload.Title,
		Gender:                   payload.Gender,
		Email:                    payload.Email,
		PreferredContactNumber:   payload.PreferredContactNumber,
		AlternativeContactNumber: payload.AlternativeContactNumber,
		AddressLine1:             payload.AddressLine1,
		AddressLine2:             payload.AddressLine2,
		AddressLine3:             payload.AddressLine3,
		Postcode:                 payload.Postcode,
		Country:                  payload.Country,
		DateOfBirth:              payload.DateOfBirth,
	}

	if err := validation.Check(u.validate, green); err != nil {
		return nil, err
	}

	var saved *domain.Candidate
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		saved, err = u.repo.Save(ctx, green)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.metrics.Created(candidateKind)
	return saved, nil
}

func (u *candidateUsecase) GetActive(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil || candidate.Voided {
		return nil, apperror.NotFound(fmt.Sprintf("Invalid operation for [CANDIDATE].%d", id))
	}
	if candidate.Retired {
		return nil, apperror.Locked(fmt.Sprintf("Invalid operation for [CANDIDATE].%d", id))
	}
	return candidate, nil
}

func (u *candidateUsecase) Delete(ctx context.Context, id int64) error {
	candidate, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if candidate == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [CANDIDATE].%d", id))
	}
	if err := candidate.MarkVoided(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [CANDIDATE].%d", id))
	}
	if _, err := u.repo.Save(ctx, candidate); err != nil {
		return err
	}
	slog.Info("Deleted candidate", "id", id)
	u.metrics.Voided(candidateKind)
	return nil
}

func (u *candidateUsecase) Retire(ctx context.Context, id int64) error {
	candidate, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if candidate == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [CANDIDATE].%d", id))
	}
	if err := candidate.MarkRetired(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [CANDIDATE].%d", id))
	}
	if _, err := u.repo.Save(ctx, candidate); err != nil {
		return err
	}
	slog.Info("Retired candidate", "id", id)
	u.metrics.Retired(candidateKind)
	return nil
}

func (u *candidateUsecase) List(ctx context.Context) ([]domain.Candidate, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Candidate, 0, len(all))
	for _, candidate := range all {
		if candidate.IsActive() {
			active = append(active, candidate)
		}
	}
	return active, nil
}

func (u *candidateUsecase) ListByPortfolio(ctx context.Context, portfolioID int64) ([]domain.Candidate, error) {
	members, err := u.repo.FindAllByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Candidate, 0, len(members))
	for _, candidate := range members {
		if candidate.IsActive() {
			active = append(active, candidate)
		}
	}
	return active, nil
}
