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

const qualificationTypeKind = "QUALIFICATION_TYPE"

type qualificationTypeUsecase struct {
	repo     domain.QualificationTypeRepository
	tx       domain.TxManager
	validate *validator.Validate
	metrics  *metrics.Metrics
}

func NewQualificationTypeUsecase(repo domain.QualificationTypeRepository, tx domain.TxManager, validate *validator.Validate, m *metrics.Metrics) domain.QualificationTypeUsecase {
	return &qualificationTypeUsecase{repo: repo, tx: tx, validate: validate, metrics: m}
}

func (u *qualificationTypeUsecase) Add(ctx context.Context, payload *domain.QualificationType) (*domain.QualificationType, error) {
	green := &domain.QualificationType{Name: payload.Name}

	if err := validation.Check(u.validate, green); err != nil {
		return nil, err
	}

	var saved *domain.QualificationType
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		saved, err = u.repo.Save(ctx, green)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.metrics.Created(qualificationTypeKind)
	return saved, nil
}

func (u *qualificationTypeUsecase) GetActive(ctx context.Context, id int64) (*domain.QualificationType, error) {
	qualificationType, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if qualificationType == nil || qualificationType.Voided {
		return nil, apperror.NotFound(fmt.Sprintf("Invalid operation for [QUALIFICATION_TYPE].%d", id))
	}
	if qualificationType.Retired {
		return nil, apperror.Locked(fmt.Sprintf("Invalid operation for [QUALIFICATION_TYPE].%d", id))
	}
	return qualificationType, nil
}

func (u *qualificationTypeUsecase) Delete(ctx context.Context, id int64) error {
	qualificationType, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if qualificationType == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [QUALIFICATION_TYPE].%d", id))
	}
	if err := qualificationType.MarkVoided(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [QUALIFICATION_TYPE].%d", id))
	}
	if _, err := u.repo.Save(ctx, qualificationType); err != nil {
		return err
	}
	slog.Info("Deleted qualification type", "id", id)
	u.metrics.Voided(qualificationTypeKind)
	return nil
}

func (u *qualificationTypeUsecase) Retire(ctx context.Context, id int64) error {
	qualificationType, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if qualificationType == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [QUALIFICATION_TYPE].%d", id))
	}
	if err := qualificationType.MarkRetired(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [QUALIFICATION_TYPE].%d", id))
	}
	if _, err := u.repo.Save(ctx, qualificationType); err != nil {
		return err
	}
	slog.Info("Retired qualification type", "id", id)
	u.metrics.Retired(qualificationTypeKind)
	return nil
}

func (u *qualificationTypeUsecase) List(ctx context.Context) ([]domain.QualificationType, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.QualificationType, 0, len(all))
	for _, qualificationType := range all {
		if qualificationType.IsActive() {
			active = append(active, qualificationType)
		}
	}
	return active, nil
}
