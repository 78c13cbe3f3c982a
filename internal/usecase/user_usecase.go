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

const userKind = "APPLICATION_USER"

type userUsecase struct {
	repo     domain.ApplicationUserRepository
	tx       domain.TxManager
	validate *validator.Validate
	metrics  *metrics.Metrics
}

func NewUserUsecase(repo domain.ApplicationUserRepository, tx domain.TxManager, validate *validator.Validate, m *metrics.Metrics) domain.ApplicationUserUsecase {
	return &userUsecase{repo: repo, tx: tx, validate: validate, metrics: m}
}

func (u *userUsecase) Add(ctx context.Context, payload *domain.ApplicationUser) (*domain.ApplicationUser, error) {
	// Green record: whitelisted fields only, lifecycle flags start clear.
	green := &domain.ApplicationUser{
		Username: payload.Username,
		Password: payload.Password,
		FullName: payload.FullName,
	}

	if err := validation.Check(u.validate, green); err != nil {
		return nil, err
	}

	var saved *domain.ApplicationUser
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		saved, err = u.repo.Save(ctx, green)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.metrics.Created(userKind)
	return saved, nil
}

func (u *userUsecase) GetActive(ctx context.Context, id int64) (*domain.ApplicationUser, error) {
	user, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Voided {
		return nil, apperror.NotFound(fmt.Sprintf("Invalid operation for [APPLICATION_USER].%d", id))
	}
	if user.Retired {
		return nil, apperror.Locked(fmt.Sprintf("Invalid operation for [APPLICATION_USER].%d", id))
	}
	return user, nil
}

func (u *userUsecase) Delete(ctx context.Context, id int64) error {
	user, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [APPLICATION_USER].%d", id))
	}
	if err := user.MarkVoided(); err != nil {
		// Re-voiding collapses to not-found for the caller.
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [APPLICATION_USER].%d", id))
	}
	if _, err := u.repo.Save(ctx, user); err != nil {
		return err
	}
	slog.Info("Deleted user", "id", id)
	u.metrics.Voided(userKind)
	return nil
}

func (u *userUsecase) Retire(ctx context.Context, id int64) error {
	user, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [APPLICATION_USER].%d", id))
	}
	if err := user.MarkRetired(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [APPLICATION_USER].%d", id))
	}
	if _, err := u.repo.Save(ctx, user); err != nil {
		return err
	}
	slog.Info("Retired user", "id", id)
	u.metrics.Retired(userKind)
	return nil
}

func (u *userUsecase) List(ctx context.Context) ([]domain.ApplicationUser, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.ApplicationUser, 0, len(all))
	for _, user := range all {
		if user.IsActive() {
			active = append(active, user)
		}
	}
	return active, nil
}
