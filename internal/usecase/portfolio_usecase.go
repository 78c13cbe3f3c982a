package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-playground/validator/v10"

	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
	"go-cvs-backend/pkg/metrics"
	"go-cvs-backend/pkg/validation"
)

const portfolioKind = "PORTFOLIO"

type portfolioUsecase struct {
	repo       domain.PortfolioRepository
	users      domain.ApplicationUserUsecase
	candidates domain.CandidateUsecase
	userRepo   domain.ApplicationUserRepository
	candRepo   domain.CandidateRepository
	tx         domain.TxManager
	validate   *validator.Validate
	metrics    *metrics.Metrics
}

func NewPortfolioUsecase(
	repo domain.PortfolioRepository,
	users domain.ApplicationUserUsecase,
	candidates domain.CandidateUsecase,
	userRepo domain.ApplicationUserRepository,
	candRepo domain.CandidateRepository,
	tx domain.TxManager,
	validate *validator.Validate,
	m *metrics.Metrics,
) domain.PortfolioUsecase {
	return &portfolioUsecase{
		repo:       repo,
		users:      users,
		candidates: candidates,
		userRepo:   userRepo,
		candRepo:   candRepo,
		tx:         tx,
		validate:   validate,
		metrics:    m,
	}
}

// Add persists a bare portfolio and then safely attaches every resolvable
// user and candidate reference from the payload. Unresolvable references are
// skipped, not fatal: this is the one lenient add flow in the system.
func (u *portfolioUsecase) Add(ctx context.Context, payload *domain.Portfolio) (*domain.Portfolio, error) {
	green := &domain.Portfolio{Name: payload.Name}

	if err := validation.Check(u.validate, green); err != nil {
		return nil, err
	}

	var savedID int64
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		saved, err := u.repo.Save(ctx, green)
		if err != nil {
			return err
		}
		savedID = saved.ID

		for _, ref := range payload.Users {
			user, err := u.users.GetActive(ctx, ref.ID)
			if err != nil {
				slog.Info("Skipping unresolvable user entry", "userId", ref.ID, "reason", err.Error())
				continue
			}
			// The user side owns the relationship.
			if err := u.userRepo.AttachPortfolio(ctx, user.ID, saved.ID); err != nil {
				return err
			}
			slog.Info("Added portfolio to user", "userId", user.ID, "portfolioId", saved.ID)
		}

		for _, ref := range payload.Candidates {
			candidate, err := u.candidates.GetActive(ctx, ref.ID)
			if err != nil {
				slog.Info("Skipping unresolvable candidate entry", "candidateId", ref.ID, "reason", err.Error())
				continue
			}
			if err := u.candRepo.AttachPortfolio(ctx, candidate.ID, saved.ID); err != nil {
				return err
			}
			slog.Info("Added portfolio to candidate", "candidateId", candidate.ID, "portfolioId", saved.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.metrics.Created(portfolioKind)

	// Reload so the reverse-association views are current.
	return u.GetActive(ctx, savedID)
}

// AttachUser associates an active user with an active portfolio, rejecting
// duplicates. When the portfolio id does not resolve and a fallback payload is
// supplied, a fresh portfolio is created pre-seeded with the association.
func (u *portfolioUsecase) AttachUser(ctx context.Context, userID, portfolioID int64, fallback *domain.Portfolio) (*domain.Portfolio, error) {
	user, err := u.users.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	portfolio, err := u.GetActive(ctx, portfolioID)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound && fallback != nil {
			fallback.Users = []domain.ApplicationUser{{Lifecycle: domain.Lifecycle{ID: user.ID}}}
			fallback.Candidates = nil
			return u.Add(ctx, fallback)
		}
		return nil, err
	}

	already, err := u.userRepo.HasPortfolio(ctx, user.ID, portfolio.ID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, apperror.NotAcceptable(fmt.Sprintf("Duplicate association for [APPLICATION_USER].%d and [PORTFOLIO].%d", user.ID, portfolio.ID))
	}

	if err := u.userRepo.AttachPortfolio(ctx, user.ID, portfolio.ID); err != nil {
		return nil, err
	}
	return u.GetActive(ctx, portfolio.ID)
}

func (u *portfolioUsecase) AttachCandidate(ctx context.Context, candidateID, portfolioID int64, fallback *domain.Portfolio) (*domain.Portfolio, error) {
	candidate, err := u.candidates.GetActive(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	portfolio, err := u.GetActive(ctx, portfolioID)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound && fallback != nil {
			fallback.Candidates = []domain.Candidate{{Lifecycle: domain.Lifecycle{ID: candidate.ID}}}
			fallback.Users = nil
			return u.Add(ctx, fallback)
		}
		return nil, err
	}

	already, err := u.candRepo.HasPortfolio(ctx, candidate.ID, portfolio.ID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, apperror.NotAcceptable(fmt.Sprintf("Duplicate association for [CANDIDATE].%d and [PORTFOLIO].%d", candidate.ID, portfolio.ID))
	}

	if err := u.candRepo.AttachPortfolio(ctx, candidate.ID, portfolio.ID); err != nil {
		return nil, err
	}
	return u.GetActive(ctx, portfolio.ID)
}

func (u *portfolioUsecase) GetActive(ctx context.Context, id int64) (*domain.Portfolio, error) {
	portfolio, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if portfolio == nil || portfolio.Voided {
		return nil, apperror.NotFound(fmt.Sprintf("Invalid operation for [PORTFOLIO].%d", id))
	}
	if portfolio.Retired {
		return nil, apperror.Locked(fmt.Sprintf("Invalid operation for [PORTFOLIO].%d", id))
	}
	if err := u.loadAssociations(ctx, portfolio); err != nil {
		return nil, err
	}
	return portfolio, nil
}

func (u *portfolioUsecase) GetByName(ctx context.Context, name string) (*domain.Portfolio, error) {
	matches, err := u.repo.FindAllByName(ctx, name)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		if matches[i].IsActive() {
			portfolio := matches[i]
			if err := u.loadAssociations(ctx, &portfolio); err != nil {
				return nil, err
			}
			return &portfolio, nil
		}
	}
	return nil, apperror.NotFound(fmt.Sprintf("Invalid operation for [PORTFOLIO].%s", name))
}

func (u *portfolioUsecase) Delete(ctx context.Context, id int64) error {
	portfolio, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if portfolio == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [PORTFOLIO].%d", id))
	}
	if err := portfolio.MarkVoided(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [PORTFOLIO].%d", id))
	}
	if _, err := u.repo.Save(ctx, portfolio); err != nil {
		return err
	}
	slog.Info("Deleted portfolio", "id", id)
	u.metrics.Voided(portfolioKind)
	return nil
}

func (u *portfolioUsecase) Retire(ctx context.Context, id int64) error {
	portfolio, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if portfolio == nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [PORTFOLIO].%d", id))
	}
	if err := portfolio.MarkRetired(); err != nil {
		return apperror.NotFound(fmt.Sprintf("Invalid operation for [PORTFOLIO].%d", id))
	}
	if _, err := u.repo.Save(ctx, portfolio); err != nil {
		return err
	}
	slog.Info("Retired portfolio", "id", id)
	u.metrics.Retired(portfolioKind)
	return nil
}

func (u *portfolioUsecase) List(ctx context.Context) ([]domain.Portfolio, error) {
	all, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Portfolio, 0, len(all))
	for i := range all {
		if !all[i].IsActive() {
			continue
		}
		portfolio := all[i]
		if err := u.loadAssociations(ctx, &portfolio); err != nil {
			return nil, err
		}
		active = append(active, portfolio)
	}
	return active, nil
}

func (u *portfolioUsecase) ListByUser(ctx context.Context, userID int64) ([]domain.Portfolio, error) {
	if _, err := u.users.GetActive(ctx, userID); err != nil {
		return nil, err
	}
	owned, err := u.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Portfolio, 0, len(owned))
	for i := range owned {
		if !owned[i].IsActive() {
			continue
		}
		portfolio := owned[i]
		if err := u.loadAssociations(ctx, &portfolio); err != nil {
			return nil, err
		}
		active = append(active, portfolio)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active, nil
}

// loadAssociations materializes the reverse-association views. The filter is
// re-applied on every read because the lifecycle flags of members change
// independently of the association rows.
func (u *portfolioUsecase) loadAssociations(ctx context.Context, portfolio *domain.Portfolio) error {
	users, err := u.userRepo.FindAllByPortfolio(ctx, portfolio.ID)
	if err != nil {
		return err
	}
	portfolio.Users = make([]domain.ApplicationUser, 0, len(users))
	for _, user := range users {
		if user.IsActive() {
			portfolio.Users = append(portfolio.Users, user)
		}
	}

	candidates, err := u.candRepo.FindAllByPortfolio(ctx, portfolio.ID)
	if err != nil {
		return err
	}
	portfolio.Candidates = make([]domain.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.IsActive() {
			portfolio.Candidates = append(portfolio.Candidates, candidate)
		}
	}
	return nil
}
