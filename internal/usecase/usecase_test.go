package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"go-cvs-backend/internal/domain"
	"go-cvs-backend/internal/repository/memory"
	"go-cvs-backend/internal/usecase"
	"go-cvs-backend/pkg/apperror"
	"go-cvs-backend/pkg/validation"
)

// env wires every usecase over a fresh in-memory store. Metrics are nil to
// avoid global registration in unit tests; the usecases tolerate that.
type env struct {
	store           *memory.Store
	users           domain.ApplicationUserUsecase
	candidates      domain.CandidateUsecase
	portfolios      domain.PortfolioUsecase
	qualTypes       domain.QualificationTypeUsecase
	qualifications  domain.QualificationUsecase
	references      domain.ReferenceUsecase
	skills          domain.SkillUsecase
	workExperiences domain.WorkExperienceUsecase
}

func newEnv() *env {
	store := memory.NewStore()
	tx := memory.NewTxManager()
	v := validation.New()

	users := usecase.NewUserUsecase(store.Users, tx, v, nil)
	candidates := usecase.NewCandidateUsecase(store.Candidates, tx, v, nil)
	qualTypes := usecase.NewQualificationTypeUsecase(store.QualificationTypes, tx, v, nil)

	return &env{
		store:           store,
		users:           users,
		candidates:      candidates,
		qualTypes:       qualTypes,
		portfolios:      usecase.NewPortfolioUsecase(store.Portfolios, users, candidates, store.Users, store.Candidates, tx, v, nil),
		qualifications:  usecase.NewQualificationUsecase(store.Qualifications, candidates, qualTypes, tx, v, nil),
		references:      usecase.NewReferenceUsecase(store.References, candidates, tx, v, nil),
		skills:          usecase.NewSkillUsecase(store.Skills, candidates, tx, v, nil),
		workExperiences: usecase.NewWorkExperienceUsecase(store.WorkExperiences, candidates, tx, v, nil),
	}
}

func validCandidate() *domain.Candidate {
	return &domain.Candidate{
		FirstName:    "Jane",
		LastName:     "Doe",
		Gender:       "F",
		Email:        "jane.doe@example.com",
		AddressLine1: "1 High Street",
		Country:      "UK",
		DateOfBirth:  "1990-06-15",
	}
}

func validUser() *domain.ApplicationUser {
	return &domain.ApplicationUser{
		Username: "jdoe",
		Password: "s3cret",
		FullName: "Jane Doe",
	}
}

// mustAddCandidate seeds an active candidate and returns it.
func mustAddCandidate(t *testing.T, e *env) *domain.Candidate {
	t.Helper()
	candidate, err := e.candidates.Add(context.Background(), validCandidate())
	require.NoError(t, err)
	return candidate
}

func mustAddUser(t *testing.T, e *env) *domain.ApplicationUser {
	t.Helper()
	user, err := e.users.Add(context.Background(), validUser())
	require.NoError(t, err)
	return user
}

// requireAppError asserts that err carries the given HTTP code.
func requireAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code, "unexpected status for error %q", appErr.Message)
	return appErr
}

func invalidOpMessage(kind string, id int64) string {
	return fmt.Sprintf("Invalid operation for [%s].%d", kind, id)
}
