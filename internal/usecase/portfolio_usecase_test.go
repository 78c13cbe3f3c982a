package usecase_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cvs-backend/internal/domain"
)

func TestPortfolioAddAttachesResolvableMembers(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := mustAddUser(t, e)
	candidate := mustAddCandidate(t, e)

	portfolio, err := e.portfolios.Add(ctx, &domain.Portfolio{
		Name:       "Q3 Intake",
		Users:      []domain.ApplicationUser{{Lifecycle: domain.Lifecycle{ID: user.ID}}},
		Candidates: []domain.Candidate{{Lifecycle: domain.Lifecycle{ID: candidate.ID}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Q3 Intake", portfolio.Name)
	require.Len(t, portfolio.Users, 1)
	require.Len(t, portfolio.Candidates, 1)
	assert.Equal(t, user.ID, portfolio.Users[0].ID)
	assert.Equal(t, candidate.ID, portfolio.Candidates[0].ID)
}

func TestPortfolioAddSkipsUnresolvableMembers(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := mustAddUser(t, e)
	voidedCandidate := mustAddCandidate(t, e)
	require.NoError(t, e.candidates.Delete(ctx, voidedCandidate.ID))

	// Unknown and voided references are skipped; the portfolio itself is
	// still created with the references that resolve.
	portfolio, err := e.portfolios.Add(ctx, &domain.Portfolio{
		Name: "Mixed Bag",
		Users: []domain.ApplicationUser{
			{Lifecycle: domain.Lifecycle{ID: user.ID}},
			{Lifecycle: domain.Lifecycle{ID: 404}},
		},
		Candidates: []domain.Candidate{
			{Lifecycle: domain.Lifecycle{ID: voidedCandidate.ID}},
		},
	})
	require.NoError(t, err)
	require.Len(t, portfolio.Users, 1)
	assert.Equal(t, user.ID, portfolio.Users[0].ID)
	assert.Empty(t, portfolio.Candidates)
}

func TestPortfolioAddValidatesName(t *testing.T) {
	e := newEnv()

	_, err := e.portfolios.Add(context.Background(), &domain.Portfolio{Name: "  "})
	appErr := requireAppError(t, err, http.StatusNotAcceptable)
	assert.Contains(t, appErr.Message, "Name should not be blank")
}

func TestAttachUserToExistingPortfolio(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := mustAddUser(t, e)

	portfolio, err := e.portfolios.Add(ctx, &domain.Portfolio{Name: "Empty"})
	require.NoError(t, err)

	got, err := e.portfolios.AttachUser(ctx, user.ID, portfolio.ID, nil)
	require.NoError(t, err)
	require.Len(t, got.Users, 1)
	assert.Equal(t, user.ID, got.Users[0].ID)
}

func TestAttachUserRejectsDuplicateAssociation(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := mustAddUser(t, e)

	portfolio, err := e.portfolios.Add(ctx, &domain.Portfolio{Name: "Empty"})
	require.NoError(t, err)

	_, err = e.portfolios.AttachUser(ctx, user.ID, portfolio.ID, nil)
	require.NoError(t, err)

	_, err = e.portfolios.AttachUser(ctx, user.ID, portfolio.ID, nil)
	appErr := requireAppError(t, err, http.StatusNotAcceptable)
	assert.Equal(t,
		fmt.Sprintf("Duplicate association for [APPLICATION_USER].%d and [PORTFOLIO].%d", user.ID, portfolio.ID),
		appErr.Message)
}

func TestAttachUserCreatesFallbackPortfolio(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := mustAddUser(t, e)

	created, err := e.portfolios.AttachUser(ctx, user.ID, 999, &domain.Portfolio{Name: "Fresh"})
	require.NoError(t, err)
	assert.Equal(t, "Fresh", created.Name)
	require.Len(t, created.Users, 1)
	assert.Equal(t, user.ID, created.Users[0].ID)
	assert.Empty(t, created.Candidates)
}

func TestAttachUserWithoutFallbackPropagatesNotFound(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := mustAddUser(t, e)

	_, err := e.portfolios.AttachUser(ctx, user.ID, 999, nil)
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, invalidOpMessage("PORTFOLIO", 999), appErr.Message)
}

func TestAttachUserRequiresActiveUser(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := mustAddUser(t, e)
	require.NoError(t, e.users.Delete(ctx, user.ID))

	portfolio, err := e.portfolios.Add(ctx, &domain.Portfolio{Name: "Empty"})
	require.NoError(t, err)

	_, err = e.portfolios.AttachUser(ctx, user.ID, portfolio.ID, nil)
	requireAppError(t, err, http.StatusNotFound)
}

func TestAttachUserRetiredPortfolioIsNotReplaced(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := mustAddUser(t, e)

	portfolio, err := e.portfolios.Add(ctx, &domain.Portfolio{Name: "Old"})
	require.NoError(t, err)
	require.NoError(t, e.portfolios.Retire(ctx, portfolio.ID))

	// Locked is not the fallback trigger; only a missing or voided target is.
	_, err = e.portfolios.AttachUser(ctx, user.ID, portfolio.ID, &domain.Portfolio{Name: "Fresh"})
	requireAppError(t, err, http.StatusLocked)
}

func TestAttachCandidateToExistingPortfolio(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)

	portfolio, err := e.portfolios.Add(ctx, &domain.Portfolio{Name: "Empty"})
	require.NoError(t, err)

	got, err := e.portfolios.AttachCandidate(ctx, candidate.ID, portfolio.ID, nil)
	require.NoError(t, err)
	require.Len(t, got.Candidates, 1)
	assert.Equal(t, candidate.ID, got.Candidates[0].ID)

	_, err = e.portfolios.AttachCandidate(ctx, candidate.ID, portfolio.ID, nil)
	appErr := requireAppError(t, err, http.StatusNotAcceptable)
	assert.Equal(t,
		fmt.Sprintf("Duplicate association for [CANDIDATE].%d and [PORTFOLIO].%d", candidate.ID, portfolio.ID),
		appErr.Message)
}

func TestPortfolioViewsFilterInactiveMembers(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	activeUser := mustAddUser(t, e)
	fading := mustAddCandidate(t, e)
	staying := mustAddCandidate(t, e)

	portfolio, err := e.portfolios.Add(ctx, &domain.Portfolio{
		Name:  "Team",
		Users: []domain.ApplicationUser{{Lifecycle: domain.Lifecycle{ID: activeUser.ID}}},
		Candidates: []domain.Candidate{
			{Lifecycle: domain.Lifecycle{ID: fading.ID}},
			{Lifecycle: domain.Lifecycle{ID: staying.ID}},
		},
	})
	require.NoError(t, err)
	require.Len(t, portfolio.Candidates, 2)

	// Voiding a member after the fact hides it from the view; the
	// association row itself is never removed.
	require.NoError(t, e.candidates.Delete(ctx, fading.ID))

	got, err := e.portfolios.GetActive(ctx, portfolio.ID)
	require.NoError(t, err)
	require.Len(t, got.Candidates, 1)
	assert.Equal(t, staying.ID, got.Candidates[0].ID)
	require.Len(t, got.Users, 1)
}

func TestPortfolioGetByName(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	first, err := e.portfolios.Add(ctx, &domain.Portfolio{Name: "Shared"})
	require.NoError(t, err)
	require.NoError(t, e.portfolios.Delete(ctx, first.ID))

	second, err := e.portfolios.Add(ctx, &domain.Portfolio{Name: "Shared"})
	require.NoError(t, err)

	got, err := e.portfolios.GetByName(ctx, "Shared")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	_, err = e.portfolios.GetByName(ctx, "Nope")
	requireAppError(t, err, http.StatusNotFound)
}

func TestPortfolioListByUser(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := mustAddUser(t, e)
	other := mustAddUser(t, e)

	mine, err := e.portfolios.Add(ctx, &domain.Portfolio{
		Name:  "Mine",
		Users: []domain.ApplicationUser{{Lifecycle: domain.Lifecycle{ID: user.ID}}},
	})
	require.NoError(t, err)
	_, err = e.portfolios.Add(ctx, &domain.Portfolio{
		Name:  "Theirs",
		Users: []domain.ApplicationUser{{Lifecycle: domain.Lifecycle{ID: other.ID}}},
	})
	require.NoError(t, err)

	owned, err := e.portfolios.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, mine.ID, owned[0].ID)

	// Voiding the portfolio drops it from the view.
	require.NoError(t, e.portfolios.Delete(ctx, mine.ID))
	owned, err = e.portfolios.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestPortfolioListByUserRequiresActiveUser(t *testing.T) {
	e := newEnv()

	_, err := e.portfolios.ListByUser(context.Background(), 5)
	requireAppError(t, err, http.StatusNotFound)
}

func TestCandidateListByPortfolio(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)

	portfolio, err := e.portfolios.Add(ctx, &domain.Portfolio{
		Name:       "Team",
		Candidates: []domain.Candidate{{Lifecycle: domain.Lifecycle{ID: candidate.ID}}},
	})
	require.NoError(t, err)

	members, err := e.candidates.ListByPortfolio(ctx, portfolio.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, candidate.ID, members[0].ID)
}
