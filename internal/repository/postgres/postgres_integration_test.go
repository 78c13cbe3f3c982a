//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cvs-backend/internal/domain"
	"go-cvs-backend/internal/repository/postgres"
	"go-cvs-backend/pkg/testutil/containers"
)

func TestPostgresRepositories(t *testing.T) {
	pc := containers.NewPostgresContainer(t)
	ctx := context.Background()

	candidates := postgres.NewCandidateRepository(pc.Pool)
	users := postgres.NewApplicationUserRepository(pc.Pool)
	portfolios := postgres.NewPortfolioRepository(pc.Pool)
	skills := postgres.NewSkillRepository(pc.Pool)
	tx := postgres.NewTxManager(pc.Pool)

	t.Run("save and find candidate", func(t *testing.T) {
		require.NoError(t, pc.Truncate(ctx))

		actorCtx := domain.WithActor(ctx, "itest")
		saved, err := candidates.Save(actorCtx, &domain.Candidate{
			FirstName:    "Jane",
			LastName:     "Doe",
			Gender:       "F",
			Email:        "jane@example.com",
			AddressLine1: "1 High Street",
			Country:      "UK",
			DateOfBirth:  "1990-06-15",
		})
		require.NoError(t, err)
		require.NotZero(t, saved.ID)
		assert.Equal(t, "itest", saved.CreatedBy)

		got, err := candidates.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Jane", got.FirstName)
		assert.Equal(t, "1990-06-15", got.DateOfBirth)
		assert.Equal(t, "itest", got.CreatedBy)
	})

	t.Run("missing id reads as nil", func(t *testing.T) {
		got, err := candidates.FindByID(ctx, 424242)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("lifecycle flags round-trip", func(t *testing.T) {
		require.NoError(t, pc.Truncate(ctx))

		saved, err := candidates.Save(ctx, &domain.Candidate{
			FirstName: "A", LastName: "B", Gender: "M",
			Email: "a@example.com", AddressLine1: "x", Country: "UK",
		})
		require.NoError(t, err)
		require.NoError(t, saved.MarkVoided())
		_, err = candidates.Save(ctx, saved)
		require.NoError(t, err)

		got, err := candidates.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.True(t, got.Voided)
		assert.Equal(t, domain.VoidedReason, got.VoidedReason)
	})

	t.Run("association attach and views", func(t *testing.T) {
		require.NoError(t, pc.Truncate(ctx))

		user, err := users.Save(ctx, &domain.ApplicationUser{Username: "u", Password: "p", FullName: "U"})
		require.NoError(t, err)
		portfolio, err := portfolios.Save(ctx, &domain.Portfolio{Name: "Team"})
		require.NoError(t, err)

		require.NoError(t, users.AttachPortfolio(ctx, user.ID, portfolio.ID))
		// Idempotent, like the memory store.
		require.NoError(t, users.AttachPortfolio(ctx, user.ID, portfolio.ID))

		has, err := users.HasPortfolio(ctx, user.ID, portfolio.ID)
		require.NoError(t, err)
		assert.True(t, has)

		members, err := users.FindAllByPortfolio(ctx, portfolio.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, user.ID, members[0].ID)

		owned, err := portfolios.FindAllByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.Equal(t, portfolio.ID, owned[0].ID)
	})

	t.Run("child reference round-trips id", func(t *testing.T) {
		require.NoError(t, pc.Truncate(ctx))

		candidate, err := candidates.Save(ctx, &domain.Candidate{
			FirstName: "A", LastName: "B", Gender: "M",
			Email: "a@example.com", AddressLine1: "x", Country: "UK",
		})
		require.NoError(t, err)

		skill, err := skills.Save(ctx, &domain.Skill{Description: "Go", Candidate: candidate})
		require.NoError(t, err)

		got, err := skills.FindByID(ctx, skill.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Candidate)
		assert.Equal(t, candidate.ID, got.Candidate.ID)

		owned, err := skills.FindAllByCandidate(ctx, candidate.ID)
		require.NoError(t, err)
		assert.Len(t, owned, 1)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		require.NoError(t, pc.Truncate(ctx))

		boom := errors.New("boom")
		err := tx.RunInTx(ctx, func(txCtx context.Context) error {
			if _, err := portfolios.Save(txCtx, &domain.Portfolio{Name: "Ghost"}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		all, err := portfolios.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
