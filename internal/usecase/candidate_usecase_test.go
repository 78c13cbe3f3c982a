package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cvs-backend/internal/domain"
)

func TestCandidateAddAndGetActive(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	candidate := mustAddCandidate(t, e)
	assert.NotZero(t, candidate.ID)
	assert.Equal(t, domain.SystemActor, candidate.CreatedBy)
	assert.True(t, candidate.IsActive())

	got, err := e.candidates.GetActive(ctx, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "1990-06-15", got.DateOfBirth)
}

func TestCandidateAddStampsActorFromContext(t *testing.T) {
	e := newEnv()
	ctx := domain.WithActor(context.Background(), "recruiter1")

	candidate, err := e.candidates.Add(ctx, validCandidate())
	require.NoError(t, err)
	assert.Equal(t, "recruiter1", candidate.CreatedBy)
	assert.Equal(t, "recruiter1", candidate.LastModifiedBy)
}

func TestCandidateAddIgnoresClientLifecycleFields(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	payload := validCandidate()
	payload.ID = 99
	payload.Voided = true
	payload.Retired = true
	payload.CreatedBy = "spoofed"

	candidate, err := e.candidates.Add(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(1), candidate.ID)
	assert.True(t, candidate.IsActive())
	assert.Equal(t, domain.SystemActor, candidate.CreatedBy)
}

func TestCandidateAddRejectsInvalidPayloadAndStoresNothing(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	payload := validCandidate()
	payload.FirstName = "  "
	payload.Gender = "X"

	_, err := e.candidates.Add(ctx, payload)
	appErr := requireAppError(t, err, http.StatusNotAcceptable)
	assert.Contains(t, appErr.Message, "Validation error:")
	assert.Contains(t, appErr.Message, " -> First name should not be blank")
	assert.Contains(t, appErr.Message, " -> Gender should be M for Male or F for Female")

	all, err := e.candidates.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCandidateDeleteHidesRecord(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)

	require.NoError(t, e.candidates.Delete(ctx, candidate.ID))

	_, err := e.candidates.GetActive(ctx, candidate.ID)
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, invalidOpMessage("CANDIDATE", candidate.ID), appErr.Message)

	// Voiding is one-way; a repeat delete reads as missing.
	err = e.candidates.Delete(ctx, candidate.ID)
	requireAppError(t, err, http.StatusNotFound)
}

func TestCandidateRetireLocksRecord(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)

	require.NoError(t, e.candidates.Retire(ctx, candidate.ID))

	_, err := e.candidates.GetActive(ctx, candidate.ID)
	appErr := requireAppError(t, err, http.StatusLocked)
	assert.Equal(t, invalidOpMessage("CANDIDATE", candidate.ID), appErr.Message)

	err = e.candidates.Retire(ctx, candidate.ID)
	requireAppError(t, err, http.StatusNotFound)
}

func TestCandidateDeleteMissingID(t *testing.T) {
	e := newEnv()

	err := e.candidates.Delete(context.Background(), 42)
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, invalidOpMessage("CANDIDATE", 42), appErr.Message)
}

func TestCandidateListFiltersInactive(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	active := mustAddCandidate(t, e)
	voided := mustAddCandidate(t, e)
	retired := mustAddCandidate(t, e)

	require.NoError(t, e.candidates.Delete(ctx, voided.ID))
	require.NoError(t, e.candidates.Retire(ctx, retired.ID))

	all, err := e.candidates.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, active.ID, all[0].ID)
}
