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

func validWorkExperience(candidate *domain.Candidate) *domain.WorkExperience {
	return &domain.WorkExperience{
		Organisation: "Acme Ltd",
		Country:      "UK",
		Position:     "Engineer",
		StartDate:    "2010-06-15",
		EndDate:      "2014-02-01",
		Candidate:    candidate,
	}
}

func TestWorkExperienceAddAttachesCandidate(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)

	workExperience, err := e.workExperiences.Add(ctx, validWorkExperience(candidate))
	require.NoError(t, err)
	require.NotNil(t, workExperience.Candidate)
	assert.Equal(t, candidate.ID, workExperience.Candidate.ID)

	owned, err := e.workExperiences.ListByCandidate(ctx, candidate.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, workExperience.ID, owned[0].ID)
}

func TestWorkExperienceRejectsInvertedDates(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)

	payload := validWorkExperience(candidate)
	payload.StartDate = "2014-02-01"
	payload.EndDate = "2010-06-15"

	_, err := e.workExperiences.Add(ctx, payload)
	appErr := requireAppError(t, err, http.StatusNotAcceptable)
	assert.Equal(t, "End Date should be after Start Date", appErr.Message)
}

func TestWorkExperienceRejectsEqualDates(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)

	payload := validWorkExperience(candidate)
	payload.EndDate = payload.StartDate

	_, err := e.workExperiences.Add(ctx, payload)
	appErr := requireAppError(t, err, http.StatusNotAcceptable)
	assert.Equal(t, "End Date should be after Start Date", appErr.Message)
}

func TestWorkExperienceDateOrderCheckedBeforeReference(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	// No candidate reference at all; the inconsistent range still wins.
	payload := validWorkExperience(nil)
	payload.StartDate = "2014-02-01"
	payload.EndDate = "2010-06-15"

	_, err := e.workExperiences.Add(ctx, payload)
	appErr := requireAppError(t, err, http.StatusNotAcceptable)
	assert.Equal(t, "End Date should be after Start Date", appErr.Message)
}

func TestWorkExperienceRequiresCandidateReference(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	_, err := e.workExperiences.Add(ctx, validWorkExperience(nil))
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Unable to find existing CANDIDATE reference", appErr.Message)
}

func TestWorkExperienceRejectsVoidedCandidate(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)
	require.NoError(t, e.candidates.Delete(ctx, candidate.ID))

	_, err := e.workExperiences.Add(ctx, validWorkExperience(candidate))
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, fmt.Sprintf("Unable to find existing [CANDIDATE] %d", candidate.ID), appErr.Message)
}

func TestWorkExperienceRejectsRetiredCandidate(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)
	require.NoError(t, e.candidates.Retire(ctx, candidate.ID))

	_, err := e.workExperiences.Add(ctx, validWorkExperience(candidate))
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, fmt.Sprintf("Unable to find active [CANDIDATE] %d", candidate.ID), appErr.Message)
}

func TestWorkExperienceValidationBeforeDates(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	payload := &domain.WorkExperience{
		Organisation: " ",
		Country:      "UK",
		Position:     "Engineer",
		StartDate:    "2014-02-01",
		EndDate:      "2010-06-15",
	}

	_, err := e.workExperiences.Add(ctx, payload)
	appErr := requireAppError(t, err, http.StatusNotAcceptable)
	assert.Contains(t, appErr.Message, "Validation error:")
	assert.Contains(t, appErr.Message, "Organisation should not be blank")
}
