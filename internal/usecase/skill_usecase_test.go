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

func TestSkillAddAttachesCandidate(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)

	skill, err := e.skills.Add(ctx, &domain.Skill{
		Description: "Distributed systems",
		Candidate:   candidate,
	})
	require.NoError(t, err)
	require.NotNil(t, skill.Candidate)
	assert.Equal(t, candidate.ID, skill.Candidate.ID)

	owned, err := e.skills.ListByCandidate(ctx, candidate.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "Distributed systems", owned[0].Description)
}

func TestSkillRequiresCandidateReference(t *testing.T) {
	e := newEnv()

	_, err := e.skills.Add(context.Background(), &domain.Skill{Description: "Go"})
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Unable to find existing CANDIDATE reference", appErr.Message)
}

func TestSkillRejectsUnknownCandidate(t *testing.T) {
	e := newEnv()

	_, err := e.skills.Add(context.Background(), &domain.Skill{
		Description: "Go",
		Candidate:   &domain.Candidate{Lifecycle: domain.Lifecycle{ID: 77}},
	})
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, fmt.Sprintf("Unable to find existing [CANDIDATE] %d", 77), appErr.Message)
}

func TestSkillValidationPrecedesReference(t *testing.T) {
	e := newEnv()

	_, err := e.skills.Add(context.Background(), &domain.Skill{Description: " "})
	appErr := requireAppError(t, err, http.StatusNotAcceptable)
	assert.Contains(t, appErr.Message, "Description should not be blank")
}

func TestSkillListByCandidateOmitsInactive(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)

	kept, err := e.skills.Add(ctx, &domain.Skill{Description: "Go", Candidate: candidate})
	require.NoError(t, err)
	dropped, err := e.skills.Add(ctx, &domain.Skill{Description: "Cobol", Candidate: candidate})
	require.NoError(t, err)
	require.NoError(t, e.skills.Delete(ctx, dropped.ID))

	owned, err := e.skills.ListByCandidate(ctx, candidate.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, kept.ID, owned[0].ID)
}
