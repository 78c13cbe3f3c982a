package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cvs-backend/internal/domain"
)

func validQualification(candidate *domain.Candidate, qualificationType *domain.QualificationType) *domain.Qualification {
	return &domain.Qualification{
		Name:              "BSc Computer Science",
		Institution:       "University of Example",
		Country:           "UK",
		DateObtained:      "2012-07-01",
		Candidate:         candidate,
		QualificationType: qualificationType,
	}
}

func mustAddQualificationType(t *testing.T, e *env) *domain.QualificationType {
	t.Helper()
	qualificationType, err := e.qualTypes.Add(context.Background(), &domain.QualificationType{Name: "Degree"})
	require.NoError(t, err)
	return qualificationType
}

func TestQualificationAddAttachesBothReferences(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)
	qualificationType := mustAddQualificationType(t, e)

	qualification, err := e.qualifications.Add(ctx, validQualification(candidate, qualificationType))
	require.NoError(t, err)
	require.NotNil(t, qualification.Candidate)
	require.NotNil(t, qualification.QualificationType)
	assert.Equal(t, candidate.ID, qualification.Candidate.ID)
	assert.Equal(t, qualificationType.ID, qualification.QualificationType.ID)

	owned, err := e.qualifications.ListByCandidate(ctx, candidate.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
}

func TestQualificationRequiresBothReferences(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)
	qualificationType := mustAddQualificationType(t, e)

	for _, tc := range []struct {
		name    string
		payload *domain.Qualification
	}{
		{"no candidate", validQualification(nil, qualificationType)},
		{"no qualification type", validQualification(candidate, nil)},
		{"neither", validQualification(nil, nil)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.qualifications.Add(ctx, tc.payload)
			appErr := requireAppError(t, err, http.StatusNotFound)
			assert.Equal(t, "Unable to find existing CANDIDATE or QUALIFICATION_TYPE references", appErr.Message)
		})
	}
}

func TestQualificationRejectsVoidedReference(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)
	qualificationType := mustAddQualificationType(t, e)
	require.NoError(t, e.qualTypes.Delete(ctx, qualificationType.ID))

	_, err := e.qualifications.Add(ctx, validQualification(candidate, qualificationType))
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Unable to find existing CANDIDATE or QUALIFICATION_TYPE references", appErr.Message)
}

func TestQualificationRejectsRetiredReference(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)
	qualificationType := mustAddQualificationType(t, e)
	require.NoError(t, e.candidates.Retire(ctx, candidate.ID))

	_, err := e.qualifications.Add(ctx, validQualification(candidate, qualificationType))
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Unable to find active CANDIDATE or QUALIFICATION_TYPE references", appErr.Message)
}

func TestQualificationValidationPrecedesReferences(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	payload := validQualification(nil, nil)
	payload.Name = " "

	_, err := e.qualifications.Add(ctx, payload)
	appErr := requireAppError(t, err, http.StatusNotAcceptable)
	assert.Contains(t, appErr.Message, "Name should not be blank")
}

func TestQualificationLifecycle(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	candidate := mustAddCandidate(t, e)
	qualificationType := mustAddQualificationType(t, e)

	qualification, err := e.qualifications.Add(ctx, validQualification(candidate, qualificationType))
	require.NoError(t, err)

	require.NoError(t, e.qualifications.Retire(ctx, qualification.ID))
	_, err = e.qualifications.GetActive(ctx, qualification.ID)
	requireAppError(t, err, http.StatusLocked)

	require.NoError(t, e.qualifications.Delete(ctx, qualification.ID))
	_, err = e.qualifications.GetActive(ctx, qualification.ID)
	requireAppError(t, err, http.StatusNotFound)
}
