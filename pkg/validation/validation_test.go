package validation_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cvs-backend/internal/domain"
	"go-cvs-backend/pkg/apperror"
	"go-cvs-backend/pkg/validation"
)

func TestCheckPassesCompleteCandidate(t *testing.T) {
	v := validation.New()

	err := validation.Check(v, &domain.Candidate{
		FirstName:    "Jane",
		LastName:     "Doe",
		Gender:       "F",
		Email:        "jane.doe@example.com",
		AddressLine1: "1 High Street",
		Country:      "UK",
		DateOfBirth:  "1990-06-15",
	})
	assert.NoError(t, err)
}

func TestCheckAggregatesEveryViolation(t *testing.T) {
	v := validation.New()

	err := validation.Check(v, &domain.Candidate{
		FirstName:    "   ",
		LastName:     "Doe",
		Gender:       "X",
		Email:        "not-an-email",
		AddressLine1: "1 High Street",
		Country:      "UK",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotAcceptable, appErr.Code)

	assert.Contains(t, appErr.Message, "Validation error:")
	assert.Contains(t, appErr.Message, " -> First name should not be blank")
	assert.Contains(t, appErr.Message, " -> Gender should be M for Male or F for Female")
	assert.Contains(t, appErr.Message, " -> Invalid email")
}

func TestNotBlankRejectsWhitespace(t *testing.T) {
	v := validation.New()

	err := validation.Check(v, &domain.Skill{Description: " \t "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Description should not be blank")
}

func TestPastDateRejectsTodayAndFuture(t *testing.T) {
	v := validation.New()

	err := validation.Check(v, &domain.Candidate{
		FirstName:    "Jane",
		LastName:     "Doe",
		Gender:       "F",
		Email:        "jane@example.com",
		AddressLine1: "1 High Street",
		Country:      "UK",
		DateOfBirth:  "2999-01-01",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Date of birth should be a date in the past")
}

func TestPastDateRejectsUnparseableValue(t *testing.T) {
	v := validation.New()

	err := validation.Check(v, &domain.WorkExperience{
		Organisation: "Acme",
		Country:      "UK",
		Position:     "Engineer",
		StartDate:    "15/06/2010",
		EndDate:      "2012-01-01",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Start date should be a date in the past")
}

func TestOptionalDateOfBirthMayBeBlank(t *testing.T) {
	v := validation.New()

	err := validation.Check(v, &domain.Candidate{
		FirstName:    "Jane",
		LastName:     "Doe",
		Gender:       "F",
		Email:        "jane@example.com",
		AddressLine1: "1 High Street",
		Country:      "UK",
	})
	assert.NoError(t, err)
}

func TestParseDate(t *testing.T) {
	d, ok := validation.ParseDate("2010-06-15")
	require.True(t, ok)
	assert.Equal(t, "2010-06-15", d.Format(validation.DateLayout))

	_, ok = validation.ParseDate("")
	assert.False(t, ok)
}
