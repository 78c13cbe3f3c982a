package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-cvs-backend/pkg/apperror"
)

// FieldLabels maps struct field names to the labels used in violation messages.
var FieldLabels = map[string]string{
	"Username":      "User name",
	"FullName":      "Full name",
	"FirstName":     "First name",
	"LastName":      "Last name",
	"AddressLine1":  "Address line 1",
	"DateOfBirth":   "Date of birth",
	"JobTitle":      "Job title",
	"ContactNumber": "Contact number",
	"DateObtained":  "Date obtained",
	"StartDate":     "Start date",
	"EndDate":       "End date",
}

// Check runs all declared field constraints against a green record and
// aggregates every violation into a single not-acceptable error, each message
// prefixed with an arrow marker in evaluation order.
func Check(v *validator.Validate, entity interface{}) error {
	err := v.Struct(entity)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NotAcceptable("Validation error: " + err.Error())
	}

	var sb strings.Builder
	sb.WriteString("Validation error:")
	for _, violation := range violations {
		sb.WriteString(" -> ")
		sb.WriteString(message(violation))
	}
	return apperror.NotAcceptable(sb.String())
}

// message formats a single violation the way the bean constraints word them.
func message(e validator.FieldError) string {
	label := fieldLabel(e.Field())

	switch e.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("%s should not be blank", label)
	case "email":
		return "Invalid email"
	case "oneof":
		if e.Field() == "Gender" {
			return "Gender should be M for Male or F for Female"
		}
		return fmt.Sprintf("%s should be one of: %s", label, e.Param())
	case "pastdate":
		return fmt.Sprintf("%s should be a date in the past", label)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func fieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
