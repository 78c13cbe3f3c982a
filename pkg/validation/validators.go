package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// New builds a validator with the custom rules used by the entity services.
func New() *validator.Validate {
	v := validator.New()

	// Registration only fails for blank tag names, safe to ignore here.
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("pastdate", pastDate)

	return v
}

// notBlank rejects empty and whitespace-only strings.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// pastDate accepts a YYYY-MM-DD string strictly before today.
// An unparseable value fails the rule as well.
func pastDate(fl validator.FieldLevel) bool {
	d, err := time.Parse(DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}

// ParseDate parses a wire-format date. Callers run the validation gate first,
// so a parse failure here means the field was optional and left blank.
func ParseDate(s string) (time.Time, bool) {
	d, err := time.Parse(DateLayout, s)
	return d, err == nil
}
