package postgres

import (
	"strings"
	"time"

	"go-cvs-backend/pkg/validation"
)

// prefixColumns qualifies a column list with a table alias for joins.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = alias + "." + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// dateArg converts a wire-format date string to a DATE column argument. The
// validation gate guarantees populated values parse; blanks become NULL.
func dateArg(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, ok := validation.ParseDate(s)
	if !ok {
		return nil
	}
	return &t
}

// dateString converts a nullable DATE column back to the wire format.
func dateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(validation.DateLayout)
}
