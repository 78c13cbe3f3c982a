package domain

import (
	"errors"
	"time"
)

// Reasons stamped automatically on lifecycle transitions.
const (
	VoidedReason  = "System operation - voided"
	RetiredReason = "System operation - retired"
)

var (
	ErrAlreadyVoided  = errors.New("entry already voided")
	ErrAlreadyRetired = errors.New("entry already retired")
)

// AuditStamp carries the audit columns present on every table. The values are
// set by the repositories from the acting user in the request context.
type AuditStamp struct {
	CreatedDate    time.Time `json:"createdDate"`
	CreatedBy      string    `json:"createdBy"`
	ModifiedDate   time.Time `json:"modifiedDate"`
	LastModifiedBy string    `json:"lastModifiedBy"`
}

// Lifecycle is the envelope shared by all persisted entities: surrogate id,
// audit stamps and the voided/retired soft-delete flags. Both flags are
// one-way; nothing in the system ever resets them to false.
type Lifecycle struct {
	ID int64 `json:"id"`
	AuditStamp
	Voided        bool   `json:"voided"`
	VoidedReason  string `json:"voidedReason,omitempty"`
	Retired       bool   `json:"retired"`
	RetiredReason string `json:"retiredReason,omitempty"`
}

// Meta exposes the envelope from any entity that embeds it.
func (l *Lifecycle) Meta() *Lifecycle { return l }

// IsActive reports whether the entry is neither voided nor retired.
func (l *Lifecycle) IsActive() bool {
	return !l.Voided && !l.Retired
}

// MarkVoided soft-deletes the entry. Voiding is permanent.
func (l *Lifecycle) MarkVoided() error {
	if l.Voided {
		return ErrAlreadyVoided
	}
	l.Voided = true
	l.VoidedReason = VoidedReason
	return nil
}

// MarkRetired disables the entry without deleting it. Retiring is permanent.
func (l *Lifecycle) MarkRetired() error {
	if l.Retired {
		return ErrAlreadyRetired
	}
	l.Retired = true
	l.RetiredReason = RetiredReason
	return nil
}

// Entry is satisfied by every entity embedding Lifecycle.
type Entry interface {
	Meta() *Lifecycle
}
