package validation

import (
	"errors"
	"fmt"
)

// Reason identifies which business rule an input violated. The first failing
// rule determines the reason reported.
type Reason string

const (
	ReasonOutOfRangeHours    Reason = "out_of_range_hours"
	ReasonInvalidGranularity Reason = "invalid_granularity"
	ReasonMalformedDate      Reason = "malformed_date"
	ReasonFutureDate         Reason = "future_date"
	ReasonMissingSelector    Reason = "missing_selector"
	ReasonNoChangeRequested  Reason = "no_change_requested"
	ReasonEmptyName          Reason = "empty_name"
)

// EntryError is a validation failure with a machine-readable reason.
// It is always recoverable and reported to the immediate caller.
type EntryError struct {
	Reason  Reason
	Field   string
	Message string
	Value   interface{}
}

// Error implements the error interface
func (e *EntryError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// Is matches entry errors by reason so callers can use errors.Is with a
// bare reason sentinel.
func (e *EntryError) Is(target error) bool {
	if other, ok := target.(*EntryError); ok {
		return e.Reason == other.Reason
	}
	return false
}

// NewEntryError creates a new validation failure
func NewEntryError(reason Reason, field, message string, value interface{}) *EntryError {
	return &EntryError{
		Reason:  reason,
		Field:   field,
		Message: message,
		Value:   value,
	}
}

// IsReason checks if an error is an EntryError with the given reason
func IsReason(err error, reason Reason) bool {
	var entryErr *EntryError
	if errors.As(err, &entryErr) {
		return entryErr.Reason == reason
	}
	return false
}

// IsEntryError checks if an error is any validation failure
func IsEntryError(err error) bool {
	var entryErr *EntryError
	return errors.As(err, &entryErr)
}

// ReasonOf extracts the reason from a validation failure, or "" for other errors
func ReasonOf(err error) Reason {
	var entryErr *EntryError
	if errors.As(err, &entryErr) {
		return entryErr.Reason
	}
	return ""
}
