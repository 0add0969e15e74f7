package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date form accepted for entry dates
const DateLayout = "2006-01-02"

var (
	maxHours = decimal.NewFromInt(24)
	two      = decimal.NewFromInt(2)
)

// ValidatedEntry is the normalized result of a successful validation:
// the date as a calendar value and the hours as given.
type ValidatedEntry struct {
	Date  time.Time
	Hours decimal.Decimal
}

// EntryValidator enforces the business rules a time entry must satisfy
// before it is accepted. Validation is a pure function of its inputs and
// the caller-supplied reference date, so it never touches storage or the
// wall clock.
type EntryValidator struct{}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{}
}

// Validate applies the entry rules in order; the first failing rule
// determines the reported error:
//  1. hours in (0, 24]
//  2. hours a multiple of 0.5
//  3. date parses as YYYY-MM-DD
//  4. date not after today
func (v *EntryValidator) Validate(hours decimal.Decimal, dateString string, today time.Time) (*ValidatedEntry, error) {
	if err := v.ValidateHours(hours); err != nil {
		return nil, err
	}

	date, err := v.ValidateDate(dateString, today)
	if err != nil {
		return nil, err
	}

	return &ValidatedEntry{Date: date, Hours: hours}, nil
}

// ValidateHours applies rules 1 and 2 in order
func (v *EntryValidator) ValidateHours(hours decimal.Decimal) error {
	if !hours.IsPositive() || hours.GreaterThan(maxHours) {
		return NewEntryError(ReasonOutOfRangeHours, "hours",
			"must be greater than 0 and at most 24", hours.String())
	}
	if !hours.Mul(two).IsInteger() {
		return NewEntryError(ReasonInvalidGranularity, "hours",
			"must be a multiple of 0.5", hours.String())
	}
	return nil
}

// ValidateDate applies rules 3 and 4 in order and returns the parsed date
func (v *EntryValidator) ValidateDate(dateString string, today time.Time) (time.Time, error) {
	date, err := time.Parse(DateLayout, dateString)
	if err != nil {
		return time.Time{}, NewEntryError(ReasonMalformedDate, "date",
			fmt.Sprintf("must be a calendar date in %s form", "YYYY-MM-DD"), dateString)
	}

	if date.After(truncateToDate(today)) {
		return time.Time{}, NewEntryError(ReasonFutureDate, "date",
			"must not be later than today", dateString)
	}

	return date, nil
}

// ValidateName checks that a registry name is usable after trimming
func (v *EntryValidator) ValidateName(field, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", NewEntryError(ReasonEmptyName, field, "must not be empty", name)
	}
	return trimmed, nil
}

// truncateToDate drops the time-of-day component so a date equal to today
// passes the future-date rule regardless of the reference clock's hour
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
