package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted and emitted everywhere
const DateLayout = "2006-01-02"

// Entry is a timesheet entry with its employee and project names resolved.
// Hours are decimal-valued so sums never accumulate float error.
type Entry struct {
	ID           int64           `json:"id"`
	EmployeeID   int64           `json:"employee_id"`
	ProjectID    int64           `json:"project_id"`
	EmployeeName string          `json:"employee_name"`
	ProjectName  string          `json:"project_name"`
	EntryDate    time.Time       `json:"entry_date"`
	Hours        decimal.Decimal `json:"hours"`
	Remarks      *string         `json:"remarks,omitempty"`
}

// DateString returns the entry date in YYYY-MM-DD form
func (e Entry) DateString() string {
	return e.EntryDate.Format(DateLayout)
}

// IsValid checks the invariants every persisted entry satisfies
func (e Entry) IsValid() bool {
	if e.EmployeeName == "" || e.ProjectName == "" {
		return false
	}
	if !e.Hours.IsPositive() || e.Hours.GreaterThan(decimal.NewFromInt(24)) {
		return false
	}
	return e.Hours.Mul(decimal.NewFromInt(2)).IsInteger()
}
