package web

import (
	"github.com/shopspring/decimal"

	"github.com/skywardcloud/projectmgt/internal/services"
)

// NameRequest registers an employee or project name
type NameRequest struct {
	Name string `json:"name"`
}

// LogEntryRequest is the request body for logging a time entry
type LogEntryRequest struct {
	Employee string          `json:"employee"`
	Project  string          `json:"project"`
	Hours    decimal.Decimal `json:"hours"`
	Date     string          `json:"date"`
	Remarks  *string         `json:"remarks,omitempty"`
}

// UpdateEntryRequest carries replacement values for an existing entry.
// Omitted fields are left untouched.
type UpdateEntryRequest struct {
	Hours *decimal.Decimal `json:"hours,omitempty"`
	Date  *string          `json:"date,omitempty"`
}

// EntryResponse acknowledges a mutation with the entry identifier
type EntryResponse struct {
	ID int64 `json:"id"`
}

// ResolutionResponse reports a registry resolution
type ResolutionResponse struct {
	ID      int64 `json:"id"`
	Created bool  `json:"created"`
}

// ReportResponse wraps a report with the message shown for an empty result
type ReportResponse struct {
	Report  *services.Report `json:"report"`
	Message string           `json:"message,omitempty"`
}

// OverworkedResponse lists the flagged employee names
type OverworkedResponse struct {
	Employees []string `json:"employees"`
}

// AssignUserRequest assigns a user to a managed project
type AssignUserRequest struct {
	UserID int64 `json:"user_id"`
}

// AssignUserResponse reports whether the assignment was newly created
type AssignUserResponse struct {
	Created bool `json:"created"`
}

// ErrorResponse is the JSON shape every error is returned as
type ErrorResponse struct {
	Error   string `json:"error"`
	Reason  string `json:"reason,omitempty"`
	Details string `json:"details,omitempty"`
}
