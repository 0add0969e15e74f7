package domain

import "time"

// ProjectRecord is the management-facing project variant: a richer row than
// the bare Project registry entry. The aggregation engine is indifferent to
// which variant supplied a project name.
type ProjectRecord struct {
	ID             int64      `json:"id"`
	Code           string     `json:"code"`
	Name           string     `json:"name"`
	Client         string     `json:"client"`
	ManagerID      *int64     `json:"manager_id,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	EstimatedHours float64    `json:"estimated_hours"`
	ActualHours    float64    `json:"actual_hours"`
	Status         string     `json:"status"`
	BillingType    string     `json:"billing_type"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ProjectAssignment links a user to a managed project they may log against
type ProjectAssignment struct {
	ProjectID int64 `json:"project_id"`
	UserID    int64 `json:"user_id"`
}
