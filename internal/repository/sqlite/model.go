package sqlite

import "time"

// Employee is a registry row resolving an employee name to an identifier
type Employee struct {
	ID   int64
	Name string
}

// Project is a registry row resolving a project name to an identifier
type Project struct {
	ID   int64
	Name string
}

// TimesheetEntry represents a single logged block of hours
type TimesheetEntry struct {
	ID         int64
	EmployeeID int64
	ProjectID  int64
	EntryDate  time.Time
	Hours      float64
	Remarks    *string // Using pointer to allow NULL values
}

// EntryRecord is a timesheet entry joined with its employee and project names
type EntryRecord struct {
	ID           int64
	EmployeeID   int64
	ProjectID    int64
	EmployeeName string
	ProjectName  string
	EntryDate    time.Time
	Hours        float64
	Remarks      *string
}

// ProjectRecord is the management-facing project variant stored in project_master
type ProjectRecord struct {
	ID             int64
	Code           string
	Name           string
	Client         string
	ManagerID      *int64
	StartDate      *time.Time
	EndDate        *time.Time
	EstimatedHours float64
	ActualHours    float64
	Status         string
	BillingType    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProjectAssignment records which users may log against a managed project
type ProjectAssignment struct {
	ProjectID int64
	UserID    int64
}
