package domain

import "strings"

// Employee is a named person that logs time. Employees are created on first
// reference and never updated.
type Employee struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// IsValid checks if the employee has a usable name
func (e Employee) IsValid() bool {
	return strings.TrimSpace(e.Name) != ""
}

// Project is a named project that time is logged against. Same lifecycle
// as Employee.
type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// IsValid checks if the project has a usable name
func (p Project) IsValid() bool {
	return strings.TrimSpace(p.Name) != ""
}
