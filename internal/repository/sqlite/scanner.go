package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanEmployee scans a single employee from a database row
func ScanEmployee(scanner Scanner) (*Employee, error) {
	employee := &Employee{}
	if err := scanner.Scan(&employee.ID, &employee.Name); err != nil {
		return nil, err
	}
	return employee, nil
}

// ScanEmployees scans multiple employees from database rows
func ScanEmployees(rows Rows) ([]*Employee, error) {
	var employees []*Employee
	for rows.Next() {
		employee, err := ScanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	if err := scanner.Scan(&project.ID, &project.Name); err != nil {
		return nil, err
	}
	return project, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]*Project, error) {
	var projects []*Project
	for rows.Next() {
		project, err := ScanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// ScanTimesheetEntry scans a single timesheet entry from a database row
func ScanTimesheetEntry(scanner Scanner) (*TimesheetEntry, error) {
	entry := &TimesheetEntry{}
	var entryDate string
	var remarks sql.NullString

	err := scanner.Scan(
		&entry.ID,
		&entry.EmployeeID,
		&entry.ProjectID,
		&entryDate,
		&entry.Hours,
		&remarks,
	)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseDateFromDB(entryDate)
	if err != nil {
		return nil, err
	}
	entry.EntryDate = parsed

	if remarks.Valid {
		entry.Remarks = &remarks.String
	}

	return entry, nil
}

// ScanEntryRecord scans a timesheet entry joined with employee and project names
func ScanEntryRecord(scanner Scanner) (*EntryRecord, error) {
	record := &EntryRecord{}
	var entryDate string
	var remarks sql.NullString

	err := scanner.Scan(
		&record.ID,
		&record.EmployeeID,
		&record.ProjectID,
		&record.EmployeeName,
		&record.ProjectName,
		&entryDate,
		&record.Hours,
		&remarks,
	)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseDateFromDB(entryDate)
	if err != nil {
		return nil, err
	}
	record.EntryDate = parsed

	if remarks.Valid {
		record.Remarks = &remarks.String
	}

	return record, nil
}

// ScanEntryRecords scans multiple joined entry records from database rows
func ScanEntryRecords(rows Rows) ([]*EntryRecord, error) {
	var records []*EntryRecord
	for rows.Next() {
		record, err := ScanEntryRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ScanProjectRecord scans a single project_master row
func ScanProjectRecord(scanner Scanner) (*ProjectRecord, error) {
	record := &ProjectRecord{}
	var managerID sql.NullInt64
	var startDate, endDate sql.NullString
	var createdAt, updatedAt string

	err := scanner.Scan(
		&record.ID,
		&record.Code,
		&record.Name,
		&record.Client,
		&managerID,
		&startDate,
		&endDate,
		&record.EstimatedHours,
		&record.ActualHours,
		&record.Status,
		&record.BillingType,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if managerID.Valid {
		record.ManagerID = &managerID.Int64
	}
	if startDate.Valid {
		parsed, err := ParseDateFromDB(startDate.String)
		if err != nil {
			return nil, err
		}
		record.StartDate = &parsed
	}
	if endDate.Valid {
		parsed, err := ParseDateFromDB(endDate.String)
		if err != nil {
			return nil, err
		}
		record.EndDate = &parsed
	}

	created, err := ParseTimestampFromDB(createdAt)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = created

	updated, err := ParseTimestampFromDB(updatedAt)
	if err != nil {
		return nil, err
	}
	record.UpdatedAt = updated

	return record, nil
}

// ScanProjectRecords scans multiple project_master rows
func ScanProjectRecords(rows Rows) ([]*ProjectRecord, error) {
	var records []*ProjectRecord
	for rows.Next() {
		record, err := ScanProjectRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ScanProjectAssignment scans a single project assignment row
func ScanProjectAssignment(scanner Scanner) (*ProjectAssignment, error) {
	assignment := &ProjectAssignment{}
	if err := scanner.Scan(&assignment.ProjectID, &assignment.UserID); err != nil {
		return nil, err
	}
	return assignment, nil
}

// ScanProjectAssignments scans multiple project assignment rows
func ScanProjectAssignments(rows Rows) ([]*ProjectAssignment, error) {
	var assignments []*ProjectAssignment
	for rows.Next() {
		assignment, err := ScanProjectAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
