package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/skywardcloud/projectmgt/internal/errors"

	_ "modernc.org/sqlite"
)

// SearchOptions contains all possible entry search parameters. Name filters
// are exact matches; date bounds are inclusive and may be open on either side.
type SearchOptions struct {
	EmployeeName *string
	ProjectName  *string
	StartDate    *time.Time
	EndDate      *time.Time
}

// Repository defines the interface for database operations
type Repository interface {
	// Schema
	EnsureSchema(ctx context.Context) error

	// Registry operations
	FindEmployeeByName(ctx context.Context, name string) (*Employee, error)
	CreateEmployee(ctx context.Context, employee *Employee) error
	ListEmployees(ctx context.Context) ([]*Employee, error)
	FindProjectByName(ctx context.Context, name string) (*Project, error)
	CreateProject(ctx context.Context, project *Project) error
	ListProjects(ctx context.Context) ([]*Project, error)

	// Timesheet entry operations
	CreateEntry(ctx context.Context, entry *TimesheetEntry) error
	GetEntry(ctx context.Context, id int64) (*TimesheetEntry, error)
	FindEntryByKey(ctx context.Context, employeeName, projectName string, entryDate time.Time) (*TimesheetEntry, error)
	UpdateEntry(ctx context.Context, entry *TimesheetEntry) error
	DeleteEntry(ctx context.Context, id int64) error
	SearchEntries(ctx context.Context, opts SearchOptions) ([]*EntryRecord, error)

	// Managed project operations
	CreateProjectRecord(ctx context.Context, record *ProjectRecord) error
	GetProjectRecordByCode(ctx context.Context, code string) (*ProjectRecord, error)
	ListProjectRecords(ctx context.Context) ([]*ProjectRecord, error)
	CreateAssignment(ctx context.Context, assignment *ProjectAssignment) error
	ListAssignments(ctx context.Context, projectID int64) ([]*ProjectAssignment, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance. The schema is confirmed
// before the repository is returned; a schema failure aborts construction.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// SQLite permits a single writer; one pooled connection also keeps
	// :memory: databases stable across the pool.
	db.SetMaxOpenConns(1)

	if err := ensureSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// FindEmployeeByName looks up an employee by exact name
func (r *SQLiteRepository) FindEmployeeByName(ctx context.Context, name string) (*Employee, error) {
	query := `SELECT id, name FROM employees WHERE name = ?`
	return QuerySingle(ctx, r.db, query, ScanEmployee, "employee", name, name)
}

// CreateEmployee creates a new employee registry row
func (r *SQLiteRepository) CreateEmployee(ctx context.Context, employee *Employee) error {
	query := `INSERT INTO employees (name) VALUES (?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, employee.Name)
	if err != nil {
		return err
	}
	employee.ID = id
	return nil
}

// ListEmployees retrieves all employees ordered by name
func (r *SQLiteRepository) ListEmployees(ctx context.Context) ([]*Employee, error) {
	query := `SELECT id, name FROM employees ORDER BY name ASC`
	return QueryMultiple(ctx, r.db, query, ScanEmployees, "employees")
}

// FindProjectByName looks up a project by exact name
func (r *SQLiteRepository) FindProjectByName(ctx context.Context, name string) (*Project, error) {
	query := `SELECT id, name FROM projects WHERE name = ?`
	return QuerySingle(ctx, r.db, query, ScanProject, "project", name, name)
}

// CreateProject creates a new project registry row
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	query := `INSERT INTO projects (name) VALUES (?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, project.Name)
	if err != nil {
		return err
	}
	project.ID = id
	return nil
}

// ListProjects retrieves all projects ordered by name
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `SELECT id, name FROM projects ORDER BY name ASC`
	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects")
}

// CreateEntry creates a new timesheet entry
func (r *SQLiteRepository) CreateEntry(ctx context.Context, entry *TimesheetEntry) error {
	query := `
	INSERT INTO timesheets (employee_id, project_id, entry_date, hours, remarks)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		entry.EmployeeID, entry.ProjectID, FormatDateForDB(entry.EntryDate), entry.Hours, nullableString(entry.Remarks))
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// GetEntry retrieves a timesheet entry by ID
func (r *SQLiteRepository) GetEntry(ctx context.Context, id int64) (*TimesheetEntry, error) {
	query := `
	SELECT id, employee_id, project_id, entry_date, hours, remarks
	FROM timesheets
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTimesheetEntry, "timesheet entry", fmt.Sprintf("%d", id), id)
}

// FindEntryByKey looks up a timesheet entry by the (employee, project, date)
// triple. If several entries share the triple the most recently created wins.
func (r *SQLiteRepository) FindEntryByKey(ctx context.Context, employeeName, projectName string, entryDate time.Time) (*TimesheetEntry, error) {
	query := `
	SELECT t.id, t.employee_id, t.project_id, t.entry_date, t.hours, t.remarks
	FROM timesheets t
	JOIN employees e ON e.id = t.employee_id
	JOIN projects p ON p.id = t.project_id
	WHERE e.name = ? AND p.name = ? AND t.entry_date = ?
	ORDER BY t.id DESC
	LIMIT 1`

	key := fmt.Sprintf("%s/%s/%s", employeeName, projectName, FormatDateForDB(entryDate))
	return QuerySingle(ctx, r.db, query, ScanTimesheetEntry, "timesheet entry", key,
		employeeName, projectName, FormatDateForDB(entryDate))
}

// UpdateEntry updates an existing timesheet entry
func (r *SQLiteRepository) UpdateEntry(ctx context.Context, entry *TimesheetEntry) error {
	query := `
	UPDATE timesheets
	SET employee_id = ?, project_id = ?, entry_date = ?, hours = ?, remarks = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "timesheet entry", fmt.Sprintf("%d", entry.ID),
		entry.EmployeeID, entry.ProjectID, FormatDateForDB(entry.EntryDate), entry.Hours, nullableString(entry.Remarks), entry.ID)
}

// DeleteEntry deletes a timesheet entry by ID
func (r *SQLiteRepository) DeleteEntry(ctx context.Context, id int64) error {
	query := `DELETE FROM timesheets WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "timesheet entry", fmt.Sprintf("%d", id), id)
}

// SearchEntries returns entries joined with their employee and project names,
// filtered by the provided options and ordered by date then employee name
func (r *SQLiteRepository) SearchEntries(ctx context.Context, opts SearchOptions) ([]*EntryRecord, error) {
	var conditions []string
	var args []interface{}

	if opts.EmployeeName != nil {
		conditions = append(conditions, "e.name = ?")
		args = append(args, *opts.EmployeeName)
	}
	if opts.ProjectName != nil {
		conditions = append(conditions, "p.name = ?")
		args = append(args, *opts.ProjectName)
	}
	if opts.StartDate != nil {
		conditions = append(conditions, "t.entry_date >= ?")
		args = append(args, FormatDateForDB(*opts.StartDate))
	}
	if opts.EndDate != nil {
		conditions = append(conditions, "t.entry_date <= ?")
		args = append(args, FormatDateForDB(*opts.EndDate))
	}

	query := `
	SELECT t.id, t.employee_id, t.project_id, e.name, p.name, t.entry_date, t.hours, t.remarks
	FROM timesheets t
	JOIN employees e ON e.id = t.employee_id
	JOIN projects p ON p.id = t.project_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY t.entry_date ASC, e.name ASC, t.id ASC"

	return QueryMultiple(ctx, r.db, query, ScanEntryRecords, "timesheet entries", args...)
}

// CreateProjectRecord creates a new project_master row
func (r *SQLiteRepository) CreateProjectRecord(ctx context.Context, record *ProjectRecord) error {
	query := `
	INSERT INTO project_master
		(code, name, client, manager_id, start_date, end_date, estimated_hours, actual_hours, status, billing_type, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		record.Code,
		record.Name,
		record.Client,
		nullableInt64(record.ManagerID),
		FormatDatePtrForDB(record.StartDate),
		FormatDatePtrForDB(record.EndDate),
		record.EstimatedHours,
		record.ActualHours,
		record.Status,
		record.BillingType,
		FormatTimestampForDB(record.CreatedAt),
		FormatTimestampForDB(record.UpdatedAt),
	)
	if err != nil {
		return err
	}

	record.ID = id
	return nil
}

// GetProjectRecordByCode retrieves a project_master row by its unique code
func (r *SQLiteRepository) GetProjectRecordByCode(ctx context.Context, code string) (*ProjectRecord, error) {
	query := `
	SELECT id, code, name, client, manager_id, start_date, end_date,
		estimated_hours, actual_hours, status, billing_type, created_at, updated_at
	FROM project_master
	WHERE code = ?`

	return QuerySingle(ctx, r.db, query, ScanProjectRecord, "project record", code, code)
}

// ListProjectRecords retrieves all project_master rows ordered by code
func (r *SQLiteRepository) ListProjectRecords(ctx context.Context) ([]*ProjectRecord, error) {
	query := `
	SELECT id, code, name, client, manager_id, start_date, end_date,
		estimated_hours, actual_hours, status, billing_type, created_at, updated_at
	FROM project_master
	ORDER BY code ASC`

	return QueryMultiple(ctx, r.db, query, ScanProjectRecords, "project records")
}

// CreateAssignment records that a user may log against a managed project.
// The composite primary key surfaces duplicates as a database error; callers
// decide whether a duplicate is benign.
func (r *SQLiteRepository) CreateAssignment(ctx context.Context, assignment *ProjectAssignment) error {
	query := `INSERT INTO project_assignments (project_id, user_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, assignment.ProjectID, assignment.UserID); err != nil {
		return HandleDatabaseError("create assignment", err)
	}
	return nil
}

// ListAssignments retrieves the assignments for a managed project
func (r *SQLiteRepository) ListAssignments(ctx context.Context, projectID int64) ([]*ProjectAssignment, error) {
	query := `SELECT project_id, user_id FROM project_assignments WHERE project_id = ? ORDER BY user_id ASC`
	return QueryMultiple(ctx, r.db, query, ScanProjectAssignments, "project assignments", projectID)
}

func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullableInt64(i *int64) interface{} {
	if i == nil {
		return nil
	}
	return *i
}
