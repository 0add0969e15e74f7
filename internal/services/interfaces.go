package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skywardcloud/projectmgt/internal/domain"
)

// Kind selects which registry a name resolves against
type Kind string

const (
	KindEmployee Kind = "employee"
	KindProject  Kind = "project"
)

// Resolution is the result of a registry lookup-or-insert. Created lets
// callers report "added" vs "already exists" without relying on a
// uniqueness-violation error path.
type Resolution struct {
	ID      int64 `json:"id"`
	Created bool  `json:"created"`
}

// DateRange is an inclusive calendar range; a nil bound is unbounded on
// that side.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// LogRequest is a candidate time entry. Today is the caller's reference
// date for the future-date rule.
type LogRequest struct {
	Employee string
	Project  string
	Hours    decimal.Decimal
	Date     string
	Remarks  *string
	Today    time.Time
}

// Selector identifies an existing entry either directly by ID or by the
// (employee, project, date) triple. Exactly one form must be populated.
type Selector struct {
	EntryID  *int64
	Employee string
	Project  string
	Date     string
}

// ByID builds a selector from a direct entry identifier
func ByID(id int64) Selector {
	return Selector{EntryID: &id}
}

// ByKey builds a selector from the (employee, project, date) triple
func ByKey(employee, project, date string) Selector {
	return Selector{Employee: employee, Project: project, Date: date}
}

// EntryChanges carries the fields an update replaces. A nil field is left
// untouched; both nil is rejected as no change requested.
type EntryChanges struct {
	Hours *decimal.Decimal
	Date  *string
	Today time.Time
}

// Dimension is a grouping axis for aggregation
type Dimension string

const (
	DimensionProject  Dimension = "project"
	DimensionEmployee Dimension = "employee"
	DimensionPeriod   Dimension = "period"
)

// Granularity selects how the period dimension buckets entry dates
type Granularity string

const (
	GranularityNone    Granularity = "none"
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ReportSpec is the internal query specification a report is built from:
// filters, grouping dimensions in declaration order, and period bucketing.
// One generic aggregation routine interprets it, so the grouping and
// ordering contract is enforced in a single place.
type ReportSpec struct {
	Project  *string
	Employee *string
	Range    DateRange
	GroupBy  []Dimension
	Period   Granularity
}

// GroupRow is one aggregation bucket: its key values in dimension
// declaration order and the summed hours.
type GroupRow struct {
	Keys       []string        `json:"keys"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// ReportEntry is one row of the flat audit view, paired with the running
// grand total over the rows returned so far.
type ReportEntry struct {
	Entry        domain.Entry    `json:"entry"`
	RunningTotal decimal.Decimal `json:"running_total"`
}

// Report is the outcome of a report query. An empty report (no rows and no
// entries) means nothing was logged for the filter; it is distinct from a
// zero-total bucket, which cannot occur since hours are always positive.
type Report struct {
	Grouped    bool            `json:"grouped"`
	Rows       []GroupRow      `json:"rows,omitempty"`
	Entries    []ReportEntry   `json:"entries,omitempty"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// Empty reports whether the query matched no entries at all
func (r *Report) Empty() bool {
	return len(r.Rows) == 0 && len(r.Entries) == 0
}

// EmployeeHours pairs an employee name with summed hours
type EmployeeHours struct {
	Employee   string          `json:"employee"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// ProjectHours pairs a project name with summed hours
type ProjectHours struct {
	Project    string          `json:"project"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// Ranking defaults
const (
	DefaultTopLimit     = 10
	DefaultOverworkDays = 3
)

// DefaultOverworkThreshold is the daily-hours level above which a day
// counts as overworked
var DefaultOverworkThreshold = decimal.NewFromInt(9)

// TopSpec parameterizes the top-N employee ranking
type TopSpec struct {
	Project *string
	Range   DateRange
	Limit   int
}

// OverworkSpec parameterizes overworked-pattern detection: employees with
// at least Days distinct days whose daily sum exceeds Threshold.
type OverworkSpec struct {
	Range     DateRange
	Threshold decimal.Decimal
	Days      int
}

// RegistryService resolves employee and project names to stable identifiers
type RegistryService interface {
	ResolveOrCreate(ctx context.Context, kind Kind, name string) (Resolution, error)
}

// TimesheetService validates and records time entries
type TimesheetService interface {
	LogEntry(ctx context.Context, req LogRequest) (int64, error)
	UpdateEntry(ctx context.Context, sel Selector, changes EntryChanges) (int64, error)
	DeleteEntry(ctx context.Context, sel Selector) (int64, error)
}

// ReportingService computes grouped and flat views over logged entries
type ReportingService interface {
	Report(ctx context.Context, spec ReportSpec) (*Report, error)
}

// RankingService computes top-N rankings and overwork anomalies
type RankingService interface {
	TopEmployees(ctx context.Context, spec TopSpec) ([]EmployeeHours, error)
	Overworked(ctx context.Context, spec OverworkSpec) ([]string, error)
	EmployeeDistribution(ctx context.Context, employee string, dateRange DateRange) ([]ProjectHours, error)
}

// ProjectService manages the management-facing project records and
// project-to-user assignments
type ProjectService interface {
	CreateProjectRecord(ctx context.Context, record domain.ProjectRecord) (*domain.ProjectRecord, error)
	ListProjectRecords(ctx context.Context) ([]domain.ProjectRecord, error)
	AssignUser(ctx context.Context, projectID, userID int64) (bool, error)
	ListAssignments(ctx context.Context, projectID int64) ([]domain.ProjectAssignment, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Registry  RegistryService
	Timesheet TimesheetService
	Reporting ReportingService
	Ranking   RankingService
	Projects  ProjectService
}
