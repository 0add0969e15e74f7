package api

import (
	"context"

	"github.com/skywardcloud/projectmgt/internal/domain"
	"github.com/skywardcloud/projectmgt/internal/repository/sqlite"
	"github.com/skywardcloud/projectmgt/internal/services"
)

// API defines the interface for all timesheet operations. It is the single
// surface the CLI and HTTP layers call; everything behind it goes through
// the service layer.
type API interface {
	// Schema management
	EnsureSchema(ctx context.Context) error

	// Registry operations
	ResolveOrCreate(ctx context.Context, kind services.Kind, name string) (services.Resolution, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// Entry operations
	LogEntry(ctx context.Context, req services.LogRequest) (int64, error)
	UpdateEntry(ctx context.Context, sel services.Selector, changes services.EntryChanges) (int64, error)
	DeleteEntry(ctx context.Context, sel services.Selector) (int64, error)

	// Reporting and analytics
	Report(ctx context.Context, spec services.ReportSpec) (*services.Report, error)
	TopEmployees(ctx context.Context, spec services.TopSpec) ([]services.EmployeeHours, error)
	Overworked(ctx context.Context, spec services.OverworkSpec) ([]string, error)
	EmployeeDistribution(ctx context.Context, employee string, dateRange services.DateRange) ([]services.ProjectHours, error)

	// Project management
	CreateProjectRecord(ctx context.Context, record domain.ProjectRecord) (*domain.ProjectRecord, error)
	ListProjectRecords(ctx context.Context) ([]domain.ProjectRecord, error)
	AssignUser(ctx context.Context, projectID, userID int64) (bool, error)
	ListAssignments(ctx context.Context, projectID int64) ([]domain.ProjectAssignment, error)
}

type apiImpl struct {
	repo     sqlite.Repository
	services *services.ServiceContainer
	mapper   *domain.Mapper
}

// New creates a new API instance over a repository, wiring the full
// service container.
func New(repo sqlite.Repository) API {
	registry := services.NewRegistryService(repo)
	container := &services.ServiceContainer{
		Registry:  registry,
		Timesheet: services.NewTimesheetService(repo, registry),
		Reporting: services.NewReportingService(repo),
		Ranking:   services.NewRankingService(repo),
		Projects:  services.NewProjectService(repo, registry),
	}
	return NewWithServices(repo, container)
}

// NewWithServices creates an API instance over an existing service
// container
func NewWithServices(repo sqlite.Repository, container *services.ServiceContainer) API {
	return &apiImpl{
		repo:     repo,
		services: container,
		mapper:   domain.NewMapper(),
	}
}

func (a *apiImpl) EnsureSchema(ctx context.Context) error {
	return a.repo.EnsureSchema(ctx)
}

func (a *apiImpl) ResolveOrCreate(ctx context.Context, kind services.Kind, name string) (services.Resolution, error) {
	return a.services.Registry.ResolveOrCreate(ctx, kind, name)
}

func (a *apiImpl) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	dbEmployees, err := a.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	employees := make([]domain.Employee, len(dbEmployees))
	for i, e := range dbEmployees {
		employees[i] = a.mapper.Employee.FromDatabase(*e)
	}
	return employees, nil
}

func (a *apiImpl) ListProjects(ctx context.Context) ([]domain.Project, error) {
	dbProjects, err := a.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, len(dbProjects))
	for i, p := range dbProjects {
		projects[i] = a.mapper.Project.FromDatabase(*p)
	}
	return projects, nil
}

func (a *apiImpl) LogEntry(ctx context.Context, req services.LogRequest) (int64, error) {
	return a.services.Timesheet.LogEntry(ctx, req)
}

func (a *apiImpl) UpdateEntry(ctx context.Context, sel services.Selector, changes services.EntryChanges) (int64, error) {
	return a.services.Timesheet.UpdateEntry(ctx, sel, changes)
}

func (a *apiImpl) DeleteEntry(ctx context.Context, sel services.Selector) (int64, error) {
	return a.services.Timesheet.DeleteEntry(ctx, sel)
}

func (a *apiImpl) Report(ctx context.Context, spec services.ReportSpec) (*services.Report, error) {
	return a.services.Reporting.Report(ctx, spec)
}

func (a *apiImpl) TopEmployees(ctx context.Context, spec services.TopSpec) ([]services.EmployeeHours, error) {
	return a.services.Ranking.TopEmployees(ctx, spec)
}

func (a *apiImpl) Overworked(ctx context.Context, spec services.OverworkSpec) ([]string, error) {
	return a.services.Ranking.Overworked(ctx, spec)
}

func (a *apiImpl) EmployeeDistribution(ctx context.Context, employee string, dateRange services.DateRange) ([]services.ProjectHours, error) {
	return a.services.Ranking.EmployeeDistribution(ctx, employee, dateRange)
}

func (a *apiImpl) CreateProjectRecord(ctx context.Context, record domain.ProjectRecord) (*domain.ProjectRecord, error) {
	return a.services.Projects.CreateProjectRecord(ctx, record)
}

func (a *apiImpl) ListProjectRecords(ctx context.Context) ([]domain.ProjectRecord, error) {
	return a.services.Projects.ListProjectRecords(ctx)
}

func (a *apiImpl) AssignUser(ctx context.Context, projectID, userID int64) (bool, error) {
	return a.services.Projects.AssignUser(ctx, projectID, userID)
}

func (a *apiImpl) ListAssignments(ctx context.Context, projectID int64) ([]domain.ProjectAssignment, error) {
	return a.services.Projects.ListAssignments(ctx, projectID)
}
