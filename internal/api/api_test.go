package api

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skywardcloud/projectmgt/internal/domain"
	"github.com/skywardcloud/projectmgt/internal/repository/sqlite"
	"github.com/skywardcloud/projectmgt/internal/services"
)

var testToday = time.Date(2023, time.December, 31, 12, 0, 0, 0, time.UTC)

func setupTestAPI(t *testing.T) API {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return New(repo)
}

func TestAPI_EnsureSchema_Idempotent(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	// repeated calls are no-ops against an up-to-date schema
	require.NoError(t, a.EnsureSchema(ctx))
	require.NoError(t, a.EnsureSchema(ctx))
}

func TestAPI_LogAndReport(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	id, err := a.LogEntry(ctx, services.LogRequest{
		Employee: "Alice",
		Project:  "Apollo",
		Hours:    decimal.NewFromFloat(7.5),
		Date:     "2023-12-01",
		Today:    testToday,
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	report, err := a.Report(ctx, services.ReportSpec{GroupBy: []services.Dimension{services.DimensionEmployee}})
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, []string{"Alice"}, report.Rows[0].Keys)
	assert.Equal(t, "7.5", report.Rows[0].TotalHours.String())
}

func TestAPI_ResolveOrCreateAndLists(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	res, err := a.ResolveOrCreate(ctx, services.KindEmployee, "Alice")
	require.NoError(t, err)
	assert.True(t, res.Created)

	_, err = a.ResolveOrCreate(ctx, services.KindProject, "Apollo")
	require.NoError(t, err)

	employees, err := a.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Alice", employees[0].Name)

	projects, err := a.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Apollo", projects[0].Name)
}

func TestAPI_UpdateAndDeleteEntry(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	id, err := a.LogEntry(ctx, services.LogRequest{
		Employee: "Alice",
		Project:  "Apollo",
		Hours:    decimal.NewFromInt(4),
		Date:     "2023-12-01",
		Today:    testToday,
	})
	require.NoError(t, err)

	hours := decimal.NewFromInt(6)
	updated, err := a.UpdateEntry(ctx, services.ByID(id), services.EntryChanges{Hours: &hours, Today: testToday})
	require.NoError(t, err)
	assert.Equal(t, id, updated)

	deleted, err := a.DeleteEntry(ctx, services.ByKey("Alice", "Apollo", "2023-12-01"))
	require.NoError(t, err)
	assert.Equal(t, id, deleted)

	report, err := a.Report(ctx, services.ReportSpec{})
	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestAPI_Analytics(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	for _, date := range []string{"2023-12-01", "2023-12-02", "2023-12-03"} {
		_, err := a.LogEntry(ctx, services.LogRequest{
			Employee: "Alice",
			Project:  "Apollo",
			Hours:    decimal.NewFromFloat(9.5),
			Date:     date,
			Today:    testToday,
		})
		require.NoError(t, err)
	}
	_, err := a.LogEntry(ctx, services.LogRequest{
		Employee: "Bob",
		Project:  "Borealis",
		Hours:    decimal.NewFromInt(2),
		Date:     "2023-12-01",
		Today:    testToday,
	})
	require.NoError(t, err)

	top, err := a.TopEmployees(ctx, services.TopSpec{})
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Alice", top[0].Employee)

	flagged, err := a.Overworked(ctx, services.OverworkSpec{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, flagged)

	distribution, err := a.EmployeeDistribution(ctx, "Alice", services.DateRange{})
	require.NoError(t, err)
	require.Len(t, distribution, 1)
	assert.Equal(t, "Apollo", distribution[0].Project)
}

func TestAPI_ProjectManagement(t *testing.T) {
	a := setupTestAPI(t)
	ctx := context.Background()

	record, err := a.CreateProjectRecord(ctx, domain.ProjectRecord{Code: "PRJ-001", Name: "Apollo"})
	require.NoError(t, err)

	records, err := a.ListProjectRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	created, err := a.AssignUser(ctx, record.ID, 7)
	require.NoError(t, err)
	assert.True(t, created)

	assignments, err := a.ListAssignments(ctx, record.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
}
