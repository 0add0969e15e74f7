package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/skywardcloud/projectmgt/internal/repository/sqlite"
)

// testToday is the reference date injected everywhere a test logs time
var testToday = time.Date(2023, time.December, 31, 12, 0, 0, 0, time.UTC)

func setupTestRepo(t *testing.T) sqlite.Repository {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func setupServices(t *testing.T) (sqlite.Repository, *ServiceContainer) {
	t.Helper()

	repo := setupTestRepo(t)
	registry := NewRegistryService(repo)

	return repo, &ServiceContainer{
		Registry:  registry,
		Timesheet: NewTimesheetService(repo, registry),
		Reporting: NewReportingService(repo),
		Ranking:   NewRankingService(repo),
		Projects:  NewProjectService(repo, registry),
	}
}

func logHours(t *testing.T, svc TimesheetService, employee, project, hours, date string) int64 {
	t.Helper()

	h, err := decimal.NewFromString(hours)
	require.NoError(t, err)

	id, err := svc.LogEntry(context.Background(), LogRequest{
		Employee: employee,
		Project:  project,
		Hours:    h,
		Date:     date,
		Today:    testToday,
	})
	require.NoError(t, err)
	return id
}

func dateOf(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
