package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/skywardcloud/projectmgt/internal/errors"
	"github.com/skywardcloud/projectmgt/internal/validation"
)

func TestTimesheetService_LogEntry(t *testing.T) {
	repo, svcs := setupServices(t)
	ctx := context.Background()

	id := logHours(t, svcs.Timesheet, "Alice", "Apollo", "7.5", "2023-12-01")
	assert.Greater(t, id, int64(0))

	entry, err := repo.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 7.5, entry.Hours)
	assert.Equal(t, "2023-12-01", entry.EntryDate.Format("2006-01-02"))

	// both names were registered on the way in
	employee, err := repo.FindEmployeeByName(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, employee.ID, entry.EmployeeID)
	project, err := repo.FindProjectByName(ctx, "Apollo")
	require.NoError(t, err)
	assert.Equal(t, project.ID, entry.ProjectID)
}

func TestTimesheetService_LogEntry_ReusesRegisteredNames(t *testing.T) {
	repo, svcs := setupServices(t)
	ctx := context.Background()

	logHours(t, svcs.Timesheet, "Alice", "Apollo", "2", "2023-12-01")
	logHours(t, svcs.Timesheet, "Alice", "Apollo", "1.5", "2023-12-02")

	employees, err := repo.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 1)

	projects, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestTimesheetService_LogEntry_ValidationRejections(t *testing.T) {
	_, svcs := setupServices(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		hours  string
		date   string
		reason validation.Reason
	}{
		{"zero hours", "0", "2023-12-01", validation.ReasonOutOfRangeHours},
		{"negative hours", "-1", "2023-12-01", validation.ReasonOutOfRangeHours},
		{"over a day", "24.5", "2023-12-01", validation.ReasonOutOfRangeHours},
		{"quarter hour", "2.25", "2023-12-01", validation.ReasonInvalidGranularity},
		{"malformed date", "2", "01/12/2023", validation.ReasonMalformedDate},
		{"impossible date", "2", "2023-02-30", validation.ReasonMalformedDate},
		{"future date", "2", "2024-01-01", validation.ReasonFutureDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, err := decimal.NewFromString(tt.hours)
			require.NoError(t, err)

			_, err = svcs.Timesheet.LogEntry(ctx, LogRequest{
				Employee: "Alice",
				Project:  "Apollo",
				Hours:    hours,
				Date:     tt.date,
				Today:    testToday,
			})
			require.Error(t, err)
			assert.True(t, validation.IsReason(err, tt.reason))
		})
	}
}

func TestTimesheetService_LogEntry_RejectionLeavesStorageUntouched(t *testing.T) {
	repo, svcs := setupServices(t)
	ctx := context.Background()

	_, err := svcs.Timesheet.LogEntry(ctx, LogRequest{
		Employee: "Alice",
		Project:  "Apollo",
		Hours:    decimal.NewFromInt(25),
		Date:     "2023-12-01",
		Today:    testToday,
	})
	require.Error(t, err)

	// a rejected entry must not register names either
	_, err = repo.FindEmployeeByName(ctx, "Alice")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestTimesheetService_UpdateEntry_ByID(t *testing.T) {
	repo, svcs := setupServices(t)
	ctx := context.Background()

	id := logHours(t, svcs.Timesheet, "Alice", "Apollo", "4", "2023-12-01")

	hours := decimal.NewFromFloat(6.5)
	date := "2023-12-02"
	updated, err := svcs.Timesheet.UpdateEntry(ctx, ByID(id), EntryChanges{
		Hours: &hours,
		Date:  &date,
		Today: testToday,
	})
	require.NoError(t, err)
	assert.Equal(t, id, updated)

	entry, err := repo.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 6.5, entry.Hours)
	assert.Equal(t, "2023-12-02", entry.EntryDate.Format("2006-01-02"))
}

func TestTimesheetService_UpdateEntry_ByKey(t *testing.T) {
	repo, svcs := setupServices(t)
	ctx := context.Background()

	id := logHours(t, svcs.Timesheet, "Alice", "Apollo", "4", "2023-12-01")
	logHours(t, svcs.Timesheet, "Alice", "Apollo", "3", "2023-12-02")

	hours := decimal.NewFromInt(8)
	updated, err := svcs.Timesheet.UpdateEntry(ctx, ByKey("Alice", "Apollo", "2023-12-01"), EntryChanges{
		Hours: &hours,
		Today: testToday,
	})
	require.NoError(t, err)
	assert.Equal(t, id, updated)

	entry, err := repo.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 8.0, entry.Hours)
	// the date field was left alone
	assert.Equal(t, "2023-12-01", entry.EntryDate.Format("2006-01-02"))
}

func TestTimesheetService_UpdateEntry_NoChangeRequested(t *testing.T) {
	_, svcs := setupServices(t)

	id := logHours(t, svcs.Timesheet, "Alice", "Apollo", "4", "2023-12-01")

	_, err := svcs.Timesheet.UpdateEntry(context.Background(), ByID(id), EntryChanges{Today: testToday})
	require.Error(t, err)
	assert.True(t, validation.IsReason(err, validation.ReasonNoChangeRequested))
}

func TestTimesheetService_UpdateEntry_InvalidReplacement(t *testing.T) {
	repo, svcs := setupServices(t)
	ctx := context.Background()

	id := logHours(t, svcs.Timesheet, "Alice", "Apollo", "4", "2023-12-01")

	hours := decimal.NewFromInt(30)
	_, err := svcs.Timesheet.UpdateEntry(ctx, ByID(id), EntryChanges{Hours: &hours, Today: testToday})
	require.Error(t, err)
	assert.True(t, validation.IsReason(err, validation.ReasonOutOfRangeHours))

	entry, err := repo.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 4.0, entry.Hours)
}

func TestTimesheetService_UpdateEntry_MissingSelector(t *testing.T) {
	_, svcs := setupServices(t)

	hours := decimal.NewFromInt(8)
	_, err := svcs.Timesheet.UpdateEntry(context.Background(),
		Selector{Employee: "Alice", Project: "Apollo"},
		EntryChanges{Hours: &hours, Today: testToday})
	require.Error(t, err)
	assert.True(t, validation.IsReason(err, validation.ReasonMissingSelector))
}

func TestTimesheetService_UpdateEntry_NotFound(t *testing.T) {
	_, svcs := setupServices(t)

	hours := decimal.NewFromInt(8)
	_, err := svcs.Timesheet.UpdateEntry(context.Background(), ByID(9999),
		EntryChanges{Hours: &hours, Today: testToday})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestTimesheetService_DeleteEntry(t *testing.T) {
	repo, svcs := setupServices(t)
	ctx := context.Background()

	id := logHours(t, svcs.Timesheet, "Alice", "Apollo", "4", "2023-12-01")

	deleted, err := svcs.Timesheet.DeleteEntry(ctx, ByID(id))
	require.NoError(t, err)
	assert.Equal(t, id, deleted)

	_, err = repo.GetEntry(ctx, id)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestTimesheetService_DeleteEntry_ByKey(t *testing.T) {
	repo, svcs := setupServices(t)
	ctx := context.Background()

	id := logHours(t, svcs.Timesheet, "Alice", "Apollo", "4", "2023-12-01")
	kept := logHours(t, svcs.Timesheet, "Alice", "Apollo", "3", "2023-12-02")

	deleted, err := svcs.Timesheet.DeleteEntry(ctx, ByKey("Alice", "Apollo", "2023-12-01"))
	require.NoError(t, err)
	assert.Equal(t, id, deleted)

	_, err = repo.GetEntry(ctx, kept)
	assert.NoError(t, err)
}

func TestTimesheetService_DeleteEntry_MalformedSelectorDate(t *testing.T) {
	_, svcs := setupServices(t)

	_, err := svcs.Timesheet.DeleteEntry(context.Background(), ByKey("Alice", "Apollo", "not-a-date"))
	require.Error(t, err)
	assert.True(t, validation.IsReason(err, validation.ReasonMalformedDate))
}

func TestTimesheetService_DeleteEntry_NotFound(t *testing.T) {
	_, svcs := setupServices(t)

	_, err := svcs.Timesheet.DeleteEntry(context.Background(), ByID(424242))
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}
