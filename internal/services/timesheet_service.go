package services

import (
	"context"
	"time"

	"github.com/skywardcloud/projectmgt/internal/repository/sqlite"
	"github.com/skywardcloud/projectmgt/internal/validation"
)

// timesheetServiceImpl implements the TimesheetService interface
type timesheetServiceImpl struct {
	repo      sqlite.Repository
	registry  RegistryService
	validator *validation.EntryValidator
}

// NewTimesheetService creates a new TimesheetService instance
func NewTimesheetService(repo sqlite.Repository, registry RegistryService) TimesheetService {
	return &timesheetServiceImpl{
		repo:      repo,
		registry:  registry,
		validator: validation.NewEntryValidator(),
	}
}

// LogEntry validates a candidate entry, resolves its names to identifiers
// and persists it. Validation failures carry a reason and never touch
// storage; storage failures surface as database errors.
func (s *timesheetServiceImpl) LogEntry(ctx context.Context, req LogRequest) (int64, error) {
	validated, err := s.validator.Validate(req.Hours, req.Date, req.Today)
	if err != nil {
		return 0, err
	}

	employee, err := s.registry.ResolveOrCreate(ctx, KindEmployee, req.Employee)
	if err != nil {
		return 0, err
	}
	project, err := s.registry.ResolveOrCreate(ctx, KindProject, req.Project)
	if err != nil {
		return 0, err
	}

	hours, _ := validated.Hours.Float64()
	entry := &sqlite.TimesheetEntry{
		EmployeeID: employee.ID,
		ProjectID:  project.ID,
		EntryDate:  validated.Date,
		Hours:      hours,
		Remarks:    req.Remarks,
	}
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return 0, err
	}

	return entry.ID, nil
}

// UpdateEntry replaces the hours and/or date of an existing entry. The
// replacement values pass the same rules as a fresh entry; requesting no
// change at all is a validation failure, not a silent no-op.
func (s *timesheetServiceImpl) UpdateEntry(ctx context.Context, sel Selector, changes EntryChanges) (int64, error) {
	if changes.Hours == nil && changes.Date == nil {
		return 0, validation.NewEntryError(validation.ReasonNoChangeRequested, "update",
			"at least one of hours or date must be provided", nil)
	}

	var newDate *time.Time
	if changes.Hours != nil {
		if err := s.validator.ValidateHours(*changes.Hours); err != nil {
			return 0, err
		}
	}
	if changes.Date != nil {
		date, err := s.validator.ValidateDate(*changes.Date, changes.Today)
		if err != nil {
			return 0, err
		}
		newDate = &date
	}

	entry, err := s.findBySelector(ctx, sel)
	if err != nil {
		return 0, err
	}

	if changes.Hours != nil {
		hours, _ := changes.Hours.Float64()
		entry.Hours = hours
	}
	if newDate != nil {
		entry.EntryDate = *newDate
	}

	if err := s.repo.UpdateEntry(ctx, entry); err != nil {
		return 0, err
	}

	return entry.ID, nil
}

// DeleteEntry removes the entry the selector identifies
func (s *timesheetServiceImpl) DeleteEntry(ctx context.Context, sel Selector) (int64, error) {
	entry, err := s.findBySelector(ctx, sel)
	if err != nil {
		return 0, err
	}

	if err := s.repo.DeleteEntry(ctx, entry.ID); err != nil {
		return 0, err
	}

	return entry.ID, nil
}

// findBySelector resolves a selector to a persisted entry. A selector with
// neither an ID nor a complete (employee, project, date) triple is rejected.
func (s *timesheetServiceImpl) findBySelector(ctx context.Context, sel Selector) (*sqlite.TimesheetEntry, error) {
	if sel.EntryID != nil {
		return s.repo.GetEntry(ctx, *sel.EntryID)
	}

	if sel.Employee == "" || sel.Project == "" || sel.Date == "" {
		return nil, validation.NewEntryError(validation.ReasonMissingSelector, "selector",
			"requires an entry id or the employee, project and date triple", sel)
	}

	date, err := sqlite.ParseDateFromDB(sel.Date)
	if err != nil {
		return nil, validation.NewEntryError(validation.ReasonMalformedDate, "selector.date",
			"must be a calendar date in YYYY-MM-DD form", sel.Date)
	}

	return s.repo.FindEntryByKey(ctx, sel.Employee, sel.Project, date)
}
