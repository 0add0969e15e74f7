package services

import (
	"context"
	"time"

	"github.com/skywardcloud/projectmgt/internal/domain"
	"github.com/skywardcloud/projectmgt/internal/errors"
	"github.com/skywardcloud/projectmgt/internal/logging"
	"github.com/skywardcloud/projectmgt/internal/repository/sqlite"
	"github.com/skywardcloud/projectmgt/internal/validation"
)

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	repo      sqlite.Repository
	registry  RegistryService
	validator *validation.EntryValidator
	now       func() time.Time
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(repo sqlite.Repository, registry RegistryService) ProjectService {
	return &projectServiceImpl{
		repo:      repo,
		registry:  registry,
		validator: validation.NewEntryValidator(),
		now:       time.Now,
	}
}

// CreateProjectRecord stores a management-facing project record and also
// registers the bare project name, so entries can be logged against the
// project regardless of which variant supplied the name.
func (s *projectServiceImpl) CreateProjectRecord(ctx context.Context, record domain.ProjectRecord) (*domain.ProjectRecord, error) {
	name, err := s.validator.ValidateName("project", record.Name)
	if err != nil {
		return nil, err
	}
	code, err := s.validator.ValidateName("code", record.Code)
	if err != nil {
		return nil, err
	}
	record.Name = name
	record.Code = code

	// codes are unique across records, so a duplicate is a conflict
	// rather than a second row
	if existing, err := s.repo.GetProjectRecordByCode(ctx, record.Code); err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, err
		}
	} else if existing != nil {
		return nil, errors.NewConflictError("project record", record.Code, nil)
	}

	if record.Status == "" {
		record.Status = "active"
	}
	now := s.now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	if _, err := s.registry.ResolveOrCreate(ctx, KindProject, record.Name); err != nil {
		return nil, err
	}

	mapper := domain.NewProjectRecordMapper()
	dbRecord := mapper.ToDatabase(record)
	if err := s.repo.CreateProjectRecord(ctx, &dbRecord); err != nil {
		return nil, err
	}

	created := mapper.FromDatabase(dbRecord)
	return &created, nil
}

// ListProjectRecords returns all managed project records ordered by code
func (s *projectServiceImpl) ListProjectRecords(ctx context.Context) ([]domain.ProjectRecord, error) {
	dbRecords, err := s.repo.ListProjectRecords(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewProjectRecordMapper().FromDatabaseSlice(dbRecords), nil
}

// AssignUser records that a user may log against a managed project. A
// duplicate assignment is benign: the composite key already holds, so the
// call reports created=false instead of failing.
func (s *projectServiceImpl) AssignUser(ctx context.Context, projectID, userID int64) (bool, error) {
	assignment := &sqlite.ProjectAssignment{ProjectID: projectID, UserID: userID}
	createErr := s.repo.CreateAssignment(ctx, assignment)
	if createErr == nil {
		return true, nil
	}

	logging.Debugf("assignment insert failed, checking for existing row (%d, %d): %v\n", projectID, userID, createErr)
	existing, err := s.repo.ListAssignments(ctx, projectID)
	if err != nil {
		return false, createErr
	}
	for _, a := range existing {
		if a.UserID == userID {
			return false, nil
		}
	}

	return false, createErr
}

// ListAssignments returns the users assigned to a managed project
func (s *projectServiceImpl) ListAssignments(ctx context.Context, projectID int64) ([]domain.ProjectAssignment, error) {
	dbAssignments, err := s.repo.ListAssignments(ctx, projectID)
	if err != nil {
		return nil, err
	}

	assignments := make([]domain.ProjectAssignment, len(dbAssignments))
	for i, a := range dbAssignments {
		assignments[i] = domain.ProjectAssignment{ProjectID: a.ProjectID, UserID: a.UserID}
	}
	return assignments, nil
}
