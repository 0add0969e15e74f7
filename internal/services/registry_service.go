package services

import (
	"context"
	"fmt"

	"github.com/skywardcloud/projectmgt/internal/errors"
	"github.com/skywardcloud/projectmgt/internal/logging"
	"github.com/skywardcloud/projectmgt/internal/repository/sqlite"
	"github.com/skywardcloud/projectmgt/internal/validation"
)

// registryServiceImpl implements the RegistryService interface
type registryServiceImpl struct {
	repo      sqlite.Repository
	validator *validation.EntryValidator
}

// NewRegistryService creates a new RegistryService instance
func NewRegistryService(repo sqlite.Repository) RegistryService {
	return &registryServiceImpl{
		repo:      repo,
		validator: validation.NewEntryValidator(),
	}
}

// ResolveOrCreate looks a name up in the registry for the given kind and
// inserts it on a miss. Sequential calls with the same name always return
// the same id. A concurrent caller racing the insert trips the UNIQUE
// constraint; that conflict is absorbed by retrying the lookup, so callers
// never observe a transient failure for a benign registration race.
func (s *registryServiceImpl) ResolveOrCreate(ctx context.Context, kind Kind, name string) (Resolution, error) {
	cleaned, err := s.validator.ValidateName(string(kind), name)
	if err != nil {
		return Resolution{}, err
	}

	switch kind {
	case KindEmployee:
		return s.resolveEmployee(ctx, cleaned)
	case KindProject:
		return s.resolveProject(ctx, cleaned)
	default:
		return Resolution{}, errors.NewInvalidInputError("kind", string(kind),
			fmt.Sprintf("must be %q or %q", KindEmployee, KindProject))
	}
}

func (s *registryServiceImpl) resolveEmployee(ctx context.Context, name string) (Resolution, error) {
	if employee, err := s.repo.FindEmployeeByName(ctx, name); err == nil {
		return Resolution{ID: employee.ID}, nil
	} else if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return Resolution{}, err
	}

	employee := &sqlite.Employee{Name: name}
	createErr := s.repo.CreateEmployee(ctx, employee)
	if createErr == nil {
		return Resolution{ID: employee.ID, Created: true}, nil
	}

	// The insert lost a race against a concurrent registration of the same
	// name. One retry of the lookup settles it.
	logging.Debugf("employee insert failed, retrying lookup for %q: %v\n", name, createErr)
	if existing, err := s.repo.FindEmployeeByName(ctx, name); err == nil {
		return Resolution{ID: existing.ID}, nil
	}

	return Resolution{}, createErr
}

func (s *registryServiceImpl) resolveProject(ctx context.Context, name string) (Resolution, error) {
	if project, err := s.repo.FindProjectByName(ctx, name); err == nil {
		return Resolution{ID: project.ID}, nil
	} else if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return Resolution{}, err
	}

	project := &sqlite.Project{Name: name}
	createErr := s.repo.CreateProject(ctx, project)
	if createErr == nil {
		return Resolution{ID: project.ID, Created: true}, nil
	}

	logging.Debugf("project insert failed, retrying lookup for %q: %v\n", name, createErr)
	if existing, err := s.repo.FindProjectByName(ctx, name); err == nil {
		return Resolution{ID: existing.ID}, nil
	}

	return Resolution{}, createErr
}
