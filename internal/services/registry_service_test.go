package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/skywardcloud/projectmgt/internal/errors"
	"github.com/skywardcloud/projectmgt/internal/repository/sqlite"
	"github.com/skywardcloud/projectmgt/internal/validation"
)

func TestRegistryService_ResolveOrCreate_Employee(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewRegistryService(repo)
	ctx := context.Background()

	first, err := svc.ResolveOrCreate(ctx, KindEmployee, "Alice")
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Greater(t, first.ID, int64(0))

	second, err := svc.ResolveOrCreate(ctx, KindEmployee, "Alice")
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.ID, second.ID)
}

func TestRegistryService_ResolveOrCreate_Project(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewRegistryService(repo)
	ctx := context.Background()

	first, err := svc.ResolveOrCreate(ctx, KindProject, "Apollo")
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := svc.ResolveOrCreate(ctx, KindProject, "Apollo")
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.ID, second.ID)
}

func TestRegistryService_ResolveOrCreate_DistinctNamespaces(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewRegistryService(repo)
	ctx := context.Background()

	emp, err := svc.ResolveOrCreate(ctx, KindEmployee, "Mercury")
	require.NoError(t, err)
	proj, err := svc.ResolveOrCreate(ctx, KindProject, "Mercury")
	require.NoError(t, err)

	// same name resolves independently per kind
	assert.True(t, emp.Created)
	assert.True(t, proj.Created)
}

func TestRegistryService_ResolveOrCreate_EmptyName(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewRegistryService(repo)
	ctx := context.Background()

	_, err := svc.ResolveOrCreate(ctx, KindEmployee, "   ")
	require.Error(t, err)
	assert.True(t, validation.IsReason(err, validation.ReasonEmptyName))
}

// raceRepo simulates a concurrent writer: the first lookup misses, the
// insert loses the race, and the retry lookup finds the winner's row.
type raceRepo struct {
	sqlite.Repository
	finds int
}

func (r *raceRepo) FindEmployeeByName(ctx context.Context, name string) (*sqlite.Employee, error) {
	r.finds++
	if r.finds == 1 {
		return nil, apperrors.NewNotFoundError("employee", name)
	}
	return &sqlite.Employee{ID: 42, Name: name}, nil
}

func (r *raceRepo) CreateEmployee(ctx context.Context, employee *sqlite.Employee) error {
	return apperrors.NewDatabaseError("create employee", assert.AnError)
}

func TestRegistryService_ResolveOrCreate_AbsorbsInsertRace(t *testing.T) {
	inner := setupTestRepo(t)
	repo := &raceRepo{Repository: inner}
	svc := NewRegistryService(repo)

	res, err := svc.ResolveOrCreate(context.Background(), KindEmployee, "Alice")
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.ID)
	assert.False(t, res.Created)
	assert.Equal(t, 2, repo.finds)
}

// failRepo fails both the insert and the retry lookup; the original insert
// error must surface, not the retry's not-found.
type failRepo struct {
	sqlite.Repository
}

func (r *failRepo) FindEmployeeByName(ctx context.Context, name string) (*sqlite.Employee, error) {
	return nil, apperrors.NewNotFoundError("employee", name)
}

func (r *failRepo) CreateEmployee(ctx context.Context, employee *sqlite.Employee) error {
	return apperrors.NewDatabaseError("create employee", assert.AnError)
}

func TestRegistryService_ResolveOrCreate_PropagatesCreateError(t *testing.T) {
	inner := setupTestRepo(t)
	svc := NewRegistryService(&failRepo{Repository: inner})

	_, err := svc.ResolveOrCreate(context.Background(), KindEmployee, "Alice")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
}
