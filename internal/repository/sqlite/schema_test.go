package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableNames(t *testing.T, db *sql.DB) map[string]bool {
	t.Helper()

	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type = 'table'")
	require.NoError(t, err)
	defer rows.Close()

	names := make(map[string]bool)
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names[name] = true
	}
	require.NoError(t, rows.Err())
	return names
}

func TestEnsureSchemaCreatesRequiredTables(t *testing.T) {
	repo := setupTestRepository(t)

	names := tableNames(t, repo.db)
	for _, table := range []string{"employees", "projects", "timesheets", "project_master", "project_assignments"} {
		assert.True(t, names[table], "expected table %s to exist", table)
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	// New() already ran it once; two more runs must not disturb anything.
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))

	require.NoError(t, repo.CreateEmployee(ctx, &Employee{Name: "Alice"}))
	require.NoError(t, repo.EnsureSchema(ctx))

	found, err := repo.FindEmployeeByName(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)
}

func TestEnsureSchemaAddsMissingRemarksColumn(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	// Recreate the timesheets table as it existed before the remarks column
	// shipped, with one pre-existing row.
	_, err := repo.db.ExecContext(ctx, "DROP TABLE timesheets")
	require.NoError(t, err)
	_, err = repo.db.ExecContext(ctx, `CREATE TABLE timesheets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL,
		project_id INTEGER NOT NULL,
		entry_date TEXT NOT NULL,
		hours REAL NOT NULL,
		FOREIGN KEY (employee_id) REFERENCES employees(id),
		FOREIGN KEY (project_id) REFERENCES projects(id)
	)`)
	require.NoError(t, err)
	_, err = repo.db.ExecContext(ctx,
		"INSERT INTO timesheets (employee_id, project_id, entry_date, hours) VALUES (1, 1, '2023-01-01', 2.0)")
	require.NoError(t, err)

	require.NoError(t, repo.EnsureSchema(ctx))

	exists, err := columnExists(ctx, repo.db, "timesheets", "remarks")
	require.NoError(t, err)
	assert.True(t, exists, "remarks column should have been appended")

	// The prior row survives with a NULL remarks value.
	entry, err := repo.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, entry.Hours)
	assert.Nil(t, entry.Remarks)
}

func TestColumnExists(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	exists, err := columnExists(ctx, repo.db, "timesheets", "hours")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = columnExists(ctx, repo.db, "timesheets", "no_such_column")
	require.NoError(t, err)
	assert.False(t, exists)
}
