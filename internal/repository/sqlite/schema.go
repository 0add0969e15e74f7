package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// tableSpec declares a required table and its creation DDL
type tableSpec struct {
	Name string
	DDL  string
}

// columnSpec declares a column added after a table first shipped. The DDL
// must be additive: nullable or carrying a default, so existing rows remain
// valid without a rewrite.
type columnSpec struct {
	Table  string
	Column string
	DDL    string
}

var requiredTables = []tableSpec{
	{
		Name: "employees",
		DDL: `CREATE TABLE IF NOT EXISTS employees (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL
		)`,
	},
	{
		Name: "projects",
		DDL: `CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL
		)`,
	},
	{
		Name: "timesheets",
		DDL: `CREATE TABLE IF NOT EXISTS timesheets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id INTEGER NOT NULL,
			project_id INTEGER NOT NULL,
			entry_date TEXT NOT NULL,
			hours REAL NOT NULL,
			remarks TEXT,
			FOREIGN KEY (employee_id) REFERENCES employees(id),
			FOREIGN KEY (project_id) REFERENCES projects(id)
		)`,
	},
	{
		Name: "project_master",
		DDL: `CREATE TABLE IF NOT EXISTS project_master (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			code TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			client TEXT NOT NULL DEFAULT '',
			manager_id INTEGER,
			start_date TEXT,
			end_date TEXT,
			estimated_hours REAL NOT NULL DEFAULT 0,
			actual_hours REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'active',
			billing_type TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			FOREIGN KEY (manager_id) REFERENCES employees(id)
		)`,
	},
	{
		Name: "project_assignments",
		DDL: `CREATE TABLE IF NOT EXISTS project_assignments (
			project_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			PRIMARY KEY (project_id, user_id)
		)`,
	},
}

// additiveColumns lists columns introduced after their table first shipped.
// Databases created before the column existed get it appended on start-up;
// existing rows keep the column default (NULL for remarks).
var additiveColumns = []columnSpec{
	{Table: "timesheets", Column: "remarks", DDL: "TEXT"},
}

// EnsureSchema creates every required table if absent and appends any
// declared additive column missing from an existing table. It is idempotent
// and safe to run on every process start. On any failure the schema is
// unconfirmed and the caller must not proceed to field-level operations.
func (r *SQLiteRepository) EnsureSchema(ctx context.Context) error {
	return ensureSchema(ctx, r.db)
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	for _, table := range requiredTables {
		if _, err := db.ExecContext(ctx, table.DDL); err != nil {
			return HandleDatabaseError(fmt.Sprintf("create table %s", table.Name), err)
		}
	}

	for _, column := range additiveColumns {
		exists, err := columnExists(ctx, db, column.Table, column.Column)
		if err != nil {
			return HandleDatabaseError(fmt.Sprintf("inspect table %s", column.Table), err)
		}
		if exists {
			continue
		}
		alter := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", column.Table, column.Column, column.DDL)
		if _, err := db.ExecContext(ctx, alter); err != nil {
			return HandleDatabaseError(fmt.Sprintf("add column %s.%s", column.Table, column.Column), err)
		}
	}

	return nil
}

// columnExists reports whether a column is present in a table's column set
func columnExists(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			columnType string
			notNull    int
			defaultVal sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &columnType, &notNull, &defaultVal, &primaryKey); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}

	return false, rows.Err()
}
