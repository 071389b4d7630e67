package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SchemaSQL is the complete schema for a farmhand database.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests build
// their in-memory databases from GetSchemaSQL() so that repository code
// referencing a missing column fails with "no such column" straight away.
//
// Column names are the storage-convention field names, including the
// capitalised Id and Name. Dates and decimals are kept as TEXT in the form
// they were written. References between tables are plain integers with no
// FOREIGN KEY clause: deleting a farm leaves its crops and tasks behind as
// orphans, which the read side renders as "Unknown Farm".
//
// Named CHECK constraints carry the name of the column they guard so a
// violation can be reported against that field.
const SchemaSQL = `
-- Farms
CREATE TABLE IF NOT EXISTS farms (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	Name TEXT NOT NULL,
	location TEXT NOT NULL,
	size TEXT NOT NULL,
	size_unit TEXT NOT NULL,
	created_at TEXT
);

-- Crops
CREATE TABLE IF NOT EXISTS crops (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	Name TEXT,
	farm_id INTEGER NOT NULL,
	crop_type TEXT NOT NULL,
	planting_date TEXT NOT NULL,
	expected_harvest_date TEXT NOT NULL,
	status TEXT NOT NULL,
	area TEXT NOT NULL,
	notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_crops_farm ON crops(farm_id);

-- Tasks
CREATE TABLE IF NOT EXISTS tasks (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	farm_id INTEGER NOT NULL,
	crop_id INTEGER,
	title TEXT NOT NULL,
	type TEXT NOT NULL,
	due_date TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	completed_date TEXT,
	notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_tasks_farm ON tasks(farm_id);
CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date);

-- Transactions
CREATE TABLE IF NOT EXISTS transactions (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	farm_id INTEGER NOT NULL,
	type TEXT NOT NULL,
	category TEXT NOT NULL,
	amount TEXT NOT NULL,
	date TEXT NOT NULL,
	description TEXT
);

CREATE INDEX IF NOT EXISTS idx_transactions_farm ON transactions(farm_id);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);

-- Inventory
CREATE TABLE IF NOT EXISTS inventory_items (
	Id INTEGER PRIMARY KEY AUTOINCREMENT,
	Name TEXT NOT NULL,
	category TEXT NOT NULL,
	current_stock INTEGER NOT NULL DEFAULT 0,
	max_capacity INTEGER NOT NULL,
	unit TEXT NOT NULL,
	supplier TEXT,
	minimum_threshold INTEGER NOT NULL DEFAULT 0,
	last_restocked TEXT,
	CONSTRAINT current_stock CHECK (current_stock >= 0),
	CONSTRAINT max_capacity CHECK (max_capacity > 0),
	CONSTRAINT minimum_threshold CHECK (minimum_threshold >= 0)
);
`

// InitSchema creates any missing tables and indexes. It is idempotent.
func InitSchema(ctx context.Context, database *sqlx.DB) error {
	if _, err := database.ExecContext(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// GetSchemaSQL returns the schema for tests and tooling.
func GetSchemaSQL() string {
	return SchemaSQL
}
