// Package sqlite_test contains integration tests for the SQLite record store.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/farmhand/internal/adapters/sqlite"
	"github.com/example/farmhand/internal/db"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	testDB, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// one connection, one database
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func setupStore(t *testing.T) *sqlite.RecordStore {
	t.Helper()
	return sqlite.NewRecordStore(setupTestDB(t))
}

// seedFarm inserts a farm through the store and returns its id.
func seedFarm(t *testing.T, store *sqlite.RecordStore, name string) int64 {
	t.Helper()
	return createOne(t, store, models.KindFarm, secondary.Record{
		"Name":       name,
		"location":   "Story County, IA",
		"size":       "120",
		"size_unit":  "acres",
		"created_at": "2024-01-10T00:00:00Z",
	})
}

// seedTransaction inserts a transaction and returns its id.
func seedTransaction(t *testing.T, store *sqlite.RecordStore, farmID int64, txnType, amount, date string) int64 {
	t.Helper()
	return createOne(t, store, models.KindTransaction, secondary.Record{
		"farm_id":     farmID,
		"type":        txnType,
		"category":    "Other",
		"amount":      amount,
		"date":        date,
		"description": "",
	})
}

func createOne(t *testing.T, store *sqlite.RecordStore, kind models.Kind, rec secondary.Record) int64 {
	t.Helper()
	resp, err := store.CreateRecord(context.Background(), kind, secondary.WriteRequest{Records: []secondary.Record{rec}})
	if err != nil {
		t.Fatalf("failed to seed %s: %v", kind, err)
	}
	if !resp.Success || len(resp.Results) != 1 || !resp.Results[0].Success {
		t.Fatalf("failed to seed %s: %+v", kind, resp)
	}
	id, ok := resp.Results[0].Data["Id"].(int64)
	if !ok {
		t.Fatalf("seeded %s has no int64 Id: %#v", kind, resp.Results[0].Data)
	}
	return id
}
