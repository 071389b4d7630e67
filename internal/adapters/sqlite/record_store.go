// Package sqlite contains the SQLite implementation of the record store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/secondary"
)

// tables maps each entity kind to its table.
var tables = map[models.Kind]string{
	models.KindFarm:          "farms",
	models.KindCrop:          "crops",
	models.KindTask:          "tasks",
	models.KindTransaction:   "transactions",
	models.KindInventoryItem: "inventory_items",
}

var operators = map[string]string{
	secondary.OpGreaterThan:          ">",
	secondary.OpGreaterThanOrEqualTo: ">=",
	secondary.OpLessThan:             "<",
	secondary.OpLessThanOrEqualTo:    "<=",
}

// RecordStore implements secondary.RecordStore with SQLite.
type RecordStore struct {
	db *sqlx.DB
}

// NewRecordStore creates a new SQLite record store.
func NewRecordStore(db *sqlx.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Ensure RecordStore implements the interface
var _ secondary.RecordStore = (*RecordStore)(nil)

// FetchRecords returns every record of kind matching query, ordered by Id.
// A query naming an unknown field fails the call.
func (s *RecordStore) FetchRecords(ctx context.Context, kind models.Kind, query secondary.Query) (*secondary.FetchResponse, error) {
	table, cols, err := selection(kind, query.Fields)
	if err != nil {
		return &secondary.FetchResponse{Success: false, Message: err.Error()}, nil
	}
	where, args, err := whereClause(kind, query.Where)
	if err != nil {
		return &secondary.FetchResponse{Success: false, Message: err.Error()}, nil
	}

	stmt := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY Id", strings.Join(cols, ", "), table, where)
	rows, err := s.db.QueryxContext(ctx, s.db.Rebind(stmt), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	data := []secondary.Record{}
	for rows.Next() {
		rec := secondary.Record{}
		if err := rows.MapScan(rec); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		data = append(data, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}

	return &secondary.FetchResponse{Success: true, Data: data}, nil
}

// GetRecordByID returns one record, or nil Data when no row has id.
func (s *RecordStore) GetRecordByID(ctx context.Context, kind models.Kind, id int64, query secondary.Query) (*secondary.GetResponse, error) {
	table, cols, err := selection(kind, query.Fields)
	if err != nil {
		return nil, err
	}

	rec, err := s.getRow(ctx, table, cols, id)
	if err != nil {
		return nil, err
	}
	return &secondary.GetResponse{Data: rec}, nil
}

// CreateRecord inserts each record. Constraint violations fail only the
// offending record; any other database error fails the call.
func (s *RecordStore) CreateRecord(ctx context.Context, kind models.Kind, req secondary.WriteRequest) (*secondary.BatchResponse, error) {
	table, all, err := selection(kind, nil)
	if err != nil {
		return &secondary.BatchResponse{Success: false, Message: err.Error()}, nil
	}

	resp := &secondary.BatchResponse{Success: true}
	for _, rec := range req.Records {
		cols, args := assignments(kind, rec)
		var stmt string
		if len(cols) == 0 {
			stmt = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", table)
		} else {
			stmt = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
				table, strings.Join(cols, ", "), placeholders(len(cols)))
		}

		res, err := s.db.ExecContext(ctx, s.db.Rebind(stmt), args...)
		if err != nil {
			if result, ok := constraintResult(err); ok {
				resp.Results = append(resp.Results, result)
				continue
			}
			return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read id from %s: %w", table, err)
		}
		stored, err := s.getRow(ctx, table, all, id)
		if err != nil {
			return nil, err
		}
		resp.Results = append(resp.Results, secondary.RecordResult{Success: true, Data: stored})
	}
	return resp, nil
}

// UpdateRecord writes the fields present in each record onto the row with
// the same Id. Absent fields are left untouched.
func (s *RecordStore) UpdateRecord(ctx context.Context, kind models.Kind, req secondary.WriteRequest) (*secondary.BatchResponse, error) {
	table, all, err := selection(kind, nil)
	if err != nil {
		return &secondary.BatchResponse{Success: false, Message: err.Error()}, nil
	}

	resp := &secondary.BatchResponse{Success: true}
	for _, rec := range req.Records {
		id, err := normalize.ParseID(rec[normalize.IDField])
		if err != nil {
			resp.Results = append(resp.Results, notFound())
			continue
		}

		cols, args := assignments(kind, rec)
		if len(cols) > 0 {
			sets := make([]string, len(cols))
			for i, c := range cols {
				sets[i] = c + " = ?"
			}
			stmt := fmt.Sprintf("UPDATE %s SET %s WHERE Id = ?", table, strings.Join(sets, ", "))
			res, err := s.db.ExecContext(ctx, s.db.Rebind(stmt), append(args, id)...)
			if err != nil {
				if result, ok := constraintResult(err); ok {
					resp.Results = append(resp.Results, result)
					continue
				}
				return nil, fmt.Errorf("failed to update %s: %w", table, err)
			}
			if n, err := res.RowsAffected(); err == nil && n == 0 {
				resp.Results = append(resp.Results, notFound())
				continue
			}
		}

		stored, err := s.getRow(ctx, table, all, id)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			resp.Results = append(resp.Results, notFound())
			continue
		}
		resp.Results = append(resp.Results, secondary.RecordResult{Success: true, Data: stored})
	}
	return resp, nil
}

// DeleteRecord removes records by id. Missing ids fail at the record level.
func (s *RecordStore) DeleteRecord(ctx context.Context, kind models.Kind, req secondary.DeleteRequest) (*secondary.BatchResponse, error) {
	table, ok := tables[kind]
	if !ok {
		return &secondary.BatchResponse{Success: false, Message: unknownKind(kind).Error()}, nil
	}

	resp := &secondary.BatchResponse{Success: true}
	for _, id := range req.RecordIDs {
		res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM "+table+" WHERE Id = ?"), id)
		if err != nil {
			return nil, fmt.Errorf("failed to delete from %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to delete from %s: %w", table, err)
		}
		if n == 0 {
			resp.Results = append(resp.Results, notFound())
			continue
		}
		resp.Results = append(resp.Results, secondary.RecordResult{Success: true, Data: secondary.Record{normalize.IDField: id}})
	}
	return resp, nil
}

func (s *RecordStore) getRow(ctx context.Context, table string, cols []string, id int64) (secondary.Record, error) {
	stmt := fmt.Sprintf("SELECT %s FROM %s WHERE Id = ?", strings.Join(cols, ", "), table)
	rec := secondary.Record{}
	err := s.db.QueryRowxContext(ctx, s.db.Rebind(stmt), id).MapScan(rec)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s row: %w", table, err)
	}
	return rec, nil
}

// selection resolves the table of kind and the columns to read. Id is
// always selected.
func selection(kind models.Kind, fields []string) (string, []string, error) {
	table, ok := tables[kind]
	if !ok {
		return "", nil, unknownKind(kind)
	}
	known := normalize.Fields(kind)
	if len(fields) == 0 {
		return table, append([]string{normalize.IDField}, known...), nil
	}

	cols := []string{normalize.IDField}
	for _, f := range fields {
		if f == normalize.IDField || slices.Contains(cols, f) {
			continue
		}
		if !slices.Contains(known, f) {
			return "", nil, fmt.Errorf("unknown field %q for %s", f, kind)
		}
		cols = append(cols, f)
	}
	return table, cols, nil
}

// whereClause renders conditions as an AND of per-field predicates. A
// condition with several values holds when any value matches.
func whereClause(kind models.Kind, where []secondary.Condition) (string, []any, error) {
	if len(where) == 0 {
		return "", nil, nil
	}
	known := normalize.Fields(kind)

	var conditions []string
	var args []any
	for _, c := range where {
		if c.Field != normalize.IDField && !slices.Contains(known, c.Field) {
			return "", nil, fmt.Errorf("unknown field %q for %s", c.Field, kind)
		}
		if len(c.Values) == 0 {
			conditions = append(conditions, "0")
			continue
		}

		if c.Operator == secondary.OpEqualTo {
			q, inArgs, err := sqlx.In(c.Field+" IN (?)", c.Values)
			if err != nil {
				return "", nil, fmt.Errorf("failed to expand %s condition: %w", c.Field, err)
			}
			conditions = append(conditions, q)
			args = append(args, inArgs...)
			continue
		}

		sym, ok := operators[c.Operator]
		if !ok {
			return "", nil, fmt.Errorf("unsupported operator %q", c.Operator)
		}
		alts := make([]string, len(c.Values))
		for i, v := range c.Values {
			alts[i] = fmt.Sprintf("%s %s ?", c.Field, sym)
			args = append(args, v)
		}
		conditions = append(conditions, "("+strings.Join(alts, " OR ")+")")
	}
	return " WHERE " + strings.Join(conditions, " AND "), args, nil
}

// assignments returns the known columns present in rec, in schema order,
// with their values converted for the driver.
func assignments(kind models.Kind, rec secondary.Record) ([]string, []any) {
	var cols []string
	var args []any
	for _, f := range normalize.Fields(kind) {
		v, ok := rec[f]
		if !ok {
			continue
		}
		cols = append(cols, f)
		args = append(args, driverValue(v))
	}
	return cols, args
}

func driverValue(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.String()
	case time.Time:
		return normalize.Timestamp(x)
	case map[string]any:
		if id, err := normalize.ParseID(x); err == nil {
			return id
		}
		return normalize.String(x)
	}
	return v
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// constraintResult turns a constraint violation into a failed record
// result. NOT NULL failures name "table.column"; the schema names each
// CHECK constraint after its column.
func constraintResult(err error) (secondary.RecordResult, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return secondary.RecordResult{}, false
	}

	msg := sqliteErr.Error()
	_, detail, _ := strings.Cut(msg, "constraint failed: ")
	detail = strings.TrimSpace(detail)
	if _, col, ok := strings.Cut(detail, "."); ok {
		detail = col
	}

	message := msg
	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintNotNull:
		message = "is required"
	case sqlite3.ErrConstraintCheck:
		message = "is out of range"
	}

	return secondary.RecordResult{
		Success: false,
		Errors:  []secondary.FieldError{{FieldLabel: detail, Message: message}},
		Message: "record rejected",
	}, true
}

func notFound() secondary.RecordResult {
	return secondary.RecordResult{NotFound: true, Message: secondary.MessageNotFound}
}

func unknownKind(kind models.Kind) error {
	return fmt.Errorf("unknown record kind %q", kind)
}
