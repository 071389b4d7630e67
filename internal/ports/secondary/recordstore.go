// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/farmhand/internal/models"
)

// Record is a single stored entity. Keys may use either naming convention
// and values arrive in whatever shape the store produced; callers run
// records through the normalizer before use.
type Record = map[string]any

// Condition operators understood by every RecordStore.
const (
	OpEqualTo              = "EqualTo"
	OpGreaterThan          = "GreaterThan"
	OpGreaterThanOrEqualTo = "GreaterThanOrEqualTo"
	OpLessThan             = "LessThan"
	OpLessThanOrEqualTo    = "LessThanOrEqualTo"
)

// Condition compares a field against literal values. Multiple values
// match when any one matches.
type Condition struct {
	Field    string
	Operator string
	Values   []string
}

// Query selects fields and filters records. An empty Fields list returns
// every field.
type Query struct {
	Fields []string
	Where  []Condition
}

// FetchResponse is the result of a multi-record read.
type FetchResponse struct {
	Success bool
	Data    []Record
	Message string
}

// GetResponse is the result of a single-record read. Data is nil when no
// record has the requested id.
type GetResponse struct {
	Data Record
}

// WriteRequest carries the records of a create or update batch. Update
// records must carry their Id.
type WriteRequest struct {
	Records []Record
}

// DeleteRequest names the records to delete.
type DeleteRequest struct {
	RecordIDs []int64
}

// FieldError is a store-reported problem with one field of one record.
type FieldError struct {
	FieldLabel string
	Message    string
}

// RecordResult is the per-record outcome inside a batch. NotFound marks a
// record that failed because its Id no longer exists.
type RecordResult struct {
	Success  bool
	NotFound bool
	Data     Record
	Errors   []FieldError
	Message  string
}

// MessageNotFound is the record-level message for a missing Id.
const MessageNotFound = "record not found"

// BatchResponse is the outcome of a batch write. Success describes the
// call itself; each record carries its own result.
type BatchResponse struct {
	Success bool
	Message string
	Results []RecordResult
}

// RecordStore is the generic persistence collaborator. Implementations
// must be safe for concurrent use.
type RecordStore interface {
	// FetchRecords returns every record of kind matching query.
	FetchRecords(ctx context.Context, kind models.Kind, query Query) (*FetchResponse, error)

	// GetRecordByID returns one record, or a response with nil Data.
	GetRecordByID(ctx context.Context, kind models.Kind, id int64, query Query) (*GetResponse, error)

	// CreateRecord inserts a batch of records and assigns their ids.
	CreateRecord(ctx context.Context, kind models.Kind, req WriteRequest) (*BatchResponse, error)

	// UpdateRecord merges a batch of records into existing ones by Id.
	UpdateRecord(ctx context.Context, kind models.Kind, req WriteRequest) (*BatchResponse, error)

	// DeleteRecord removes records by id.
	DeleteRecord(ctx context.Context, kind models.Kind, req DeleteRequest) (*BatchResponse, error)
}
