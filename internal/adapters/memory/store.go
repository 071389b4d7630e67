// Package memory provides an in-process RecordStore used by tests and by
// the CLI when no database is configured.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/secondary"
)

// Store operation names accepted by FailCall.
const (
	OpFetch  = "fetch"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

type callFailure struct {
	err error
}

// Store is a thread-safe map-backed RecordStore with per-kind id sequences.
type Store struct {
	mu       sync.RWMutex
	records  map[models.Kind]map[int64]secondary.Record
	nextID   map[models.Kind]int64
	failures map[string]callFailure
	rejects  map[models.Kind][]secondary.FieldError
	calls    map[string]int
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		records:  make(map[models.Kind]map[int64]secondary.Record),
		nextID:   make(map[models.Kind]int64),
		failures: make(map[string]callFailure),
		rejects:  make(map[models.Kind][]secondary.FieldError),
		calls:    make(map[string]int),
	}
}

var _ secondary.RecordStore = (*Store)(nil)

// FailCall makes every call of op fail at the call level until
// ClearFailures. A nil err answers with Success=false instead of a
// transport error.
func (s *Store) FailCall(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = callFailure{err: err}
}

// RejectRecords makes every write of kind succeed at the call level but
// fail for the record, reporting errs.
func (s *Store) RejectRecords(kind models.Kind, errs ...secondary.FieldError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejects[kind] = errs
}

// ClearFailures removes all injected failures.
func (s *Store) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.failures)
	clear(s.rejects)
}

// Calls returns how many times op has been invoked.
func (s *Store) Calls(op string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls[op]
}

// Seed inserts rec as-is under a fresh id, bypassing failure injection.
func (s *Store) Seed(kind models.Kind, rec secondary.Record) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(kind, rec)
}

// Len returns the number of stored records of kind.
func (s *Store) Len(kind models.Kind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records[kind])
}

func (s *Store) insert(kind models.Kind, rec secondary.Record) int64 {
	if s.records[kind] == nil {
		s.records[kind] = make(map[int64]secondary.Record)
	}
	s.nextID[kind]++
	id := s.nextID[kind]
	stored := maps.Clone(rec)
	if stored == nil {
		stored = secondary.Record{}
	}
	stored[normalize.IDField] = id
	s.records[kind][id] = stored
	return id
}

// enter counts the call and reports any injected call-level failure.
// Must be called with the lock held.
func (s *Store) enter(op string) (failed bool, err error) {
	s.calls[op]++
	f, ok := s.failures[op]
	if !ok {
		return false, nil
	}
	if f.err != nil {
		return true, f.err
	}
	return true, nil
}

// FetchRecords returns every record of kind matching query, ordered by id.
func (s *Store) FetchRecords(ctx context.Context, kind models.Kind, query secondary.Query) (*secondary.FetchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if failed, err := s.enter(OpFetch); failed {
		if err != nil {
			return nil, err
		}
		return &secondary.FetchResponse{Success: false, Message: "store unavailable"}, nil
	}

	data := []secondary.Record{}
	for _, id := range slices.Sorted(maps.Keys(s.records[kind])) {
		rec := s.records[kind][id]
		if !Matches(rec, query.Where) {
			continue
		}
		data = append(data, project(rec, query.Fields))
	}
	return &secondary.FetchResponse{Success: true, Data: data}, nil
}

// GetRecordByID returns one record or nil Data when absent.
func (s *Store) GetRecordByID(ctx context.Context, kind models.Kind, id int64, query secondary.Query) (*secondary.GetResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if failed, err := s.enter(OpGet); failed {
		if err == nil {
			err = fmt.Errorf("store unavailable")
		}
		return nil, err
	}

	rec, ok := s.records[kind][id]
	if !ok {
		return &secondary.GetResponse{}, nil
	}
	return &secondary.GetResponse{Data: project(rec, query.Fields)}, nil
}

// CreateRecord inserts each record under a fresh id.
func (s *Store) CreateRecord(ctx context.Context, kind models.Kind, req secondary.WriteRequest) (*secondary.BatchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if failed, resp, err := s.failedBatch(OpCreate); failed {
		return resp, err
	}

	resp := &secondary.BatchResponse{Success: true}
	for _, rec := range req.Records {
		if errs, rejected := s.rejects[kind]; rejected {
			resp.Results = append(resp.Results, rejection(errs))
			continue
		}
		id := s.insert(kind, rec)
		resp.Results = append(resp.Results, secondary.RecordResult{Success: true, Data: maps.Clone(s.records[kind][id])})
	}
	return resp, nil
}

// UpdateRecord merges each record into the stored record with the same Id.
func (s *Store) UpdateRecord(ctx context.Context, kind models.Kind, req secondary.WriteRequest) (*secondary.BatchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if failed, resp, err := s.failedBatch(OpUpdate); failed {
		return resp, err
	}

	resp := &secondary.BatchResponse{Success: true}
	for _, rec := range req.Records {
		if errs, rejected := s.rejects[kind]; rejected {
			resp.Results = append(resp.Results, rejection(errs))
			continue
		}
		id, err := normalize.ParseID(rec[normalize.IDField])
		stored, ok := s.records[kind][id]
		if err != nil || !ok {
			resp.Results = append(resp.Results, secondary.RecordResult{NotFound: true, Message: secondary.MessageNotFound})
			continue
		}
		for k, v := range rec {
			if k == normalize.IDField {
				continue
			}
			stored[k] = v
		}
		resp.Results = append(resp.Results, secondary.RecordResult{Success: true, Data: maps.Clone(stored)})
	}
	return resp, nil
}

// DeleteRecord removes records by id. Missing ids fail at the record level.
func (s *Store) DeleteRecord(ctx context.Context, kind models.Kind, req secondary.DeleteRequest) (*secondary.BatchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if failed, resp, err := s.failedBatch(OpDelete); failed {
		return resp, err
	}

	resp := &secondary.BatchResponse{Success: true}
	for _, id := range req.RecordIDs {
		if _, ok := s.records[kind][id]; !ok {
			resp.Results = append(resp.Results, secondary.RecordResult{NotFound: true, Message: secondary.MessageNotFound})
			continue
		}
		delete(s.records[kind], id)
		resp.Results = append(resp.Results, secondary.RecordResult{Success: true, Data: secondary.Record{normalize.IDField: id}})
	}
	return resp, nil
}

func (s *Store) failedBatch(op string) (bool, *secondary.BatchResponse, error) {
	failed, err := s.enter(op)
	if !failed {
		return false, nil, nil
	}
	if err != nil {
		return true, nil, err
	}
	return true, &secondary.BatchResponse{Success: false, Message: "store unavailable"}, nil
}

func rejection(errs []secondary.FieldError) secondary.RecordResult {
	return secondary.RecordResult{
		Success: false,
		Errors:  slices.Clone(errs),
		Message: "record rejected",
	}
}

func project(rec secondary.Record, fields []string) secondary.Record {
	if len(fields) == 0 {
		return maps.Clone(rec)
	}
	out := secondary.Record{normalize.IDField: rec[normalize.IDField]}
	for _, f := range fields {
		if v, ok := rec[f]; ok {
			out[f] = v
		}
	}
	return out
}
