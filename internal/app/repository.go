package app

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/farmhand/internal/core/farmerr"
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/secondary"
)

// Option configures a service.
type Option func(*repository)

// WithClock overrides the clock used to stamp creation, completion and
// restock times.
func WithClock(now func() time.Time) Option {
	return func(r *repository) { r.now = now }
}

// repository is the record-level plumbing shared by every entity service:
// id parsing, canonicalization and batch unwrapping.
type repository struct {
	store  secondary.RecordStore
	kind   models.Kind
	logger *zap.Logger
	now    func() time.Time
}

func newRepository(store secondary.RecordStore, kind models.Kind, logger *zap.Logger, opts []Option) repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := repository{
		store:  store,
		kind:   kind,
		logger: logger.With(zap.String("kind", string(kind))),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r repository) op(action string) string {
	return fmt.Sprintf("%s.%s", r.kind, action)
}

// list fetches and canonicalizes records. A failed store call degrades to
// an empty result and a warning.
func (r repository) list(ctx context.Context, where []secondary.Condition) []secondary.Record {
	query := secondary.Query{Fields: normalize.Fields(r.kind), Where: where}
	resp, err := r.store.FetchRecords(ctx, r.kind, query)
	if err != nil || resp == nil || !resp.Success {
		fields := []zap.Field{zap.Error(farmerr.Store(r.op("list"), responseMessage(resp), err))}
		r.logger.Warn("list degraded to empty result", fields...)
		return []secondary.Record{}
	}

	out := make([]secondary.Record, 0, len(resp.Data))
	for _, raw := range resp.Data {
		out = append(out, normalize.Canonicalize(r.kind, raw))
	}
	return out
}

func responseMessage(resp *secondary.FetchResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Message
}

// get parses rawID and loads the canonical record.
func (r repository) get(ctx context.Context, action, rawID string) (int64, secondary.Record, error) {
	id, err := normalize.ParseFK(rawID)
	if err != nil {
		return 0, nil, err
	}
	rec, err := r.getByID(ctx, action, id)
	return id, rec, err
}

func (r repository) getByID(ctx context.Context, action string, id int64) (secondary.Record, error) {
	query := secondary.Query{Fields: normalize.Fields(r.kind)}
	resp, err := r.store.GetRecordByID(ctx, r.kind, id, query)
	if err != nil {
		return nil, farmerr.Store(r.op(action), "", err)
	}
	if resp == nil || resp.Data == nil {
		return nil, farmerr.NotFound(r.op(action), string(r.kind), id)
	}
	return normalize.Canonicalize(r.kind, resp.Data), nil
}

// create writes rec as a batch of one and returns the stored record.
func (r repository) create(ctx context.Context, rec secondary.Record) (secondary.Record, error) {
	op := r.op("create")
	resp, err := r.store.CreateRecord(ctx, r.kind, secondary.WriteRequest{Records: []secondary.Record{rec}})
	data, err := unwrapBatch(op, resp, err)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, farmerr.Store(op, "store returned no data for the created record", nil)
	}
	created := normalize.Canonicalize(r.kind, data)
	r.logger.Debug("record created", zap.Any("id", created[normalize.IDField]))
	return created, nil
}

// update writes rec under id as a batch of one and returns the stored record.
func (r repository) update(ctx context.Context, action string, id int64, rec secondary.Record) (secondary.Record, error) {
	op := r.op(action)
	payload := maps.Clone(rec)
	payload[normalize.IDField] = id
	resp, err := r.store.UpdateRecord(ctx, r.kind, secondary.WriteRequest{Records: []secondary.Record{payload}})
	data, err := unwrapBatch(op, resp, err)
	if errors.Is(err, farmerr.ErrNotFound) {
		return nil, farmerr.NotFound(op, string(r.kind), id)
	}
	if err != nil {
		return nil, err
	}
	r.logger.Debug("record updated", zap.Int64("id", id), zap.String("op", op))
	if data == nil {
		return r.getByID(ctx, action, id)
	}
	return normalize.Canonicalize(r.kind, data), nil
}

// remove deletes the record named by rawID after confirming it exists.
func (r repository) remove(ctx context.Context, rawID string) error {
	id, _, err := r.get(ctx, "delete", rawID)
	if err != nil {
		return err
	}
	resp, err := r.store.DeleteRecord(ctx, r.kind, secondary.DeleteRequest{RecordIDs: []int64{id}})
	if _, err := unwrapBatch(r.op("delete"), resp, err); err != nil {
		if errors.Is(err, farmerr.ErrNotFound) {
			return farmerr.NotFound(r.op("delete"), string(r.kind), id)
		}
		return err
	}
	r.logger.Debug("record deleted", zap.Int64("id", id))
	return nil
}

// merge overlays the canonical form of payload on stored. Id is never
// taken from the payload.
func (r repository) merge(stored secondary.Record, payload map[string]any) secondary.Record {
	merged := maps.Clone(stored)
	for k, v := range normalize.Canonicalize(r.kind, payload) {
		if k == normalize.IDField {
			continue
		}
		merged[k] = v
	}
	return merged
}

// invalid builds the ValidationError for a rejected guard.
func (r repository) invalid(action, reason string, fields []farmerr.FieldError) error {
	return farmerr.Validation(r.op(action), reason, fields...)
}

// stamp renders the current instant for a timestamp field.
func (r repository) stamp() string {
	return normalize.Timestamp(r.now())
}

func isAll(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, models.FilterAll)
}

// equalTo builds an EqualTo condition unless value is empty or "all".
func equalTo(field, value string) []secondary.Condition {
	if isAll(value) {
		return nil
	}
	return []secondary.Condition{{Field: field, Operator: secondary.OpEqualTo, Values: []string{strings.TrimSpace(value)}}}
}

// fkEqualTo is equalTo for a foreign key, which must parse.
func fkEqualTo(field, value string) ([]secondary.Condition, error) {
	if isAll(value) {
		return nil, nil
	}
	id, err := normalize.ParseFK(value)
	if err != nil {
		return nil, err
	}
	return equalTo(field, strconv.FormatInt(id, 10)), nil
}
