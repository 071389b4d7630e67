package app

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/example/farmhand/internal/adapters/memory"
	"github.com/example/farmhand/internal/core/farmerr"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/primary"
	"github.com/example/farmhand/internal/ports/secondary"
)

func TestUnwrapBatch(t *testing.T) {
	tests := []struct {
		name      string
		resp      *secondary.BatchResponse
		err       error
		wantKind  farmerr.Kind
		wantField string
	}{
		{
			name:     "transport error is a store error",
			err:      errors.New("dial tcp: timeout"),
			wantKind: farmerr.KindStore,
		},
		{
			name:     "unsuccessful call is a store error",
			resp:     &secondary.BatchResponse{Success: false, Message: "maintenance"},
			wantKind: farmerr.KindStore,
		},
		{
			name:     "nil response is a store error",
			wantKind: farmerr.KindStore,
		},
		{
			name:     "empty results is a store error",
			resp:     &secondary.BatchResponse{Success: true},
			wantKind: farmerr.KindStore,
		},
		{
			name: "failed record is a validation error",
			resp: &secondary.BatchResponse{Success: true, Results: []secondary.RecordResult{{
				Success: false,
				Errors:  []secondary.FieldError{{FieldLabel: "size", Message: "must be positive"}},
			}}},
			wantKind:  farmerr.KindValidation,
			wantField: "size",
		},	{
			name: "missing record is not found",
			resp: &secondary.BatchResponse{Success: true, Results: []secondary.RecordResult{{
				NotFound: true,
				Message:  secondary.MessageNotFound,
			}}},
			wantKind: farmerr.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unwrapBatch("farm.create", tt.resp, tt.err)
			if got := farmerr.KindOf(err); got != tt.wantKind {
				t.Fatalf("kind = %v, want %v (err %v)", got, tt.wantKind, err)
			}
			if tt.wantField != "" {
				var fe *farmerr.Error
				if !errors.As(err, &fe) || !fe.HasField(tt.wantField) {
					t.Errorf("expected field %q in %v", tt.wantField, err)
				}
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Error("expected transport cause to be preserved")
			}
		})
	}
}

func TestUnwrapBatch_Success(t *testing.T) {
	resp := &secondary.BatchResponse{Success: true, Results: []secondary.RecordResult{{
		Success: true,
		Data:    secondary.Record{"Id": int64(4)},
	}}}
	data, err := unwrapBatch("farm.create", resp, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data["Id"] != int64(4) {
		t.Errorf("Id = %v, want 4", data["Id"])
	}
}

// vanishingStore deletes the target record just before every write.
type vanishingStore struct {
	*memory.Store
}

func (v vanishingStore) UpdateRecord(ctx context.Context, kind models.Kind, req secondary.WriteRequest) (*secondary.BatchResponse, error) {
	for _, rec := range req.Records {
		if id, ok := rec["Id"].(int64); ok {
			_, _ = v.Store.DeleteRecord(ctx, kind, secondary.DeleteRequest{RecordIDs: []int64{id}})
		}
	}
	return v.Store.UpdateRecord(ctx, kind, req)
}

func (v vanishingStore) DeleteRecord(ctx context.Context, kind models.Kind, req secondary.DeleteRequest) (*secondary.BatchResponse, error) {
	_, _ = v.Store.DeleteRecord(ctx, kind, req)
	return v.Store.DeleteRecord(ctx, kind, req)
}

func TestRecordDeletedBeforeWriteIsNotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	id := store.Seed(models.KindFarm, secondary.Record{
		"Name": "North", "location": "Story County, IA", "size": "80",
		"size_unit": "acres", "created_at": "2024-01-01T00:00:00Z",
	})
	farms := NewFarmService(vanishingStore{store}, nil, WithClock(fixedClock))
	raw := strconv.FormatInt(id, 10)

	_, err := farms.Update(ctx, raw, primary.Payload{"name": "South"})
	if !errors.Is(err, farmerr.ErrNotFound) {
		t.Errorf("Update: expected NotFound, got %v", err)
	}

	id = store.Seed(models.KindFarm, secondary.Record{
		"Name": "East", "location": "Story County, IA", "size": "80",
		"size_unit": "acres", "created_at": "2024-01-01T00:00:00Z",
	})
	if err := farms.Delete(ctx, strconv.FormatInt(id, 10)); !errors.Is(err, farmerr.ErrNotFound) {
		t.Errorf("Delete: expected NotFound, got %v", err)
	}
}
