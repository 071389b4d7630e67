package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/farmhand/internal/core/farm"
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/primary"
	"github.com/example/farmhand/internal/ports/secondary"
)

// FarmServiceImpl implements the FarmService interface.
type FarmServiceImpl struct {
	repo repository
}

// NewFarmService creates a new FarmService with injected dependencies.
func NewFarmService(store secondary.RecordStore, logger *zap.Logger, opts ...Option) *FarmServiceImpl {
	return &FarmServiceImpl{repo: newRepository(store, models.KindFarm, logger, opts)}
}

// List returns every farm.
func (s *FarmServiceImpl) List(ctx context.Context) ([]models.Farm, error) {
	recs := s.repo.list(ctx, nil)
	farms := make([]models.Farm, 0, len(recs))
	for _, rec := range recs {
		farms = append(farms, farm.FromRecord(rec))
	}
	return farms, nil
}

// Get retrieves a farm by ID.
func (s *FarmServiceImpl) Get(ctx context.Context, id string) (*models.Farm, error) {
	_, rec, err := s.repo.get(ctx, "get", id)
	if err != nil {
		return nil, err
	}
	f := farm.FromRecord(rec)
	return &f, nil
}

// Create creates a new farm. created_at is always stamped here.
func (s *FarmServiceImpl) Create(ctx context.Context, payload primary.Payload) (*models.Farm, error) {
	rec := normalize.Canonicalize(models.KindFarm, payload)
	rec["created_at"] = s.repo.stamp()

	f, result := farm.CanSaveFarm(rec)
	if !result.Allowed {
		return nil, s.repo.invalid("create", result.Reason, result.Fields)
	}

	created, err := s.repo.create(ctx, farm.ToRecord(f))
	if err != nil {
		return nil, err
	}
	out := farm.FromRecord(created)
	return &out, nil
}

// Update merges payload over the stored farm. created_at is never rewritten.
func (s *FarmServiceImpl) Update(ctx context.Context, id string, payload primary.Payload) (*models.Farm, error) {
	farmID, stored, err := s.repo.get(ctx, "update", id)
	if err != nil {
		return nil, err
	}
	merged := s.repo.merge(stored, payload)
	merged["created_at"] = stored["created_at"]

	f, result := farm.CanSaveFarm(merged)
	if !result.Allowed {
		return nil, s.repo.invalid("update", result.Reason, result.Fields)
	}

	rec := farm.ToRecord(f)
	delete(rec, "created_at")
	updated, err := s.repo.update(ctx, "update", farmID, rec)
	if err != nil {
		return nil, err
	}
	out := farm.FromRecord(updated)
	return &out, nil
}

// Delete deletes a farm. Crops, tasks and transactions referencing it are
// left in place and resolve as orphans.
func (s *FarmServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.remove(ctx, id)
}

// Ensure FarmServiceImpl implements the interface
var _ primary.FarmService = (*FarmServiceImpl)(nil)
