package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/farmhand/internal/core/crop"
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/primary"
	"github.com/example/farmhand/internal/ports/secondary"
)

// CropServiceImpl implements the CropService interface.
type CropServiceImpl struct {
	repo repository
}

// NewCropService creates a new CropService with injected dependencies.
func NewCropService(store secondary.RecordStore, logger *zap.Logger, opts ...Option) *CropServiceImpl {
	return &CropServiceImpl{repo: newRepository(store, models.KindCrop, logger, opts)}
}

// List returns crops, optionally scoped to a farm or status.
func (s *CropServiceImpl) List(ctx context.Context, filters primary.CropFilters) ([]models.Crop, error) {
	where, err := fkEqualTo("farm_id", filters.FarmID)
	if err != nil {
		return nil, err
	}
	where = append(where, equalTo("status", filters.Status)...)

	recs := s.repo.list(ctx, where)
	crops := make([]models.Crop, 0, len(recs))
	for _, rec := range recs {
		crops = append(crops, crop.FromRecord(rec))
	}
	return crops, nil
}

// Get retrieves a crop by ID.
func (s *CropServiceImpl) Get(ctx context.Context, id string) (*models.Crop, error) {
	_, rec, err := s.repo.get(ctx, "get", id)
	if err != nil {
		return nil, err
	}
	c := crop.FromRecord(rec)
	return &c, nil
}

// Create creates a new crop.
func (s *CropServiceImpl) Create(ctx context.Context, payload primary.Payload) (*models.Crop, error) {
	c, result := crop.CanSaveCrop(normalize.Canonicalize(models.KindCrop, payload))
	if !result.Allowed {
		return nil, s.repo.invalid("create", result.Reason, result.Fields)
	}

	created, err := s.repo.create(ctx, crop.ToRecord(c))
	if err != nil {
		return nil, err
	}
	out := crop.FromRecord(created)
	return &out, nil
}

// Update merges payload over the stored crop.
func (s *CropServiceImpl) Update(ctx context.Context, id string, payload primary.Payload) (*models.Crop, error) {
	cropID, stored, err := s.repo.get(ctx, "update", id)
	if err != nil {
		return nil, err
	}

	c, result := crop.CanSaveCrop(s.repo.merge(stored, payload))
	if !result.Allowed {
		return nil, s.repo.invalid("update", result.Reason, result.Fields)
	}

	updated, err := s.repo.update(ctx, "update", cropID, crop.ToRecord(c))
	if err != nil {
		return nil, err
	}
	out := crop.FromRecord(updated)
	return &out, nil
}

// Delete deletes a crop.
func (s *CropServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.remove(ctx, id)
}

// Ensure CropServiceImpl implements the interface
var _ primary.CropService = (*CropServiceImpl)(nil)
