package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/farmhand/internal/core/metrics"
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/core/task"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/primary"
	"github.com/example/farmhand/internal/ports/secondary"
)

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	repo repository
}

// NewTaskService creates a new TaskService with injected dependencies.
func NewTaskService(store secondary.RecordStore, logger *zap.Logger, opts ...Option) *TaskServiceImpl {
	return &TaskServiceImpl{repo: newRepository(store, models.KindTask, logger, opts)}
}

// List returns tasks, optionally scoped to a farm or crop. The status
// filter is applied after the fetch since stores disagree on how booleans
// are written.
func (s *TaskServiceImpl) List(ctx context.Context, filters primary.TaskFilters) ([]models.Task, error) {
	where, err := fkEqualTo("farm_id", filters.FarmID)
	if err != nil {
		return nil, err
	}
	byCrop, err := fkEqualTo("crop_id", filters.CropID)
	if err != nil {
		return nil, err
	}
	where = append(where, byCrop...)

	recs := s.repo.list(ctx, where)
	tasks := make([]models.Task, 0, len(recs))
	for _, rec := range recs {
		tasks = append(tasks, task.FromRecord(rec))
	}
	if isAll(filters.Status) {
		return tasks, nil
	}
	return metrics.FilterTasks(tasks, filters.Status, s.repo.now()), nil
}

// Get retrieves a task by ID.
func (s *TaskServiceImpl) Get(ctx context.Context, id string) (*models.Task, error) {
	_, rec, err := s.repo.get(ctx, "get", id)
	if err != nil {
		return nil, err
	}
	t := task.FromRecord(rec)
	return &t, nil
}

// Create creates a new task. A task created as completed is stamped with
// the current instant unless a completion date is supplied.
func (s *TaskServiceImpl) Create(ctx context.Context, payload primary.Payload) (*models.Task, error) {
	rec := normalize.Canonicalize(models.KindTask, payload)
	task.ApplyCompletion(rec, s.repo.now())

	t, result := task.CanSaveTask(rec)
	if !result.Allowed {
		return nil, s.repo.invalid("create", result.Reason, result.Fields)
	}

	created, err := s.repo.create(ctx, task.ToRecord(t))
	if err != nil {
		return nil, err
	}
	out := task.FromRecord(created)
	return &out, nil
}

// Update merges payload over the stored task, keeping completed_date set
// exactly when completed is true.
func (s *TaskServiceImpl) Update(ctx context.Context, id string, payload primary.Payload) (*models.Task, error) {
	taskID, stored, err := s.repo.get(ctx, "update", id)
	if err != nil {
		return nil, err
	}
	merged := s.repo.merge(stored, payload)
	task.ApplyCompletion(merged, s.repo.now())

	t, result := task.CanSaveTask(merged)
	if !result.Allowed {
		return nil, s.repo.invalid("update", result.Reason, result.Fields)
	}

	updated, err := s.repo.update(ctx, "update", taskID, task.ToRecord(t))
	if err != nil {
		return nil, err
	}
	out := task.FromRecord(updated)
	return &out, nil
}

// Delete deletes a task.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.remove(ctx, id)
}

// ToggleComplete flips completion. completed and completed_date are
// written together in a single update.
func (s *TaskServiceImpl) ToggleComplete(ctx context.Context, id string) (*models.Task, error) {
	taskID, stored, err := s.repo.get(ctx, "toggle_complete", id)
	if err != nil {
		return nil, err
	}

	fields := task.ToggleFields(task.FromRecord(stored), s.repo.now())
	updated, err := s.repo.update(ctx, "toggle_complete", taskID, fields)
	if err != nil {
		return nil, err
	}
	out := task.FromRecord(updated)
	return &out, nil
}

// Ensure TaskServiceImpl implements the interface
var _ primary.TaskService = (*TaskServiceImpl)(nil)
