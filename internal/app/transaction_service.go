package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/farmhand/internal/core/farmerr"
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/core/transaction"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/primary"
	"github.com/example/farmhand/internal/ports/secondary"
)

// TransactionServiceImpl implements the TransactionService interface.
type TransactionServiceImpl struct {
	repo repository
}

// NewTransactionService creates a new TransactionService with injected dependencies.
func NewTransactionService(store secondary.RecordStore, logger *zap.Logger, opts ...Option) *TransactionServiceImpl {
	return &TransactionServiceImpl{repo: newRepository(store, models.KindTransaction, logger, opts)}
}

// List returns transactions, optionally scoped by farm, type and date range.
func (s *TransactionServiceImpl) List(ctx context.Context, filters primary.TransactionFilters) ([]models.Transaction, error) {
	where, err := fkEqualTo("farm_id", filters.FarmID)
	if err != nil {
		return nil, err
	}
	where = append(where, equalTo("type", filters.Type)...)

	dateRange, err := dateConditions(s.repo.op("list"), filters.From, filters.To)
	if err != nil {
		return nil, err
	}
	where = append(where, dateRange...)

	recs := s.repo.list(ctx, where)
	txns := make([]models.Transaction, 0, len(recs))
	for _, rec := range recs {
		txns = append(txns, transaction.FromRecord(rec))
	}
	return txns, nil
}

// dateConditions bounds "date" to [from, to]. The upper bound is expressed
// as before the following day so timestamps on the last day still match.
func dateConditions(op, from, to string) ([]secondary.Condition, error) {
	var where []secondary.Condition
	var fields []farmerr.FieldError
	if from != "" {
		d, ok := normalize.ParseDate(from)
		if !ok {
			fields = append(fields, farmerr.FieldError{Field: "from", Message: "must be a valid date"})
		} else {
			where = append(where, secondary.Condition{
				Field: "date", Operator: secondary.OpGreaterThanOrEqualTo, Values: []string{d.Format(normalize.DateLayout)},
			})
		}
	}
	if to != "" {
		d, ok := normalize.ParseDate(to)
		if !ok {
			fields = append(fields, farmerr.FieldError{Field: "to", Message: "must be a valid date"})
		} else {
			where = append(where, secondary.Condition{
				Field: "date", Operator: secondary.OpLessThan, Values: []string{d.AddDate(0, 0, 1).Format(normalize.DateLayout)},
			})
		}
	}
	if len(fields) > 0 {
		return nil, farmerr.Validation(op, "invalid date range", fields...)
	}
	return where, nil
}

// Get retrieves a transaction by ID.
func (s *TransactionServiceImpl) Get(ctx context.Context, id string) (*models.Transaction, error) {
	_, rec, err := s.repo.get(ctx, "get", id)
	if err != nil {
		return nil, err
	}
	t := transaction.FromRecord(rec)
	return &t, nil
}

// Create creates a new transaction.
func (s *TransactionServiceImpl) Create(ctx context.Context, payload primary.Payload) (*models.Transaction, error) {
	t, result := transaction.CanSaveTransaction(normalize.Canonicalize(models.KindTransaction, payload))
	if !result.Allowed {
		return nil, s.repo.invalid("create", result.Reason, result.Fields)
	}

	created, err := s.repo.create(ctx, transaction.ToRecord(t))
	if err != nil {
		return nil, err
	}
	out := transaction.FromRecord(created)
	return &out, nil
}

// Update merges payload over the stored transaction.
func (s *TransactionServiceImpl) Update(ctx context.Context, id string, payload primary.Payload) (*models.Transaction, error) {
	txnID, stored, err := s.repo.get(ctx, "update", id)
	if err != nil {
		return nil, err
	}

	t, result := transaction.CanSaveTransaction(s.repo.merge(stored, payload))
	if !result.Allowed {
		return nil, s.repo.invalid("update", result.Reason, result.Fields)
	}

	updated, err := s.repo.update(ctx, "update", txnID, transaction.ToRecord(t))
	if err != nil {
		return nil, err
	}
	out := transaction.FromRecord(updated)
	return &out, nil
}

// Delete deletes a transaction.
func (s *TransactionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.remove(ctx, id)
}

// Ensure TransactionServiceImpl implements the interface
var _ primary.TransactionService = (*TransactionServiceImpl)(nil)
