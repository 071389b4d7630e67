package app

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/example/farmhand/internal/core/farmerr"
	"github.com/example/farmhand/internal/ports/primary"
)

func TestTransactionService_Create(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	txn, err := s.transactions.Create(ctx, primary.Payload{
		"farmId":      "1",
		"type":        "income",
		"category":    "Grain Sales",
		"amount":      "1500.75",
		"date":        "2024-06-02",
		"description": "Sold 300 bu",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if txn.Amount.String() != "1500.75" || txn.Type != "income" {
		t.Errorf("unexpected transaction: %+v", txn)
	}

	_, err = s.transactions.Create(ctx, primary.Payload{
		"farmId": "1", "type": "expense", "category": "Grain Sales",
		"amount": "10", "date": "2024-06-02", "description": "x",
	})
	var fe *farmerr.Error
	if !errors.As(err, &fe) || !fe.HasField("category") {
		t.Errorf("expected category mismatch to fail, got %v", err)
	}
}

func TestTransactionService_CreateRejectsNonFiniteAmount(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	for _, amount := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := s.transactions.Create(ctx, primary.Payload{
			"farmId": "1", "type": "expense", "category": "Fuel",
			"amount": amount, "date": "2024-06-02", "description": "diesel",
		})
		var fe *farmerr.Error
		if !errors.Is(err, farmerr.ErrValidation) || !errors.As(err, &fe) || !fe.HasField("amount") {
			t.Errorf("amount %v: expected ValidationError on amount, got %v", amount, err)
		}
	}
}

func TestTransactionService_List(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	seedTransaction(s, 1, "expense", "Seeds", "100", "2024-05-31")
	seedTransaction(s, 1, "income", "Grain Sales", "900", "2024-06-01")
	seedTransaction(s, 2, "expense", "Fuel", "50", "2024-06-30T17:00:00Z")
	seedTransaction(s, 2, "expense", "Labor", "75", "2024-07-01")

	tests := []struct {
		name    string
		filters primary.TransactionFilters
		want    int
	}{
		{"everything", primary.TransactionFilters{}, 4},
		{"by farm", primary.TransactionFilters{FarmID: "2"}, 2},
		{"by type", primary.TransactionFilters{Type: "expense"}, 3},
		{"june inclusive", primary.TransactionFilters{From: "2024-06-01", To: "2024-06-30"}, 2},
		{"expenses in june", primary.TransactionFilters{Type: "expense", From: "2024-06-01", To: "2024-06-30"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns, err := s.transactions.List(ctx, tt.filters)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(txns) != tt.want {
				t.Errorf("got %d transactions, want %d", len(txns), tt.want)
			}
		})
	}

	if _, err := s.transactions.List(ctx, primary.TransactionFilters{From: "June"}); !errors.Is(err, farmerr.ErrValidation) {
		t.Errorf("expected ValidationError for bad date filter, got %v", err)
	}
}

func TestTransactionService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	seedTransaction(s, 1, "expense", "Seeds", "100", "2024-05-31")

	txn, err := s.transactions.Update(ctx, "1", primary.Payload{"amount": "125.5"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if txn.Amount.String() != "125.5" || txn.Category != "Seeds" {
		t.Errorf("unexpected transaction: %+v", txn)
	}

	if _, err := s.transactions.Update(ctx, "1", primary.Payload{"amount": "0"}); !errors.Is(err, farmerr.ErrValidation) {
		t.Errorf("expected ValidationError for zero amount, got %v", err)
	}
	if err := s.transactions.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.transactions.Delete(ctx, "1"); !errors.Is(err, farmerr.ErrNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}
