package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/farmhand/internal/ports/primary"
)

// TransactionAdapter is a thin adapter that translates CLI operations to
// TransactionService calls.
type TransactionAdapter struct {
	service primary.TransactionService
	out     io.Writer
}

// NewTransactionAdapter creates a new TransactionAdapter with the given service.
func NewTransactionAdapter(service primary.TransactionService, out io.Writer) *TransactionAdapter {
	return &TransactionAdapter{
		service: service,
		out:     out,
	}
}

// List lists transactions in store order.
func (a *TransactionAdapter) List(ctx context.Context, filters primary.TransactionFilters) error {
	txns, err := a.service.List(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	if len(txns) == 0 {
		fmt.Fprintln(a.out, "No transactions found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-6s %-12s %-6s %-22s %s\n", "ID", "DATE", "FARM", "CATEGORY", "AMOUNT")
	fmt.Fprintln(a.out, rule)
	for _, t := range txns {
		fmt.Fprintf(a.out, "%-6d %-12s %-6d %-22s %s\n", t.ID, t.Date, t.FarmID, t.Category, signedMoney(t.Signed()))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Create records a new transaction.
func (a *TransactionAdapter) Create(ctx context.Context, payload primary.Payload) error {
	txn, err := a.service.Create(ctx, payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Recorded %s %d: %s %s\n", txn.Type, txn.ID, txn.Category, money(txn.Amount))
	return nil
}

// Update corrects a recorded transaction.
func (a *TransactionAdapter) Update(ctx context.Context, id string, payload primary.Payload) error {
	if len(payload) == 0 {
		return fmt.Errorf("must specify at least one field to update")
	}

	txn, err := a.service.Update(ctx, id, payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Transaction %d updated: %s %s\n", txn.ID, txn.Category, signedMoney(txn.Signed()))
	return nil
}

// Delete deletes a transaction.
func (a *TransactionAdapter) Delete(ctx context.Context, id string) error {
	if err := a.service.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Transaction %s deleted\n", id)
	return nil
}
