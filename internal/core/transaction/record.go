package transaction

import (
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
)

// FromRecord builds a Transaction from a canonical record. A stored
// negative amount is read as its magnitude.
func FromRecord(rec map[string]any) models.Transaction {
	id, _ := normalize.ParseID(rec[normalize.IDField])
	farmID, _ := normalize.OptionalFK(rec["farm_id"])
	amount, _ := normalize.Decimal(rec["amount"])
	return models.Transaction{
		ID:          id,
		FarmID:      farmID,
		Type:        normalize.String(rec["type"]),
		Category:    normalize.String(rec["category"]),
		Amount:      amount.Abs(),
		Date:        normalize.String(rec["date"]),
		Description: normalize.String(rec["description"]),
	}
}

// ToRecord renders a Transaction in the storage naming convention, without Id.
func ToRecord(t models.Transaction) map[string]any {
	return map[string]any{
		"farm_id":     t.FarmID,
		"type":        t.Type,
		"category":    t.Category,
		"amount":      t.Amount.String(),
		"date":        t.Date,
		"description": t.Description,
	}
}
