package app

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/example/farmhand/internal/adapters/memory"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/primary"
	"github.com/example/farmhand/internal/ports/secondary"
)

// fixedNow is the clock every service test runs against.
var fixedNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// testServices wires every service to one in-memory store.
type testServices struct {
	store        *memory.Store
	farms        *FarmServiceImpl
	crops        *CropServiceImpl
	tasks        *TaskServiceImpl
	transactions *TransactionServiceImpl
	inventory    *InventoryServiceImpl
	summary      *SummaryServiceImpl
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	return newTestServicesWithLogger(zaptest.NewLogger(t))
}

func newTestServicesWithLogger(logger *zap.Logger) *testServices {
	store := memory.NewStore()
	clock := WithClock(fixedClock)
	s := &testServices{
		store:        store,
		farms:        NewFarmService(store, logger, clock),
		crops:        NewCropService(store, logger, clock),
		tasks:        NewTaskService(store, logger, clock),
		transactions: NewTransactionService(store, logger, clock),
		inventory:    NewInventoryService(store, logger, clock),
	}
	s.summary = NewSummaryService(s.farms, s.crops, s.tasks, s.transactions, s.inventory)
	return s
}

func seedFarm(s *testServices, name string) int64 {
	return s.store.Seed(models.KindFarm, secondary.Record{
		"Name":       name,
		"location":   "Story County, IA",
		"size":       "80",
		"size_unit":  "acres",
		"created_at": "2024-01-01T00:00:00Z",
	})
}

func seedCrop(s *testServices, farmID int64, cropType, status string) int64 {
	return s.store.Seed(models.KindCrop, secondary.Record{
		"farm_id":               farmID,
		"crop_type":             cropType,
		"planting_date":         "2024-04-01",
		"expected_harvest_date": "2024-09-01",
		"status":                status,
		"area":                  "10",
	})
}

func seedTask(s *testServices, farmID int64, title, due string) int64 {
	return s.store.Seed(models.KindTask, secondary.Record{
		"farm_id":   farmID,
		"title":     title,
		"type":      "Watering",
		"due_date":  due,
		"completed": false,
	})
}

func seedTransaction(s *testServices, farmID int64, txnType, category, amount, date string) int64 {
	return s.store.Seed(models.KindTransaction, secondary.Record{
		"farm_id":     farmID,
		"type":        txnType,
		"category":    category,
		"amount":      amount,
		"date":        date,
		"description": category,
	})
}

func seedItem(s *testServices, name, category string, current, maxCapacity, threshold int) int64 {
	return s.store.Seed(models.KindInventoryItem, secondary.Record{
		"Name":              name,
		"category":          category,
		"current_stock":     current,
		"max_capacity":      maxCapacity,
		"unit":              "units",
		"supplier":          "Co-op",
		"minimum_threshold": threshold,
	})
}

func validFarmPayload() primary.Payload {
	return primary.Payload{
		"name":     "North Field",
		"location": "Ames, IA",
		"size":     "120",
		"sizeUnit": "acres",
	}
}
