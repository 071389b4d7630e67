// Package wire provides dependency injection for the farmhand CLI.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	cliadapter "github.com/example/farmhand/internal/adapters/cli"
	"github.com/example/farmhand/internal/adapters/excel"
	"github.com/example/farmhand/internal/adapters/memory"
	"github.com/example/farmhand/internal/adapters/sqlite"
	"github.com/example/farmhand/internal/app"
	"github.com/example/farmhand/internal/config"
	"github.com/example/farmhand/internal/db"
	"github.com/example/farmhand/internal/logging"
	"github.com/example/farmhand/internal/ports/primary"
	"github.com/example/farmhand/internal/ports/secondary"
)

var (
	cfg                *config.Config
	logger             *zap.Logger
	database           *sqlx.DB
	farmService        primary.FarmService
	cropService        primary.CropService
	taskService        primary.TaskService
	transactionService primary.TransactionService
	inventoryService   primary.InventoryService
	summaryService     primary.SummaryService
	once               sync.Once
)

// Config returns the effective configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	cfg, err = config.Load(cwd)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err = logging.New(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	// Create the record store (secondary port)
	var store secondary.RecordStore
	switch cfg.Store {
	case config.StoreMemory:
		store = memory.NewStore()
	default:
		database, err = db.Open(context.Background(), cfg.DBPath)
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		store = sqlite.NewRecordStore(database)
	}
	logger.Debug("record store ready", zap.String("store", cfg.Store), zap.String("db_path", cfg.DBPath))

	// Create services (primary ports implementation)
	farmService = app.NewFarmService(store, logger)
	cropService = app.NewCropService(store, logger)
	taskService = app.NewTaskService(store, logger)
	transactionService = app.NewTransactionService(store, logger)
	inventoryService = app.NewInventoryService(store, logger)
	summaryService = app.NewSummaryService(farmService, cropService, taskService, transactionService, inventoryService)
}

// Close flushes the logger and closes the database, if either was opened.
func Close() error {
	if logger != nil {
		_ = logger.Sync()
	}
	if database != nil {
		return database.Close()
	}
	return nil
}

// FarmAdapter returns a new FarmAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func FarmAdapter() *cliadapter.FarmAdapter {
	return FarmAdapterWithOutput(os.Stdout)
}

// FarmAdapterWithOutput returns a new FarmAdapter writing to the given output.
func FarmAdapterWithOutput(out io.Writer) *cliadapter.FarmAdapter {
	once.Do(initServices)
	return cliadapter.NewFarmAdapter(farmService, out)
}

// CropAdapter returns a new CropAdapter writing to stdout.
func CropAdapter() *cliadapter.CropAdapter {
	once.Do(initServices)
	return cliadapter.NewCropAdapter(cropService, os.Stdout)
}

// TaskAdapter returns a new TaskAdapter writing to stdout.
func TaskAdapter() *cliadapter.TaskAdapter {
	once.Do(initServices)
	return cliadapter.NewTaskAdapter(taskService, os.Stdout, time.Now)
}

// TransactionAdapter returns a new TransactionAdapter writing to stdout.
func TransactionAdapter() *cliadapter.TransactionAdapter {
	once.Do(initServices)
	return cliadapter.NewTransactionAdapter(transactionService, os.Stdout)
}

// InventoryAdapter returns a new InventoryAdapter writing to stdout.
func InventoryAdapter() *cliadapter.InventoryAdapter {
	once.Do(initServices)
	return cliadapter.NewInventoryAdapter(inventoryService, os.Stdout)
}

// SummaryAdapter returns a new SummaryAdapter writing to stdout.
func SummaryAdapter() *cliadapter.SummaryAdapter {
	once.Do(initServices)
	return cliadapter.NewSummaryAdapter(summaryService, os.Stdout, time.Now)
}

// ExportAdapter returns a new ExportAdapter writing to stdout.
func ExportAdapter() *cliadapter.ExportAdapter {
	once.Do(initServices)
	return cliadapter.NewExportAdapter(summaryService, excel.NewExporter(), os.Stdout)
}
