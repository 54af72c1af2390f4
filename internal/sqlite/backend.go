// Package sqlite implements the SQLite item store. JSONL files in the data
// directory are the source of truth; SQLite is a query engine rebuilt from
// them on every Attach.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/samples/pkg/types"
)

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "samples.db"

// Compile-time interface check.
var _ types.Store = (*Backend)(nil)

// Backend implements types.Store using SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	items    *itemsTable
	logger   *slog.Logger

	// writeMu serializes writes so each JSONL rewrite sees a settled table.
	writeMu sync.Mutex
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{logger: slog.Default()}
}

// WithLogger sets the logger used for attach and seeding events.
func (b *Backend) WithLogger(logger *slog.Logger) *Backend {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Attach creates DataDir if needed, rebuilds the SQLite database from
// items.jsonl, and seeds the built-in items on first run.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if config.Backend != types.BackendSQLite {
		return fmt.Errorf("%w: %s", types.ErrBackendUnknown, config.Backend)
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The database is a cache of items.jsonl; start from a fresh file.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	// One connection avoids SQLITE_BUSY between concurrent readers and writers.
	db.SetMaxOpenConns(1)

	if err := b.initDB(db, dataDir); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.items = &itemsTable{backend: b, jsonlPath: filepath.Join(dataDir, itemsJSONL)}
	b.attached = true
	return nil
}

// initDB applies the schema, then loads items.jsonl or, when the file does
// not exist yet, seeds the built-in items and writes it.
func (b *Backend) initDB(db *sql.DB, dataDir string) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	jsonlPath := filepath.Join(dataDir, itemsJSONL)
	exists, err := jsonlExists(jsonlPath)
	if err != nil {
		return err
	}
	if exists {
		loaded, err := loadItemsJSONL(db, jsonlPath)
		if err != nil {
			return fmt.Errorf("load JSONL: %w", err)
		}
		b.logger.Debug("loaded items", "path", jsonlPath, "count", loaded)
		return nil
	}

	// First run. items.jsonl only appears once the seed rows are written to
	// it, so a failed seed is retried on the next Attach.
	seeded, err := seedBuiltInItems(db, jsonlPath)
	if err != nil {
		return err
	}
	b.logger.Info("seeded built-in items", "backend", types.BackendSQLite, "count", seeded)
	return nil
}

// Items returns the item table. Returns ErrStoreDetached if not attached.
func (b *Backend) Items() (types.ItemTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.items, nil
}

// Detach closes the SQLite connection. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	b.attached = false
	b.items = nil
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		if err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
	}
	return nil
}
