// Package bolt implements an item store on top of a bbolt file. Items live in
// a single bucket keyed by big-endian id, so cursor order is id order.
package bolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/mesh-intelligence/samples/pkg/items"
	"github.com/mesh-intelligence/samples/pkg/types"
)

const (
	dbFileName      = "samples.bolt"
	bucketItems     = "items"
	openLockTimeout = 1 * time.Second
)

var _ types.Store = (*Backend)(nil)

// Backend implements types.Store using bbolt.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	db       *bbolt.DB
	items    *itemsTable
	logger   *slog.Logger
}

// NewBackend returns a detached bolt backend.
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

// Attach opens (or creates) samples.bolt in config.DataDir. The items bucket
// is seeded with the built-in items when it is created.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if config.Backend != types.BackendBolt {
		return fmt.Errorf("%w: %s", types.ErrBackendUnknown, config.Backend)
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dataDir, dbFileName)
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openLockTimeout})
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	var seeded int
	err = db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(bucketItems)) != nil {
			return nil
		}
		bucket, err := tx.CreateBucket([]byte(bucketItems))
		if err != nil {
			return err
		}
		for _, it := range items.All() {
			if err := putItem(bucket, it); err != nil {
				return fmt.Errorf("seeding item %d: %w", it.ID, err)
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return err
	}
	if seeded > 0 {
		b.logger.Info("seeded built-in items", "backend", types.BackendBolt, "count", seeded)
	}
	b.logger.Debug("opened bolt store", "path", path)

	b.db = db
	b.items = &itemsTable{backend: b}
	b.attached = true
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

// Detach closes the bolt file. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	b.items = nil

	err := b.db.Close()
	b.db = nil
	if err != nil {
		return fmt.Errorf("closing bolt store: %w", err)
	}
	return nil
}

func itemKey(id int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}

func putItem(bucket *bbolt.Bucket, it types.Item) error {
	data, err := json.Marshal(&it)
	if err != nil {
		return err
	}
	return bucket.Put(itemKey(it.ID), data)
}
