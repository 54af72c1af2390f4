// Package backend opens item stores by name. It is the public entry point
// for programs that want a types.Store without importing the internal
// backend packages.
//
// Example:
//
//	store, err := backend.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".samples-db",
//	}, nil)
//	if err != nil {
//	    return err
//	}
//	defer store.Detach()
package backend

import (
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/samples/internal/bolt"
	"github.com/mesh-intelligence/samples/internal/sqlite"
	"github.com/mesh-intelligence/samples/pkg/types"
)

// New returns a detached store for the named backend.
// A nil logger means slog.Default().
func New(name string, logger *slog.Logger) (types.Store, error) {
	switch name {
	case types.BackendSQLite:
		return sqlite.NewBackend().WithLogger(logger), nil
	case types.BackendBolt:
		return bolt.NewBackend().WithLogger(logger), nil
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrBackendUnknown, name)
	}
}

// Open creates the store named by config.Backend and attaches it.
// The caller must Detach the returned store.
func Open(config types.Config, logger *slog.Logger) (types.Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	store, err := New(config.Backend, logger)
	if err != nil {
		return nil, err
	}
	if err := store.Attach(config); err != nil {
		return nil, fmt.Errorf("attaching %s store: %w", config.Backend, err)
	}
	return store, nil
}
