package types

import "errors"

// Store is a backend-agnostic home for items. Callers attach to a backend,
// work with its item table, and detach when done.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates DataDir if it does not exist. Returns ErrAlreadyAttached if
	// called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, Items returns ErrStoreDetached.
	Detach() error

	// Items returns the item table of an attached store.
	Items() (ItemTable, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
