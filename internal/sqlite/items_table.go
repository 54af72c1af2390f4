// This file implements the items table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mesh-intelligence/samples/pkg/types"
)

var _ types.ItemTable = (*itemsTable)(nil)

// itemsTable implements types.ItemTable. Reads go to SQLite; every write
// also rewrites items.jsonl.
type itemsTable struct {
	backend   *Backend
	jsonlPath string
}

// withDB runs fn with the backend's database while holding the read lock.
func (t *itemsTable) withDB(fn func(db *sql.DB) error) error {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	if !t.backend.attached {
		return types.ErrStoreDetached
	}
	return fn(t.backend.db)
}

// Get retrieves an item by ID.
func (t *itemsTable) Get(id int) (types.Item, error) {
	if id <= 0 {
		return types.Item{}, types.ErrInvalidID
	}

	var it types.Item
	err := t.withDB(func(db *sql.DB) error {
		err := db.QueryRow(
			"SELECT id, title, description FROM items WHERE id = ?", id,
		).Scan(&it.ID, &it.Title, &it.Description)
		if errors.Is(err, sql.ErrNoRows) {
			return types.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("getting item %d: %w", id, err)
		}
		return nil
	})
	return it, err
}

// Fetch returns the items matching filter, ordered by ID.
func (t *itemsTable) Fetch(filter map[string]any) ([]types.Item, error) {
	if err := types.ValidateFilter(filter); err != nil {
		return nil, err
	}

	query := "SELECT id, title, description FROM items"
	var (
		conds []string
		args  []any
	)
	if v, ok := filter[types.FilterTitle]; ok {
		conds = append(conds, "title = ?")
		args = append(args, v)
	}
	if v, ok := filter[types.FilterDescription]; ok {
		conds = append(conds, "description = ?")
		args = append(args, v)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id ASC"

	var result []types.Item
	err := t.withDB(func(db *sql.DB) error {
		var err error
		result, err = queryItems(db, query, args...)
		return err
	})
	return result, err
}

// Set creates or replaces an item and rewrites items.jsonl.
func (t *itemsTable) Set(item types.Item) (int, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}

	t.backend.writeMu.Lock()
	defer t.backend.writeMu.Unlock()

	id := item.ID
	err := t.withDB(func(db *sql.DB) error {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction: %w", err)
		}
		defer tx.Rollback()

		if id == 0 {
			var last int
			if err := tx.QueryRow("SELECT COALESCE(MAX(id), 0) FROM items").Scan(&last); err != nil {
				return fmt.Errorf("assigning item id: %w", err)
			}
			if last == math.MaxInt {
				return types.ErrIDExhausted
			}
			id = last + 1
		}

		_, err = tx.Exec(
			`INSERT INTO items (id, title, description) VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET title = excluded.title, description = excluded.description`,
			id, item.Title, item.Description,
		)
		if err != nil {
			return fmt.Errorf("persisting item: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing item: %w", err)
		}

		if err := persistItemsJSONL(db, t.jsonlPath); err != nil {
			return fmt.Errorf("persisting %s: %w", itemsJSONL, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes an item and rewrites items.jsonl.
func (t *itemsTable) Delete(id int) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	t.backend.writeMu.Lock()
	defer t.backend.writeMu.Unlock()

	return t.withDB(func(db *sql.DB) error {
		res, err := db.Exec("DELETE FROM items WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting item %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting item %d: %w", id, err)
		}
		if n == 0 {
			return types.ErrNotFound
		}

		if err := persistItemsJSONL(db, t.jsonlPath); err != nil {
			return fmt.Errorf("persisting %s: %w", itemsJSONL, err)
		}
		return nil
	})
}

// queryItems runs a SELECT returning (id, title, description) rows.
func queryItems(db *sql.DB, query string, args ...any) ([]types.Item, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	result := []types.Item{}
	for rows.Next() {
		var it types.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Description); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return result, nil
}

// persistItemsJSONL writes every row of the items table to path, ordered by ID.
func persistItemsJSONL(db *sql.DB, path string) error {
	all, err := queryItems(db, "SELECT id, title, description FROM items ORDER BY id ASC")
	if err != nil {
		return err
	}

	records := make([]json.RawMessage, 0, len(all))
	for _, it := range all {
		data, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("marshaling item %d: %w", it.ID, err)
		}
		records = append(records, data)
	}
	return writeJSONL(path, records)
}
