// This file implements built-in item seeding on first attach.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/samples/pkg/items"
)

// seedItems supplies the first-run rows.
var seedItems = items.All

// seedBuiltInItems inserts the compiled-in items when the items table is
// empty and writes them to items.jsonl. Seeding is idempotent: a table that
// already holds rows is left alone. It returns the number of rows seeded.
func seedBuiltInItems(db *sql.DB, jsonlPath string) (int, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	seed := seedItems()
	for _, it := range seed {
		_, err := tx.Exec(
			"INSERT INTO items (id, title, description) VALUES (?, ?, ?)",
			it.ID, it.Title, it.Description,
		)
		if err != nil {
			return 0, fmt.Errorf("seeding item %d: %w", it.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing seed transaction: %w", err)
	}

	if err := persistItemsJSONL(db, jsonlPath); err != nil {
		return 0, fmt.Errorf("persisting seeded items: %w", err)
	}
	return len(seed), nil
}
