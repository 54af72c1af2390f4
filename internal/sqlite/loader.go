// This file implements JSONL loading on attach.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/samples/pkg/types"
)

// loadItemsJSONL reads items.jsonl and inserts its records into the items
// table inside one transaction. Records that do not decode into an Item or
// that violate a constraint (duplicate id, blank title, non-positive id) are
// skipped; the first occurrence of an id wins. Unknown fields are ignored.
// It returns the number of rows loaded.
func loadItemsJSONL(db *sql.DB, path string) (int, error) {
	records, err := readJSONL(path)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO items (id, title, description) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing item insert: %w", err)
	}
	defer stmt.Close()

	var loaded int
	for _, rec := range records {
		var it types.Item
		if err := json.Unmarshal(rec, &it); err != nil {
			continue
		}
		if _, err := stmt.Exec(it.ID, it.Title, it.Description); err != nil {
			continue
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load transaction: %w", err)
	}
	return loaded, nil
}
