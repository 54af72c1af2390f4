package sqlite

// Schema DDL for the items table. Ids are positive integers chosen by the
// caller or assigned on write; titles must be non-blank.
const (
	createItems = `CREATE TABLE items (
    id INTEGER PRIMARY KEY CHECK (id > 0),
    title TEXT NOT NULL CHECK (length(trim(title)) > 0),
    description TEXT NOT NULL DEFAULT ''
);`

	idxItemsTitle = `CREATE INDEX idx_items_title ON items(title);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createItems,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxItemsTitle,
}
