package types

import "strings"

// Size limits for item fields, in bytes of UTF-8.
const (
	MaxTitleBytes       = 1 << 10
	MaxDescriptionBytes = 1 << 20
)

// Item is a single sample record.
type Item struct {
	ID          int    `json:"id"`          // Positive, unique within a table. Zero asks a store to assign one.
	Title       string `json:"title"`       // Short human-readable label (required).
	Description string `json:"description"` // Longer human-readable sentence.
}

// Validate checks that the item can be written to a store.
// An ID of zero is allowed; stores assign the next free ID.
func (i Item) Validate() error {
	if i.ID < 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(i.Title) == "" || len(i.Title) > MaxTitleBytes {
		return ErrInvalidTitle
	}
	if len(i.Description) > MaxDescriptionBytes {
		return ErrInvalidDescription
	}
	return nil
}
