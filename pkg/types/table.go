package types

import "errors"

// Filter keys accepted by ItemTable.Fetch.
const (
	FilterTitle       = "title"
	FilterDescription = "description"
)

// ItemTable provides read and write access to the items held by a store.
type ItemTable interface {
	// Get retrieves the item with the given ID.
	// Returns ErrInvalidID for non-positive IDs and ErrNotFound if no item
	// has that ID.
	Get(id int) (Item, error)

	// Fetch returns all items matching the filter, ordered by ID. A nil or
	// empty filter returns every item. Keys are FilterTitle and
	// FilterDescription; values must be strings and match exactly.
	Fetch(filter map[string]any) ([]Item, error)

	// Set creates or replaces an item. When item.ID is zero the next free ID
	// (highest existing ID plus one) is assigned; ErrIDExhausted is returned
	// when that would overflow. Returns the ID used.
	Set(item Item) (int, error)

	// Delete removes the item with the given ID.
	// Returns ErrInvalidID for non-positive IDs and ErrNotFound if absent.
	Delete(id int) error
}

// Item operation errors.
var (
	ErrNotFound      = errors.New("item not found")
	ErrInvalidID     = errors.New("invalid item ID")
	ErrInvalidTitle  = errors.New("item title must be non-empty and at most 1 KiB")
	ErrInvalidFilter = errors.New("invalid filter")

	ErrInvalidDescription = errors.New("item description exceeds 1 MiB")

	// ErrIDExhausted is returned by Set when an ID must be assigned but the
	// highest stored ID is already the largest int.
	ErrIDExhausted = errors.New("no item IDs left to assign")
)

// ValidateFilter checks that every key in filter is known and every value is
// a string.
func ValidateFilter(filter map[string]any) error {
	for k, v := range filter {
		if k != FilterTitle && k != FilterDescription {
			return ErrInvalidFilter
		}
		if _, ok := v.(string); !ok {
			return ErrInvalidFilter
		}
	}
	return nil
}

// MatchFilter reports whether item satisfies a filter that already passed
// ValidateFilter.
func MatchFilter(item Item, filter map[string]any) bool {
	if v, ok := filter[FilterTitle]; ok && item.Title != v.(string) {
		return false
	}
	if v, ok := filter[FilterDescription]; ok && item.Description != v.(string) {
		return false
	}
	return true
}
