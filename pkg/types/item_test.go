package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr error
	}{
		{
			name: "valid item",
			item: Item{ID: 1, Title: "항목 1", Description: "첫 번째 항목입니다."},
		},
		{
			name: "zero ID is allowed for assignment",
			item: Item{Title: "new"},
		},
		{
			name: "empty description is allowed",
			item: Item{ID: 3, Title: "bare"},
		},
		{
			name:    "negative ID rejected",
			item:    Item{ID: -1, Title: "x"},
			wantErr: ErrInvalidID,
		},
		{
			name:    "empty title rejected",
			item:    Item{ID: 2},
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "whitespace title rejected",
			item:    Item{ID: 2, Title: "  \t"},
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "oversized title rejected",
			item:    Item{ID: 2, Title: strings.Repeat("x", MaxTitleBytes+1)},
			wantErr: ErrInvalidTitle,
		},
		{
			name: "long Hangul description within limit",
			item: Item{ID: 2, Title: "long", Description: strings.Repeat("가", 30000)},
		},
		{
			name:    "oversized description rejected",
			item:    Item{ID: 2, Title: "big", Description: strings.Repeat("x", MaxDescriptionBytes+1)},
			wantErr: ErrInvalidDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateFilter(t *testing.T) {
	tests := []struct {
		name    string
		filter  map[string]any
		wantErr bool
	}{
		{name: "nil filter", filter: nil},
		{name: "empty filter", filter: map[string]any{}},
		{name: "title", filter: map[string]any{FilterTitle: "항목 1"}},
		{name: "title and description", filter: map[string]any{FilterTitle: "a", FilterDescription: "b"}},
		{name: "unknown key", filter: map[string]any{"state": "ready"}, wantErr: true},
		{name: "non-string value", filter: map[string]any{FilterTitle: 3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilter(tt.filter)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFilter)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMatchFilter(t *testing.T) {
	item := Item{ID: 5, Title: "항목 5", Description: "다섯 번째 항목입니다."}

	assert.True(t, MatchFilter(item, nil))
	assert.True(t, MatchFilter(item, map[string]any{FilterTitle: "항목 5"}))
	assert.True(t, MatchFilter(item, map[string]any{
		FilterTitle:       "항목 5",
		FilterDescription: "다섯 번째 항목입니다.",
	}))
	assert.False(t, MatchFilter(item, map[string]any{FilterTitle: "항목 6"}))
	assert.False(t, MatchFilter(item, map[string]any{
		FilterTitle:       "항목 5",
		FilterDescription: "other",
	}))
}
