package items

import (
	"sync"
	"testing"

	"github.com/mesh-intelligence/samples/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllHasTenItems(t *testing.T) {
	assert.Len(t, All(), 10)
}

func TestAllIDsPositiveAndUnique(t *testing.T) {
	seen := make(map[int]bool)
	for _, it := range All() {
		assert.Positive(t, it.ID)
		assert.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
	}
}

func TestAllAuthoredOrder(t *testing.T) {
	for i, it := range All() {
		assert.Equal(t, i+1, it.ID)
	}
}

func TestAllKnownRecords(t *testing.T) {
	tests := []struct {
		id   int
		want types.Item
	}{
		{1, types.Item{ID: 1, Title: "항목 1", Description: "첫 번째 항목입니다."}},
		{5, types.Item{ID: 5, Title: "항목 5", Description: "다섯 번째 항목입니다."}},
		{10, types.Item{ID: 10, Title: "항목 10", Description: "열 번째 항목입니다."}},
	}

	all := All()
	for _, tt := range tests {
		t.Run(tt.want.Title, func(t *testing.T) {
			require.GreaterOrEqual(t, len(all), tt.id)
			assert.Equal(t, tt.want, all[tt.id-1])
		})
	}
}

func TestAllRecordsValidate(t *testing.T) {
	for _, it := range All() {
		assert.NoError(t, it.Validate(), "item %d", it.ID)
		assert.NotEmpty(t, it.Description, "item %d", it.ID)
	}
}

func TestAllRepeatable(t *testing.T) {
	assert.Equal(t, All(), All())
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].Title = "changed"
	copy(first[1:], first[2:])

	second := All()
	require.Len(t, second, 10)
	assert.Equal(t, "항목 1", second[0].Title)
	assert.Equal(t, 2, second[1].ID)
}

func TestAllConcurrentReaders(t *testing.T) {
	want := All()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := All()
			got[3].Description = ""
			assert.Equal(t, want[9], got[9])
		}()
	}
	wg.Wait()

	assert.Equal(t, want, All())
}
