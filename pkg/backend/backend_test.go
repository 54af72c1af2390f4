package backend

import (
	"testing"

	"github.com/mesh-intelligence/samples/pkg/items"
	"github.com/mesh-intelligence/samples/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	for _, name := range []string{types.BackendSQLite, types.BackendBolt} {
		t.Run(name, func(t *testing.T) {
			store, err := Open(types.Config{Backend: name, DataDir: t.TempDir()}, nil)
			require.NoError(t, err)
			defer store.Detach()

			tbl, err := store.Items()
			require.NoError(t, err)

			all, err := tbl.Fetch(nil)
			require.NoError(t, err)
			assert.Equal(t, items.All(), all)

			first, err := tbl.Get(1)
			require.NoError(t, err)
			assert.Equal(t, "첫 번째 항목입니다.", first.Description)
		})
	}
}

func TestOpenRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  types.Config
		wantErr error
	}{
		{"empty backend", types.Config{DataDir: t.TempDir()}, types.ErrBackendEmpty},
		{"unknown backend", types.Config{Backend: "mysql", DataDir: t.TempDir()}, types.ErrBackendUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.config, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New("", nil)
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	_, err = New("redis", nil)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)

	store, err := New(types.BackendBolt, nil)
	require.NoError(t, err)
	_, err = store.Items()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}
