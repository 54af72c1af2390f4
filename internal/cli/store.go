// Shared helpers for commands that work against the item store.
package cli

import (
	"fmt"

	"github.com/mesh-intelligence/samples/internal/paths"
	"github.com/mesh-intelligence/samples/pkg/backend"
	"github.com/mesh-intelligence/samples/pkg/types"
)

// storeConfig resolves the backend name and data directory.
// Data dir precedence: --data-dir > config.yaml data_dir > SAMPLES_DATA_DIR > default.
func (a *app) storeConfig() (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, a.config.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	return types.Config{
		Backend: a.config.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}, nil
}

// withItems opens the configured store, runs fn against its item table, and
// detaches. A detach failure is reported only when fn succeeded.
func (a *app) withItems(fn func(tbl types.ItemTable) error) (err error) {
	cfg, err := a.storeConfig()
	if err != nil {
		return err
	}

	store, err := backend.Open(cfg, a.logger)
	if err != nil {
		return err
	}
	defer func() {
		if derr := store.Detach(); derr != nil && err == nil {
			err = fmt.Errorf("detach store: %w", derr)
		}
	}()

	tbl, err := store.Items()
	if err != nil {
		return err
	}
	return fn(tbl)
}
