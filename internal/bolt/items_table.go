package bolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"go.etcd.io/bbolt"

	"github.com/mesh-intelligence/samples/pkg/types"
)

var _ types.ItemTable = (*itemsTable)(nil)

type itemsTable struct {
	backend *Backend
}

func (t *itemsTable) view(fn func(bucket *bbolt.Bucket) error) error {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	if !t.backend.attached {
		return types.ErrStoreDetached
	}
	return t.backend.db.View(func(tx *bbolt.Tx) error {
		return fn(tx.Bucket([]byte(bucketItems)))
	})
}

func (t *itemsTable) update(fn func(bucket *bbolt.Bucket) error) error {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	if !t.backend.attached {
		return types.ErrStoreDetached
	}
	return t.backend.db.Update(func(tx *bbolt.Tx) error {
		return fn(tx.Bucket([]byte(bucketItems)))
	})
}

func (t *itemsTable) Get(id int) (types.Item, error) {
	if id <= 0 {
		return types.Item{}, types.ErrInvalidID
	}

	var it types.Item
	err := t.view(func(bucket *bbolt.Bucket) error {
		data := bucket.Get(itemKey(id))
		if data == nil {
			return types.ErrNotFound
		}
		if err := json.Unmarshal(data, &it); err != nil {
			return fmt.Errorf("decoding item %d: %w", id, err)
		}
		return nil
	})
	return it, err
}

func (t *itemsTable) Fetch(filter map[string]any) ([]types.Item, error) {
	if err := types.ValidateFilter(filter); err != nil {
		return nil, err
	}

	result := []types.Item{}
	err := t.view(func(bucket *bbolt.Bucket) error {
		return bucket.ForEach(func(k, v []byte) error {
			var it types.Item
			if err := json.Unmarshal(v, &it); err != nil {
				return fmt.Errorf("decoding item %d: %w", binary.BigEndian.Uint64(k), err)
			}
			if types.MatchFilter(it, filter) {
				result = append(result, it)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Set upserts an item. Bolt serializes writers, so reading the last key and
// writing the next one happen in a single transaction.
func (t *itemsTable) Set(item types.Item) (int, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}

	err := t.update(func(bucket *bbolt.Bucket) error {
		if item.ID == 0 {
			item.ID = 1
			if k, _ := bucket.Cursor().Last(); k != nil {
				last := binary.BigEndian.Uint64(k)
				if last >= math.MaxInt {
					return types.ErrIDExhausted
				}
				item.ID = int(last) + 1
			}
		}
		return putItem(bucket, item)
	})
	if err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (t *itemsTable) Delete(id int) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	return t.update(func(bucket *bbolt.Bucket) error {
		key := itemKey(id)
		if bucket.Get(key) == nil {
			return types.ErrNotFound
		}
		return bucket.Delete(key)
	})
}
