package usecase

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// WriteState is the optimistic-write state of a collection.
type WriteState string

const (
	StateClean        WriteState = "clean"
	StatePendingWrite WriteState = "pending_write"
	StateError        WriteState = "error"
)

// collection is the in-memory copy of one table.
//
// Writes are optimistic: the cached list changes first, then the store is
// called. A failed write moves the collection to StateError and is returned
// to the caller, but the cached change is kept until the next full re-read.
// Nothing is retried.
type collection[T any] struct {
	table string
	store interfaces.ITableStore
	idOf  func(T) any

	mu      sync.RWMutex
	items   []T
	loaded  bool
	state   WriteState
	lastErr error
}

func newCollection[T any](table string, store interfaces.ITableStore, idOf func(T) any) *collection[T] {
	return &collection[T]{table: table, store: store, idOf: idOf, state: StateClean}
}

// Refresh replaces the cached list with a full read of the table. On error
// the previous list is kept.
func (c *collection[T]) Refresh(ctx context.Context) error {
	rows, err := c.store.Select(ctx, c.table, nil)
	if err != nil {
		zap.L().Warn("[usecase][collection] refresh failed", zap.String("table", c.table), zap.Error(err))
		return err
	}
	items := make([]T, 0, len(rows))
	for _, row := range rows {
		var item T
		if err := entities.FromRow(row, &item); err != nil {
			zap.L().Warn("[usecase][collection] skipping undecodable row",
				zap.String("table", c.table), zap.Any("id", row["id"]), zap.Error(err))
			continue
		}
		items = append(items, item)
	}

	c.mu.Lock()
	c.items = items
	c.loaded = true
	c.mu.Unlock()
	return nil
}

// All returns a copy of the cached list, loading it on first use.
func (c *collection[T]) All(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if !loaded {
		if err := c.Refresh(ctx); err != nil {
			return []T{}, err
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Find returns the cached item with the given id.
func (c *collection[T]) Find(ctx context.Context, id any) (T, bool, error) {
	var zero T
	items, err := c.All(ctx)
	if err != nil {
		return zero, false, err
	}
	key := idString(id)
	for _, it := range items {
		if idString(c.idOf(it)) == key {
			return it, true, nil
		}
	}
	return zero, false, nil
}

// Insert adds item to the cache and writes it to the store.
func (c *collection[T]) Insert(ctx context.Context, item T) error {
	row, err := entities.ToRow(item)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items = append(c.items, item)
	c.state = StatePendingWrite
	c.mu.Unlock()

	return c.finish(c.store.Insert(ctx, c.table, row))
}

// Update replaces the cached item and sends patch to the store.
func (c *collection[T]) Update(ctx context.Context, item T, patch entities.Row) error {
	row, err := entities.ToRow(patch)
	if err != nil {
		return err
	}
	id := c.idOf(item)
	key := idString(id)
	c.mu.Lock()
	for i := range c.items {
		if idString(c.idOf(c.items[i])) == key {
			c.items[i] = item
			break
		}
	}
	c.state = StatePendingWrite
	c.mu.Unlock()

	return c.finish(c.store.Update(ctx, c.table, id, row))
}

// Remove drops the item from the cache and deletes it in the store.
func (c *collection[T]) Remove(ctx context.Context, id any) error {
	key := idString(id)
	c.mu.Lock()
	kept := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if idString(c.idOf(it)) != key {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.state = StatePendingWrite
	c.mu.Unlock()

	return c.finish(c.store.Delete(ctx, c.table, id))
}

// State reports the write state and the error of the last failed write.
func (c *collection[T]) State() (WriteState, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state, c.lastErr
}

// Watch re-reads the table whenever the notifier signals a change.
func (c *collection[T]) Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error) {
	return notifier.Subscribe(ctx, c.table, func(string) {
		refreshCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := c.Refresh(refreshCtx); err == nil {
			zap.L().Debug("[usecase][collection] refreshed on change", zap.String("table", c.table))
		}
	})
}

func (c *collection[T]) finish(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateError
		c.lastErr = err
		zap.L().Error("[usecase][collection] write failed", zap.String("table", c.table), zap.Error(err))
		return err
	}
	c.state = StateClean
	c.lastErr = nil
	return nil
}

func idString(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}

var lastID atomic.Int64

// nextID returns a unique, increasing identifier based on the clock.
func nextID() int64 {
	for {
		now := time.Now().UnixMicro()
		prev := lastID.Load()
		if now <= prev {
			now = prev + 1
		}
		if lastID.CompareAndSwap(prev, now) {
			return now
		}
	}
}
