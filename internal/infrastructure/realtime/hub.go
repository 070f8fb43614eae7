// Package realtime delivers "table changed" signals to subscribers, either
// inside the process (Hub) or across instances through Redis pub/sub.
package realtime

import (
	"context"
	"sync"

	"gestao_compras/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Hub is an in-process change notifier with one logical channel per table.
//
// Each subscriber owns a one-slot buffer: a publish never blocks, and
// signals arriving while one is pending are merged into it. Subscribers
// re-read the whole table, so a merged signal loses nothing.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[uint64]*subscriber
	next uint64
}

type subscriber struct {
	signal chan struct{}
	done   chan struct{}
	once   sync.Once
}

var _ interfaces.IChangeNotifier = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{subs: map[string]map[uint64]*subscriber{}}
}

func (h *Hub) Publish(_ context.Context, table string) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.subs[table] {
		select {
		case s.signal <- struct{}{}:
		default:
			zap.L().Debug("[realtime][hub] signal already pending", zap.String("table", table))
		}
	}
	return nil
}

func (h *Hub) Subscribe(ctx context.Context, table string, onChange func(table string)) (func(), error) {
	s := &subscriber{signal: make(chan struct{}, 1), done: make(chan struct{})}

	h.mu.Lock()
	id := h.next
	h.next++
	if h.subs[table] == nil {
		h.subs[table] = map[uint64]*subscriber{}
	}
	h.subs[table][id] = s
	total := len(h.subs[table])
	h.mu.Unlock()
	zap.L().Debug("[realtime][hub] subscriber registered", zap.String("table", table), zap.Int("total", total))

	cancel := func() {
		s.once.Do(func() {
			h.mu.Lock()
			delete(h.subs[table], id)
			h.mu.Unlock()
			close(s.done)
		})
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				cancel()
				return
			case <-s.done:
				return
			case <-s.signal:
				onChange(table)
			}
		}
	}()
	return cancel, nil
}

// Subscribers returns the number of live subscriptions for table.
func (h *Hub) Subscribers(table string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[table])
}
