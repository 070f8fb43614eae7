package realtime

import (
	"context"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// NotifyingStore publishes a change signal after every successful write of
// the wrapped store. A failed publish is logged, never returned: the write
// itself succeeded.
type NotifyingStore struct {
	interfaces.ITableStore
	notifier interfaces.IChangeNotifier
}

var _ interfaces.ITableStore = (*NotifyingStore)(nil)

func NewNotifyingStore(store interfaces.ITableStore, notifier interfaces.IChangeNotifier) *NotifyingStore {
	return &NotifyingStore{ITableStore: store, notifier: notifier}
}

func (s *NotifyingStore) Insert(ctx context.Context, table string, row entities.Row) error {
	if err := s.ITableStore.Insert(ctx, table, row); err != nil {
		return err
	}
	s.publish(ctx, table)
	return nil
}

func (s *NotifyingStore) Update(ctx context.Context, table string, id any, patch entities.Row) error {
	if err := s.ITableStore.Update(ctx, table, id, patch); err != nil {
		return err
	}
	s.publish(ctx, table)
	return nil
}

func (s *NotifyingStore) Delete(ctx context.Context, table string, id any) error {
	if err := s.ITableStore.Delete(ctx, table, id); err != nil {
		return err
	}
	s.publish(ctx, table)
	return nil
}

func (s *NotifyingStore) publish(ctx context.Context, table string) {
	if err := s.notifier.Publish(ctx, table); err != nil {
		zap.L().Warn("[realtime][store] publish failed", zap.String("table", table), zap.Error(err))
	}
}
