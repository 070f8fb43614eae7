package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_compras/internal/adapter/persistence/repository"
	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"
	mock_interfaces "gestao_compras/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestStore() *repository.MemoryTableStore {
	return repository.NewMemoryTableStore(interfaces.RequiredTables...)
}

// failingStore fails every write to one table.
type failingStore struct {
	*repository.MemoryTableStore
	table string
	err   error
}

func (s *failingStore) Insert(ctx context.Context, table string, row entities.Row) error {
	if table == s.table {
		return s.err
	}
	return s.MemoryTableStore.Insert(ctx, table, row)
}

func (s *failingStore) Update(ctx context.Context, table string, id any, patch entities.Row) error {
	if table == s.table {
		return s.err
	}
	return s.MemoryTableStore.Update(ctx, table, id, patch)
}

func statusCollection(store interfaces.ITableStore) *collection[entities.Status] {
	return newCollection(interfaces.TableStatuses, store, func(s entities.Status) any { return s.ID })
}

func TestCollection_Refresh(t *testing.T) {
	t.Run("skips undecodable rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITableStore(ctrl)
		c := statusCollection(store)

		store.EXPECT().Select(gomock.Any(), interfaces.TableStatuses, gomock.Nil()).Return([]entities.Row{
			{"id": float64(1), "name": "Pendente", "color": "yellow"},
			{"id": "not-a-number", "name": "Broken"},
		}, nil)

		items, err := c.All(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Pendente" {
			t.Fatalf("expected only the valid row, got %+v", items)
		}
	})

	t.Run("keeps previous list on error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITableStore(ctrl)
		c := statusCollection(store)

		gomock.InOrder(
			store.EXPECT().Select(gomock.Any(), interfaces.TableStatuses, gomock.Nil()).
				Return([]entities.Row{{"id": float64(1), "name": "Pendente"}}, nil),
			store.EXPECT().Select(gomock.Any(), interfaces.TableStatuses, gomock.Nil()).
				Return(nil, errors.New("timeout")),
		)

		if err := c.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := c.Refresh(context.Background()); err == nil {
			t.Fatalf("expected refresh error")
		}
		items, _ := c.All(context.Background())
		if len(items) != 1 {
			t.Fatalf("expected cached item to survive, got %d", len(items))
		}
	})
}

func TestCollection_WriteState(t *testing.T) {
	t.Run("successful write returns to clean", func(t *testing.T) {
		c := statusCollection(newTestStore())
		if err := c.Insert(context.Background(), entities.Status{ID: 1, Name: "Pendente"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st, err := c.State(); st != StateClean || err != nil {
			t.Fatalf("expected clean state, got %s %v", st, err)
		}
	})

	t.Run("failed write keeps optimistic change and reports error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITableStore(ctrl)
		c := statusCollection(store)

		store.EXPECT().Select(gomock.Any(), interfaces.TableStatuses, gomock.Nil()).Return([]entities.Row{}, nil)
		store.EXPECT().Insert(gomock.Any(), interfaces.TableStatuses, gomock.Any()).Return(errors.New("network"))

		if _, err := c.All(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := c.Insert(context.Background(), entities.Status{ID: 7, Name: "Novo"}); err == nil {
			t.Fatalf("expected write error")
		}
		st, lastErr := c.State()
		if st != StateError || lastErr == nil {
			t.Fatalf("expected error state, got %s %v", st, lastErr)
		}
		items, _ := c.All(context.Background())
		if len(items) != 1 || items[0].ID != 7 {
			t.Fatalf("expected optimistic item to stay until re-read, got %+v", items)
		}
	})

	t.Run("update sends plain patch with the id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITableStore(ctrl)
		c := statusCollection(store)

		store.EXPECT().Update(gomock.Any(), interfaces.TableStatuses, int64(3), entities.Row{"color": "red"}).Return(nil)

		if err := c.Update(context.Background(), entities.Status{ID: 3, Color: "red"}, entities.Row{"color": entities.StatusColorRed}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCollection_Watch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
	store := newTestStore()
	c := statusCollection(store)

	var onChange func(string)
	notifier.EXPECT().Subscribe(gomock.Any(), interfaces.TableStatuses, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn func(string)) (func(), error) {
			onChange = fn
			return func() {}, nil
		})

	if _, err := c.Watch(context.Background(), notifier); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items, _ := c.All(context.Background()); len(items) != 0 {
		t.Fatalf("expected empty collection")
	}

	row, _ := entities.ToRow(entities.Status{ID: 1, Name: "Pendente"})
	if err := store.Insert(context.Background(), interfaces.TableStatuses, row); err != nil {
		t.Fatalf("insert: %v", err)
	}
	onChange(interfaces.TableStatuses)

	if items, _ := c.All(context.Background()); len(items) != 1 {
		t.Fatalf("expected re-read after change, got %d items", len(items))
	}
}

func TestNextID_Increasing(t *testing.T) {
	prev := nextID()
	for i := 0; i < 1000; i++ {
		id := nextID()
		if id <= prev {
			t.Fatalf("ids must increase: %d after %d", id, prev)
		}
		prev = id
	}
}
