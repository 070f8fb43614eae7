package realtime

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"gestao_compras/internal/adapter/persistence/repository"
	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestNotifier(t *testing.T) (*RedisNotifier, *miniredis.Miniredis) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	n, err := NewRedisNotifier(&redis.Options{Addr: mr.Addr()}, DefaultNamespace)
	require.NoError(t, err)
	t.Cleanup(func() { n.Close() })
	return n, mr
}

func TestHub_PublishReachesOnlyTableSubscribers(t *testing.T) {
	h := NewHub()
	ctx := context.Background()

	got := make(chan string, 4)
	cancel, err := h.Subscribe(ctx, interfaces.TableRequests, func(table string) { got <- table })
	require.NoError(t, err)
	defer cancel()

	var other int32
	cancelOther, _ := h.Subscribe(ctx, interfaces.TableUsers, func(string) { atomic.AddInt32(&other, 1) })
	defer cancelOther()

	require.NoError(t, h.Publish(ctx, interfaces.TableRequests))
	select {
	case table := <-got:
		assert.Equal(t, interfaces.TableRequests, table)
	case <-time.After(time.Second):
		t.Fatal("expected change signal")
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&other))
}

func TestHub_CancelUnregisters(t *testing.T) {
	h := NewHub()
	ctx, stop := context.WithCancel(context.Background())

	cancel, _ := h.Subscribe(context.Background(), interfaces.TableSectors, func(string) {})
	_, _ = h.Subscribe(ctx, interfaces.TableSectors, func(string) {})
	assert.Equal(t, 2, h.Subscribers(interfaces.TableSectors))

	cancel()
	cancel()
	assert.Equal(t, 1, h.Subscribers(interfaces.TableSectors))

	stop()
	assert.Eventually(t, func() bool { return h.Subscribers(interfaces.TableSectors) == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	h := NewHub()
	release := make(chan struct{})
	cancel, _ := h.Subscribe(context.Background(), interfaces.TableRequests, func(string) { <-release })
	defer cancel()
	defer close(release)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			_ = h.Publish(context.Background(), interfaces.TableRequests)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestRedisNotifier(t *testing.T) {
	t.Run("rejects empty namespace", func(t *testing.T) {
		_, err := NewRedisNotifier(&redis.Options{Addr: "localhost:6379"}, "")
		assert.Error(t, err)
	})

	t.Run("channel naming", func(t *testing.T) {
		assert.Equal(t, "compras:requests:changes", ChangesChannel(DefaultNamespace, interfaces.TableRequests))
	})

	t.Run("publish and subscribe", func(t *testing.T) {
		n, _ := setupTestNotifier(t)
		ctx := context.Background()
		require.NoError(t, n.Ping(ctx))

		got := make(chan string, 1)
		cancel, err := n.Subscribe(ctx, interfaces.TablePriceMaps, func(table string) { got <- table })
		require.NoError(t, err)
		defer cancel()

		require.NoError(t, n.Publish(ctx, interfaces.TablePriceMaps))
		select {
		case table := <-got:
			assert.Equal(t, interfaces.TablePriceMaps, table)
		case <-time.After(2 * time.Second):
			t.Fatal("expected change signal from redis")
		}
	})

	t.Run("publish fails when redis is down", func(t *testing.T) {
		n, mr := setupTestNotifier(t)
		mr.Close()
		assert.Error(t, n.Publish(context.Background(), interfaces.TableRequests))
	})
}

type countingNotifier struct {
	published []string
	err       error
}

func (c *countingNotifier) Publish(_ context.Context, table string) error {
	c.published = append(c.published, table)
	return c.err
}

func (c *countingNotifier) Subscribe(context.Context, string, func(string)) (func(), error) {
	return func() {}, nil
}

func TestNotifyingStore(t *testing.T) {
	ctx := context.Background()
	notifier := &countingNotifier{}
	store := NewNotifyingStore(repository.NewMemoryTableStore(interfaces.TableSectors), notifier)

	require.NoError(t, store.Insert(ctx, interfaces.TableSectors, entities.Row{"id": 1, "name": "TI"}))
	require.NoError(t, store.Update(ctx, interfaces.TableSectors, 1, entities.Row{"name": "RH"}))
	_, err := store.Select(ctx, interfaces.TableSectors, nil)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, interfaces.TableSectors, 1))
	assert.Equal(t, []string{"sectors", "sectors", "sectors"}, notifier.published)

	err = store.Delete(ctx, interfaces.TableSectors, 1)
	assert.True(t, errors.Is(err, interfaces.ErrNoRows))
	assert.Len(t, notifier.published, 3, "failed writes do not publish")

	notifier.err = errors.New("redis down")
	assert.NoError(t, store.Insert(ctx, interfaces.TableSectors, entities.Row{"id": 2, "name": "TI"}))
}
