package realtime

import (
	"context"
	"fmt"
	"sync"

	"gestao_compras/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultNamespace prefixes every Redis channel.
const DefaultNamespace = "compras"

// ChangesChannel is the pub/sub channel of one table, e.g. compras:requests:changes.
func ChangesChannel(namespace, table string) string {
	return fmt.Sprintf("%s:%s:changes", namespace, table)
}

// RedisNotifier fans change signals out to every service instance through
// Redis pub/sub. Delivery is at-most-once; a missed signal is repaired by
// the next one or by the post-write re-read.
type RedisNotifier struct {
	rdb       *redis.Client
	namespace string
}

var _ interfaces.IChangeNotifier = (*RedisNotifier)(nil)

func NewRedisNotifier(opts *redis.Options, namespace string) (*RedisNotifier, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}
	return &RedisNotifier{rdb: redis.NewClient(opts), namespace: namespace}, nil
}

func (n *RedisNotifier) Ping(ctx context.Context) error {
	return n.rdb.Ping(ctx).Err()
}

func (n *RedisNotifier) Close() error {
	return n.rdb.Close()
}

func (n *RedisNotifier) Publish(ctx context.Context, table string) error {
	if err := n.rdb.Publish(ctx, ChangesChannel(n.namespace, table), table).Err(); err != nil {
		return fmt.Errorf("failed to publish change for %s: %w", table, err)
	}
	return nil
}

func (n *RedisNotifier) Subscribe(ctx context.Context, table string, onChange func(table string)) (func(), error) {
	channel := ChangesChannel(n.namespace, table)
	pubsub := n.rdb.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	subCtx, cancelFunc := context.WithCancel(ctx)
	var once sync.Once
	cancel := func() { once.Do(cancelFunc) }

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				zap.L().Debug("[realtime][redis] change received",
					zap.String("channel", msg.Channel), zap.String("table", msg.Payload))
				onChange(table)
			}
		}
	}()
	return cancel, nil
}
