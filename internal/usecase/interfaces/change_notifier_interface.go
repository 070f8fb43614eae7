package interfaces

//go:generate mockgen -source=change_notifier_interface.go -destination=mocks/mock_change_notifier_interface.go -package=mock_interfaces

import "context"

// IChangeNotifier delivers "table changed" signals, one channel per table.
// Subscribers re-read the whole table; no delta is carried.
type IChangeNotifier interface {
	Publish(ctx context.Context, table string) error
	// Subscribe calls onChange for every change of table until cancel is
	// called or ctx is done.
	Subscribe(ctx context.Context, table string, onChange func(table string)) (cancel func(), err error)
}
