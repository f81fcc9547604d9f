package ports

import "context"

// EventConsumer drains asset events from the broker; prune-delete events
// carry the remote cleanup work.
type EventConsumer interface {
	Connect(dsn string) error
	Init() error
	DeliveryWorker(ctx context.Context)
}
