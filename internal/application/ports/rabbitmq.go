package ports

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	"asset-history-api/internal/infrastructure/mq"
)

// RabbitMQ publishes asset lifecycle events through a buffered worker.
type RabbitMQ interface {
	Connect(ctx context.Context, dsn string) error
	Init() error
	PublisherWorker(ctx context.Context)
	GetInputChan() chan mq.Event
	GetConn() *amqp091.Connection
}
