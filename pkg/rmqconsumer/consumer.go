package rmqconsumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"asset-history-api/config"
	"asset-history-api/internal/infrastructure/mq"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

const deleteTimeout = 30 * time.Second

// FileDeleter removes one object from the remote asset store.
type FileDeleter interface {
	DeleteFile(ctx context.Context, remoteRef string) error
}

// Consumer drains the asset event queue. Prune-delete events trigger a
// best-effort remote deletion; failures are logged and never re-queued,
// since pruning is advisory cleanup only.
type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	deleter    FileDeleter
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
}

func New(cfg config.MQ, logger *zap.Logger, deleter FileDeleter) *Consumer {
	return &Consumer{
		cfg:     cfg,
		log:     logger,
		deleter: deleter,
	}
}

func (c *Consumer) Connect(dsn string) error {
	var err error
	c.conn, err = amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	c.chConsume, err = c.conn.Channel()
	if err != nil {
		_ = c.conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	var err error
	if err = c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err = c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range []string{
		mq.KindUploaded,
		mq.KindActivated,
		mq.KindPruneDelete,
	} {
		if err = c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err = c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	var cerr error
	c.chDelivery, cerr = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if cerr != nil {
		return fmt.Errorf("consume: %w", cerr)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg := <-c.chDelivery:
			if err := c.delivery(ctx, msg); err != nil {
				c.log.Warn("mq delivery error", zap.Error(err))
			}
		case <-ctx.Done():
			c.chConsume.Close()
			return
		}
	}
}

func (c *Consumer) delivery(ctx context.Context, msg amqp091.Delivery) error {
	var e mq.Event
	if err := json.Unmarshal(msg.Body, &e); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}

	switch msg.RoutingKey {
	case mq.KindPruneDelete:
		return c.deletePruned(ctx, e)
	default:
		c.log.Info("asset event",
			zap.String("kind", e.Kind),
			zap.String("owner_id", e.OwnerID),
			zap.String("slot", e.Slot),
			zap.String("version_id", e.VersionID),
		)
	}

	return nil
}

func (c *Consumer) deletePruned(ctx context.Context, e mq.Event) error {
	if e.RemoteRef == "" {
		return fmt.Errorf("prune-delete event %s has no remote ref", e.Id)
	}

	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	if err := c.deleter.DeleteFile(ctx, e.RemoteRef); err != nil {
		// advisory cleanup: the remote object stays orphaned until the
		// store's own retention catches it
		c.log.Warn("pruned version remote delete failed",
			zap.String("remote_ref", e.RemoteRef),
			zap.String("owner_id", e.OwnerID),
			zap.String("slot", e.Slot),
			zap.Error(err),
		)
		return nil
	}

	c.log.Info("pruned version deleted from remote store",
		zap.String("remote_ref", e.RemoteRef),
		zap.String("slot", e.Slot),
	)

	return nil
}
