package kafka

import (
	"context"
	"errors"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/kafka/consumer.go -destination=internal/kafka/consumer_mock_test.go -package=kafka

type MessageHandler interface {
	Handle(ctx context.Context, msg kafkago.Message) error
}

type Reader interface {
	Config() kafkago.ReaderConfig
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

var (
	idleBackoff    = 10 * time.Second
	fetchBackoff   = 500 * time.Millisecond
	failureBackoff = 200 * time.Millisecond
)

type Consumer struct {
	handler MessageHandler
	reader  Reader
	logger  *zap.Logger

	workers int
	jobs    chan job
}

type job struct {
	msg    kafkago.Message
	result chan error
}

// NewConsumer runs handler on up to workers goroutines. Offsets are
// committed in fetch order, and only for messages the handler accepted.
func NewConsumer(handler MessageHandler, reader Reader, workers int, logger *zap.Logger) *Consumer {
	if workers < 1 {
		workers = 1
	}
	return &Consumer{
		handler: handler,
		reader:  reader,
		logger:  logger,
		workers: workers,
		jobs:    make(chan job, workers*2),
	}
}

// Start blocks until ctx is done.
func (c *Consumer) Start(ctx context.Context) {
	rc := c.reader.Config()
	c.logger.Info("starting refresh consumer",
		zap.Strings("brokers", rc.Brokers),
		zap.String("group", rc.GroupID),
		zap.String("topic", rc.Topic),
		zap.Int("workers", c.workers),
	)

	for i := 0; i < c.workers; i++ {
		go c.worker(ctx, i)
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			if isBenignFetchTimeout(err) {
				c.logger.Debug("fetch timeout (idle), backing off", zap.Error(err))
				sleepWithContext(ctx, idleBackoff)
				continue
			}
			c.logger.Warn("fetch failed, backing off", zap.Error(err))
			sleepWithContext(ctx, fetchBackoff)
			continue
		}

		// Wait for the result so commits never skip ahead of a failed message.
		done := make(chan error, 1)
		select {
		case c.jobs <- job{msg: msg, result: done}:
		case <-ctx.Done():
			return
		}

		var procErr error
		select {
		case procErr = <-done:
		case <-ctx.Done():
			return
		}

		if procErr != nil {
			c.logger.Error("handler failed; message will not be committed", zap.Error(procErr),
				zap.String("topic", msg.Topic), zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset))
			sleepWithContext(ctx, failureBackoff)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Warn("commit failed",
				zap.Error(err),
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			sleepWithContext(ctx, failureBackoff)
			continue
		}
		c.logger.Debug("message committed",
			zap.String("topic", msg.Topic), zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset))
	}
}

func (c *Consumer) worker(ctx context.Context, id int) {
	log := c.logger.With(zap.Int("worker", id))
	for {
		select {
		case <-ctx.Done():
			return
		case it := <-c.jobs:
			start := time.Now()
			err := c.handler.Handle(ctx, it.msg)
			if err == nil {
				log.Debug("message handled",
					zap.Int("partition", it.msg.Partition),
					zap.Int64("offset", it.msg.Offset),
					zap.Int("value_bytes", len(it.msg.Value)),
					zap.Duration("elapsed", time.Since(start)),
				)
			}
			it.result <- err
		}
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func isBenignFetchTimeout(err error) bool {
	s := err.Error()
	return strings.Contains(s, "Request Timed Out") ||
		strings.Contains(s, "no messages received from kafka within the allocated time")
}
