package kafka

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/config"
)

var topicReadyTimeout = 10 * time.Second

// EnsureTopic creates the refresh topic when the cluster does not have it
// yet and waits until its partitions show up in metadata.
func EnsureTopic(ctx context.Context, cfg config.Kafka, logger *zap.Logger) error {
	if len(cfg.Brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		return errors.New("empty topic")
	}

	dialer := &kafkago.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", cfg.Brokers[0])
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer conn.Close()

	if parts, err := conn.ReadPartitions(cfg.Topic); err == nil && len(parts) > 0 {
		logger.Info("kafka topic exists", zap.String("topic", cfg.Topic), zap.Int("partitions", len(parts)))
		return nil
	}

	// Topics can only be created through the controller.
	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("get controller: %w", err)
	}
	addr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))
	ctrlConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial controller %s: %w", addr, err)
	}
	defer ctrlConn.Close()

	logger.Info("creating kafka topic",
		zap.String("topic", cfg.Topic),
		zap.Int("partitions", cfg.Partitions),
		zap.Int("replication", cfg.Replication),
	)
	err = ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             cfg.Topic,
		NumPartitions:     cfg.Partitions,
		ReplicationFactor: cfg.Replication,
	})
	if err != nil && !errors.Is(err, kafkago.TopicAlreadyExists) {
		return fmt.Errorf("create topic: %w", err)
	}

	deadline := time.Now().Add(topicReadyTimeout)
	for {
		parts, err := conn.ReadPartitions(cfg.Topic)
		if err == nil && len(parts) >= cfg.Partitions {
			logger.Info("kafka topic is ready", zap.String("topic", cfg.Topic), zap.Int("partitions", len(parts)))
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("topic %s not visible after creation", cfg.Topic)
		}
		sleepWithContext(ctx, fetchBackoff)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// NewReader is the production Reader for the refresh topic.
func NewReader(cfg config.Kafka) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.Group,
		Topic:          cfg.Topic,
		MinBytes:       1,
		MaxBytes:       1 << 20,
		MaxWait:        time.Second,
		CommitInterval: 0,
		StartOffset:    kafkago.LastOffset,
	})
}
