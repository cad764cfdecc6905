package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/domain"
)

//go:generate mockgen -source internal/kafka/publisher.go -destination=internal/kafka/publisher_mock_test.go -package=kafka

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Publisher emits refresh events. Events are keyed by catalog so that all
// requests for one catalog land on the same partition.
type Publisher struct {
	writer Writer
	logger *zap.Logger
	now    func() time.Time
}

func NewPublisher(writer Writer, logger *zap.Logger) *Publisher {
	return &Publisher{writer: writer, logger: logger, now: time.Now}
}

// NewWriter is the production Writer for topic.
func NewWriter(brokers []string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func (p *Publisher) Publish(ctx context.Context, catalog, reason string) error {
	switch catalog {
	case domain.CatalogPOS, domain.CatalogStorefront, domain.CatalogAll:
	default:
		return fmt.Errorf("unknown catalog %q", catalog)
	}

	ev := domain.RefreshEvent{Catalog: catalog, Reason: reason, At: p.now().UTC()}
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal refresh event: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafkago.Message{Key: []byte(catalog), Value: value}); err != nil {
		p.logger.Error("publish refresh event failed", zap.String("catalog", catalog), zap.Error(err))
		return fmt.Errorf("publish: %w", err)
	}
	p.logger.Info("refresh event published", zap.String("catalog", catalog), zap.String("reason", reason))
	return nil
}
