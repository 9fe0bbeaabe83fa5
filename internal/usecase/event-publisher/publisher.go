package eventpublisher

import (
	"context"
	"encoding/json"

	orderbookv1 "github.com/NassimBoussaid/Matching-Engine/internal/domain/orderbook/v1"
	"github.com/NassimBoussaid/Matching-Engine/pkg/config"
	"github.com/NassimBoussaid/Matching-Engine/pkg/errors"
	"github.com/NassimBoussaid/Matching-Engine/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Publisher represents a Kafka Publisher for publishing result events after
// a drain. Downstream consumers (market data, surveillance) replay the event
// stream in output order.
type Publisher struct {
	kafkaWriter *kafka.Writer
	logger      logger.Interface
}

// NewPublisher creates a new Kafka publisher for the result event stream.
func NewPublisher(cfg config.KafkaConfig, log logger.Interface) *Publisher {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		Balancer: &kafka.Hash{},
	})

	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      log,
	}
}

// PublishEvents publishes the drained events as JSON messages, keyed by
// instrument so per-instrument ordering survives partitioning.
func (p *Publisher) PublishEvents(ctx context.Context, events []orderbookv1.Order) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for i := range events {
		value, err := json.Marshal(&events[i])
		if err != nil {
			return errors.NewTracer("failed to encode result event").Wrap(err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(events[i].Instrument),
			Value: value,
		})
	}

	if err := p.kafkaWriter.WriteMessages(ctx, messages...); err != nil {
		p.logger.Error(err,
			logger.Field{Key: "error", Value: err.Error()},
			logger.Field{Key: "events", Value: len(messages)},
		)
		return errors.NewTracer("failed to publish result events").Wrap(err)
	}

	p.logger.Info("Result events published",
		logger.Field{Key: "events", Value: len(messages)},
	)
	return nil
}

// Close properly closes the Kafka writer.
func (p *Publisher) Close() error {
	if err := p.kafkaWriter.Close(); err != nil {
		p.logger.Error(err, logger.Field{Key: "operation", Value: "Close"})
		return err
	}
	return nil
}
