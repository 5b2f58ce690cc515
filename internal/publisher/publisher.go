package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/tractorcare/order-service/internal/config"
	"github.com/tractorcare/order-service/internal/entities"
)

// Event is the wire format of an order lifecycle event.
type Event struct {
	Type           string    `json:"type"`
	OrderID        string    `json:"orderId"`
	CustomerID     string    `json:"customerId"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	Total          string    `json:"total"`
	Version        int       `json:"version"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func EventFromEntity(e entities.OrderEvent) Event {
	return Event{
		Type:           string(e.Type),
		OrderID:        e.OrderID,
		CustomerID:     e.CustomerID,
		Status:         string(e.Status),
		PreviousStatus: string(e.PreviousStatus),
		Total:          e.Total.StringFixed(2),
		Version:        e.Version,
		OccurredAt:     e.OccurredAt,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return newKafkaPublisher(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.EventsTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: cfg.BatchTimeout,
	})
}

func newKafkaPublisher(logger *slog.Logger, writer messageWriter) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: writer,
	}
}

// PublishOrderEvent пишет событие с ключом order id, чтобы события заказа шли в одну партицию
func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, e entities.OrderEvent) error {
	data, err := json.Marshal(EventFromEntity(e))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(e.OrderID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("event published", slog.String("type", string(e.Type)), slog.String("order_id", e.OrderID))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type logPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher возвращает издателя для окружений без kafka
func NewLogPublisher(logger *slog.Logger) *logPublisher {
	return &logPublisher{logger: logger.With(slog.String("publisher", "log"))}
}

func (p *logPublisher) PublishOrderEvent(ctx context.Context, e entities.OrderEvent) error {
	p.logger.InfoContext(ctx, "order event",
		slog.String("type", string(e.Type)),
		slog.String("order_id", e.OrderID),
		slog.String("status", string(e.Status)),
		slog.String("total", e.Total.StringFixed(2)),
		slog.Int("version", e.Version),
	)
	return nil
}

func (p *logPublisher) Close() error {
	return nil
}
