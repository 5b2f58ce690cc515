package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"

	"github.com/tractorcare/order-service/internal/config"
	"github.com/tractorcare/order-service/internal/entities"
)

type CustomerSaver interface {
	SaveCustomer(ctx context.Context, c entities.Customer) error
}

// CustomerMessage запись справочника клиентов из топика customers
type CustomerMessage struct {
	ID        string    `json:"id" validate:"required,max=64"`
	Name      string    `json:"name" validate:"required,max=200"`
	Phone     string    `json:"phone,omitempty" validate:"omitempty,e164"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	UpdatedAt time.Time `json:"updatedAt" validate:"required"`
}

func CustomerJSONToEntity(c CustomerMessage) entities.Customer {
	return entities.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		UpdatedAt: c.UpdatedAt,
	}
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	saver    CustomerSaver
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, saver CustomerSaver) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.CustomersTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, saver)
}

func newKafkaHandler(logger *slog.Logger, reader messageReader, dlq messageWriter, saver CustomerSaver) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		saver:    saver,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	start := time.Now()
	defer func() {
		messageProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	// В операции сохранения уже есть retry
	if err := h.handleSaveCustomer(ctx, m); err != nil {
		customersFailed.Inc()
		h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

		// В библиотеке уже есть retry
		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		customersDLQ.Inc()
	} else {
		customersProcessed.Inc()
	}

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func (h *kafkaHandler) handleSaveCustomer(ctx context.Context, m kafka.Message) error {
	var customer CustomerMessage
	if err := json.Unmarshal(m.Value, &customer); err != nil {
		return fmt.Errorf("failed to unmarshal customer: %w", err)
	}

	if err := h.validate.Struct(customer); err != nil {
		return fmt.Errorf("invalid customer data: %w", err)
	}

	return h.saver.SaveCustomer(ctx, CustomerJSONToEntity(customer))
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
