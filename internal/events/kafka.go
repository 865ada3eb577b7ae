// Package events publishes order change notifications.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/store-service/internal/config"
	"github.com/SergeyBogomolovv/store-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEvent is the wire form of entities.OrderEvent.
type OrderEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	OrderID     int64     `json:"order_id"`
	UserID      int64     `json:"user_id"`
	Status      string    `json:"status"`
	TotalAmount *string   `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func OrderEventToJSON(e entities.OrderEvent) OrderEvent {
	var total *string
	if e.TotalAmount.Valid {
		v := e.TotalAmount.Decimal.StringFixed(2)
		total = &v
	}
	return OrderEvent{
		ID:          e.ID,
		Type:        string(e.Type),
		OrderID:     e.OrderID,
		UserID:      e.UserID,
		Status:      string(e.Status),
		TotalAmount: total,
		OccurredAt:  e.OccurredAt,
	}
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return newKafkaPublisher(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
	})
}

func newKafkaPublisher(logger *slog.Logger, writer messageWriter) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: writer,
	}
}

// Publish writes the event keyed by order id, so events of one order stay in
// one partition and keep their order.
func (p *kafkaPublisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	value, err := json.Marshal(OrderEventToJSON(event))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("event published", slog.String("type", string(event.Type)), slog.Int64("order_id", event.OrderID))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// Nop drops events. It is used when Kafka is disabled.
type Nop struct{}

func (Nop) Publish(context.Context, entities.OrderEvent) error { return nil }

func (Nop) Close() error { return nil }
