package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	p := newKafkaPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), writer)

	event := entities.NewOrderEvent(entities.OrderCreated, entities.Order{
		ID:          7,
		UserID:      1,
		Status:      entities.OrderStatusNew,
		TotalAmount: decimal.NewNullDecimal(decimal.RequireFromString("40")),
	})

	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "7", string(msg.Key))
	assert.Equal(t, []kafka.Header{{Key: "type", Value: []byte("order.created")}}, msg.Headers)

	var got OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, "order.created", got.Type)
	assert.Equal(t, int64(7), got.OrderID)
	assert.Equal(t, "NEW", got.Status)
	require.NotNil(t, got.TotalAmount)
	assert.Equal(t, "40.00", *got.TotalAmount)
	assert.WithinDuration(t, time.Now(), got.OccurredAt, time.Minute)

	require.NoError(t, p.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	brokerErr := errors.New("leader not available")
	p := newKafkaPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), &fakeWriter{err: brokerErr})

	err := p.Publish(context.Background(), entities.OrderEvent{Type: entities.OrderDeleted, OrderID: 7})
	assert.ErrorIs(t, err, brokerErr)
}
