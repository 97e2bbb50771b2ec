package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// Logger is the logging interface the producer depends on
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Producer writes booking events to a Kafka topic, keyed by slot id so
// events for one slot stay ordered
type Producer struct {
	writer *kafka.Writer
	log    Logger
}

// NewProducer creates a Kafka producer for the given brokers and topic
func NewProducer(brokers []string, topic string, log Logger) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("events: at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("events: topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Logger:       kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger:  kafka.LoggerFunc(log.Error),
	}

	return &Producer{writer: writer, log: log}, nil
}

// PublishBookingConfirmed emits a booking-confirmed event
func (p *Producer) PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal booking-confirmed: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.SlotID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("booking.confirmed")},
			{Key: "event_id", Value: []byte(event.EventID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("events: write booking-confirmed: %w", err)
	}

	p.log.Info("Published booking.confirmed event_id=%s booking_id=%d slot_id=%s",
		event.EventID, event.BookingID, event.SlotID)

	return nil
}

// Close flushes and closes the underlying writer
func (p *Producer) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events; used when the Kafka sink is disabled
type NopPublisher struct{}

// PublishBookingConfirmed discards the event
func (NopPublisher) PublishBookingConfirmed(context.Context, BookingConfirmed) error {
	return nil
}
