// Package events publishes booking lifecycle events to Kafka so other
// systems (attendance, reporting) can react without polling the store.
package events

import (
	"context"

	"classroom/pkg/config"
	"classroom/pkg/kafka"
	"classroom/pkg/logger"
	"classroom/pkg/model"
)

const (
	EventBookingCreated  = "booking.created"
	EventBookingApproved = "booking.approved"
	EventBookingRejected = "booking.rejected"

	sourceService = "classroom-bookings"
	schemaVersion = "v1"
)

type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking) error
	BookingApproved(ctx context.Context, booking *model.Booking) error
	BookingRejected(ctx context.Context, booking *model.Booking) error
	Close() error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

// NewPublisher returns a Kafka-backed publisher, or a no-op publisher
// when no brokers are configured so the engine runs without Kafka.
func NewPublisher(cfg *config.Config) (Publisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("kafka brokers not configured, booking events disabled")
		return NoopPublisher{}, nil
	}

	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaBookingTopic,
	})
	if err != nil {
		return nil, err
	}

	return &kafkaPublisher{
		producer: producer,
		log:      cfg.Log,
	}, nil
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) error {
	return p.publish(ctx, EventBookingCreated, booking)
}

func (p *kafkaPublisher) BookingApproved(ctx context.Context, booking *model.Booking) error {
	return p.publish(ctx, EventBookingApproved, booking)
}

func (p *kafkaPublisher) BookingRejected(ctx context.Context, booking *model.Booking) error {
	return p.publish(ctx, EventBookingRejected, booking)
}

func (p *kafkaPublisher) publish(ctx context.Context, eventType string, booking *model.Booking) error {
	msg := kafka.NewMessage().
		WithKey(booking.ID).
		WithValue(booking).
		WithEventType(eventType).
		WithSource(sourceService).
		WithSchemaVersion(schemaVersion).
		Build()

	return p.producer.Publish(ctx, msg)
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher discards all events.
type NoopPublisher struct{}

func (NoopPublisher) BookingCreated(context.Context, *model.Booking) error  { return nil }
func (NoopPublisher) BookingApproved(context.Context, *model.Booking) error { return nil }
func (NoopPublisher) BookingRejected(context.Context, *model.Booking) error { return nil }
func (NoopPublisher) Close() error                                          { return nil }
