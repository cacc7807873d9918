package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/KasumiMercury/primind-location-remind/internal/observability/tracing"
)

type NATSConfig struct {
	URL string
}

// MessagePublisher publishes reminder events on any watermill publisher.
type MessagePublisher struct {
	publisher message.Publisher
}

func NewMessagePublisher(publisher message.Publisher) *MessagePublisher {
	return &MessagePublisher{publisher: publisher}
}

// NewNATSPublisher provisions the JetStream stream and returns a publisher
// bound to it.
func NewNATSPublisher(ctx context.Context, cfg NATSConfig) (*MessagePublisher, error) {
	if err := ProvisionStream(ctx, cfg); err != nil {
		return nil, err
	}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: false,
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		watermill.NewSlogLogger(slog.Default()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return NewMessagePublisher(publisher), nil
}

func ProvisionStream(ctx context.Context, cfg NATSConfig) error {
	conn, err := nc.Connect(cfg.URL, nc.Timeout(10*time.Second))
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer conn.Close()

	js, err := jetstream.New(conn)
	if err != nil {
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}

	subjects := []string{TopicGeofenceEntered, TopicGeofenceTransition}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        streamName,
		Description: "Stream for location reminder events",
		Subjects:    subjects,
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      24 * time.Hour,
		MaxBytes:    100 * 1024 * 1024,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	slog.Info("NATS JetStream stream configured",
		slog.String("stream", streamName),
		slog.Any("subjects", subjects),
	)

	return nil
}

func (p *MessagePublisher) PublishGeofenceEntered(ctx context.Context, event GeofenceEnteredEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", "geofence.entered")
	msg.Metadata.Set("reminder_id", event.ReminderID)
	tracing.InjectIntoMessage(ctx, msg)

	if err := p.publisher.Publish(TopicGeofenceEntered, msg); err != nil {
		slog.Error("failed to publish geofence entered event",
			slog.String("reminder_id", event.ReminderID),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.Debug("published geofence entered event",
		slog.String("reminder_id", event.ReminderID),
		slog.String("message_id", msg.UUID),
	)

	return nil
}

func (p *MessagePublisher) Close() error {
	return p.publisher.Close()
}
