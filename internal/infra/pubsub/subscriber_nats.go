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

	"github.com/KasumiMercury/primind-location-remind/internal/app"
	"github.com/KasumiMercury/primind-location-remind/internal/observability/tracing"
)

const transitionQueueGroup = "location-remind"

func NewNATSSubscriber(cfg NATSConfig) (message.Subscriber, error) {
	subscriber, err := nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:              cfg.URL,
			QueueGroupPrefix: transitionQueueGroup,
			SubscribersCount: 1,
			AckWaitTimeout:   30 * time.Second,
			CloseTimeout:     30 * time.Second,
			NatsOptions:      []nc.Option{nc.Timeout(10 * time.Second)},
			Unmarshaler:      &nats.NATSMarshaler{},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: false,
				DurablePrefix: transitionQueueGroup,
			},
		},
		watermill.NewSlogLogger(slog.Default()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	return subscriber, nil
}

// TransitionConsumer feeds provider transitions received as messages into
// the geofence event use case.
type TransitionConsumer struct {
	useCase app.GeofenceEventUseCase
}

func NewTransitionConsumer(useCase app.GeofenceEventUseCase) *TransitionConsumer {
	return &TransitionConsumer{useCase: useCase}
}

// Handle acks malformed and invalid messages; redelivery cannot fix them.
func (c *TransitionConsumer) Handle(msg *message.Message) error {
	ctx := tracing.ExtractFromMessage(msg)

	var payload TransitionEventPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		slog.WarnContext(ctx, "dropping malformed geofence transition",
			slog.String("message_id", msg.UUID),
			slog.String("error", err.Error()),
		)

		return nil
	}

	output, err := c.useCase.HandleTransition(ctx, toInput(payload))
	if err != nil {
		if app.IsValidationError(err) {
			slog.WarnContext(ctx, "dropping invalid geofence transition",
				slog.String("message_id", msg.UUID),
				slog.String("error", err.Error()),
			)

			return nil
		}

		return err
	}

	slog.DebugContext(ctx, "geofence transition consumed",
		slog.String("message_id", msg.UUID),
		slog.Int("triggered", len(output.Triggered)),
	)

	return nil
}

func NewRouter(subscriber message.Subscriber, consumer *TransitionConsumer) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	router.AddConsumerHandler(
		"geofence_transition",
		TopicGeofenceTransition,
		subscriber,
		consumer.Handle,
	)

	return router, nil
}

// RunRouter blocks until ctx is done or the router stops.
func RunRouter(ctx context.Context, router *message.Router) error {
	if err := router.Run(ctx); err != nil {
		return fmt.Errorf("router stopped: %w", err)
	}

	return nil
}

func toInput(p TransitionEventPayload) app.TransitionEventInput {
	input := app.TransitionEventInput{
		RequestIDs: p.RequestIDs,
		Transition: p.Transition,
		ErrorCode:  p.ErrorCode,
	}

	if p.Position != nil {
		input.Position = &app.PositionInput{
			Latitude:       p.Position.Latitude,
			Longitude:      p.Position.Longitude,
			AccuracyMeters: p.Position.AccuracyMeters,
		}
	}

	return input
}
