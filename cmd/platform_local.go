package main

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-location-remind/internal/app"
	"github.com/KasumiMercury/primind-location-remind/internal/config"
	"github.com/KasumiMercury/primind-location-remind/internal/infra/pubsub"
)

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	if cfg.PubSub.NatsURL == "" {
		slog.Warn("NATS_URL not set, geofence entries will only be logged")
		return nil, nil
	}

	publisher, err := pubsub.NewNATSPublisher(ctx, pubsub.NATSConfig{
		URL: cfg.PubSub.NatsURL,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS publisher initialized", "url", cfg.PubSub.NatsURL)
	return publisher, nil
}

// startTransitionIntake consumes provider transitions from NATS until ctx is
// done. The returned channel closes once the router has stopped.
func startTransitionIntake(ctx context.Context, cfg *config.Config, useCase app.GeofenceEventUseCase) (<-chan struct{}, error) {
	if cfg.PubSub.NatsURL == "" {
		return nil, nil
	}

	subscriber, err := pubsub.NewNATSSubscriber(pubsub.NATSConfig{URL: cfg.PubSub.NatsURL})
	if err != nil {
		return nil, err
	}

	router, err := pubsub.NewRouter(subscriber, pubsub.NewTransitionConsumer(useCase))
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		if err := pubsub.RunRouter(ctx, router); err != nil {
			slog.Error("transition intake stopped", "error", err)
		}
	}()

	slog.Info("transition intake started", "topic", pubsub.TopicGeofenceTransition)
	return done, nil
}
