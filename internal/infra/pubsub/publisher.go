package pubsub

import (
	"context"
	"io"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

const (
	TopicGeofenceEntered    = "location.geofence.entered"
	TopicGeofenceTransition = "location.geofence.transition"

	streamName = "LOCATION_REMIND_EVENTS"
)

type Publisher interface {
	PublishGeofenceEntered(ctx context.Context, event GeofenceEnteredEvent) error
	io.Closer
}
