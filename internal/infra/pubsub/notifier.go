package pubsub

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

// Notifier signals geofence entries. Without a publisher the entry is only
// logged.
type Notifier struct {
	publisher Publisher
	clock     clockwork.Clock
}

func NewNotifier(publisher Publisher, clock clockwork.Clock) *Notifier {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Notifier{publisher: publisher, clock: clock}
}

func (n *Notifier) OnGeofenceEntered(ctx context.Context, trigger domain.Trigger) error {
	event := NewGeofenceEnteredEvent(trigger, n.clock.Now())

	if n.publisher == nil {
		slog.InfoContext(ctx, "geofence entered",
			slog.String("event", "geofence.entered"),
			slog.String("reminder_id", event.ReminderID),
			slog.String("title", event.Title),
		)

		return nil
	}

	return n.publisher.PublishGeofenceEntered(ctx, event)
}
