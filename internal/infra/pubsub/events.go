package pubsub

import (
	"time"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

// GeofenceEnteredEvent is published once per reminder whose geofence the
// device entered.
type GeofenceEnteredEvent struct {
	ReminderID    string    `json:"reminder_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	LocationLabel string    `json:"location_label,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	TriggeredAt   time.Time `json:"triggered_at"`
}

func NewGeofenceEnteredEvent(trigger domain.Trigger, at time.Time) GeofenceEnteredEvent {
	event := GeofenceEnteredEvent{
		ReminderID:  trigger.ReminderID.String(),
		TriggeredAt: at.UTC(),
	}

	if r := trigger.Reminder; r != nil {
		event.Title = r.Title()
		event.Description = r.Description()
		event.LocationLabel = r.LocationLabel()
		event.Latitude = r.Latitude()
		event.Longitude = r.Longitude()
	}

	return event
}

// TransitionEventPayload is a provider transition delivered over NATS.
type TransitionEventPayload struct {
	RequestIDs []string         `json:"request_ids"`
	Transition string           `json:"transition"`
	Position   *PositionPayload `json:"position,omitempty"`
	ErrorCode  int              `json:"error_code,omitempty"`
}

type PositionPayload struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	AccuracyMeters float64 `json:"accuracy_meters"`
}
