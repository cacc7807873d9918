package domain

import (
	"fmt"
	"time"
)

const (
	GeofenceRadiusMeters = 100.0

	// SavedGeofencePurpose identifies the callback target for every reminder
	// geofence. It must stay stable across restarts.
	SavedGeofencePurpose = "locationreminders.action.ACTION_SAVED_GEOFENCE"
)

type Expiration time.Duration

const NeverExpire Expiration = -1

type Transition string

const (
	TransitionEnter Transition = "enter"
	TransitionExit  Transition = "exit"
	TransitionDwell Transition = "dwell"
)

func NewTransition(t string) (Transition, error) {
	switch t {
	case string(TransitionEnter), string(TransitionExit), string(TransitionDwell):
		return Transition(t), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTransition, t)
	}
}

type GeofenceRequest struct {
	RequestID      string
	Latitude       float64
	Longitude      float64
	RadiusMeters   float64
	Expiration     Expiration
	Transitions    []Transition
	InitialTrigger Transition
}

// NewGeofenceRequest builds the region monitor for a reminder. The request
// ID is the reminder ID, so a provider event maps back without a lookup table
// on the provider side.
func NewGeofenceRequest(reminder *Reminder) (GeofenceRequest, error) {
	coords, ok := reminder.Coordinates()
	if !ok {
		return GeofenceRequest{}, ErrMissingCoordinates
	}

	return GeofenceRequest{
		RequestID:      RequestIDFor(reminder.ID()),
		Latitude:       coords.Latitude,
		Longitude:      coords.Longitude,
		RadiusMeters:   GeofenceRadiusMeters,
		Expiration:     NeverExpire,
		Transitions:    []Transition{TransitionEnter},
		InitialTrigger: TransitionEnter,
	}, nil
}

func RequestIDFor(id ReminderID) string {
	return id.String()
}

type CallbackHandle struct {
	Purpose string
}

// GeofenceHandle ties a reminder to the request registered with the provider.
type GeofenceHandle struct {
	ReminderID      ReminderID
	RequestID       string
	CallbackPurpose string
	RegisteredAt    time.Time
}

// TransitionEvent is what the provider delivers when a monitored boundary is
// crossed. A non-zero ErrorCode means the provider reports a failure instead.
type TransitionEvent struct {
	RequestIDs []string
	Transition Transition
	Position   *Position
	ErrorCode  int
}

func (e TransitionEvent) HasError() bool {
	return e.ErrorCode != 0
}

type Trigger struct {
	ReminderID ReminderID
	Reminder   *Reminder
}
