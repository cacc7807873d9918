package domain

import "context"

// LocationProvider is the device positioning capability. LastPosition returns
// nil without an error when no cached fix is available yet.
type LocationProvider interface {
	LastPosition(ctx context.Context) (*Position, error)
	ResolveSettings(ctx context.Context, request SettingsRequest) error
}

// GeofencingClient registers region monitors. AddGeofence replaces any
// monitor with the same request ID and callback purpose.
type GeofencingClient interface {
	AddGeofence(ctx context.Context, request GeofenceRequest, callback CallbackHandle) error
	RemoveGeofences(ctx context.Context, requestIDs []string) error
}

type PermissionOracle interface {
	IsGranted(permission Permission) bool
}

type NotificationTrigger interface {
	OnGeofenceEntered(ctx context.Context, trigger Trigger) error
}
