package domain

import "errors"

var (
	ErrReminderNotFound = errors.New("Reminder not found!") //nolint:staticcheck,revive // matched verbatim by clients

	ErrInvalidReminderID  = errors.New("invalid reminder ID")
	ErrInvalidCoordinates = errors.New("invalid coordinates: latitude must be within [-90, 90] and longitude within [-180, 180]")
	ErrMissingCoordinates = errors.New("reminder has no coordinates to geofence")

	ErrInvalidPermission          = errors.New("invalid permission")
	ErrPermissionDenied           = errors.New("location permissions not granted")
	ErrSettingsResolutionRequired = errors.New("location settings require resolution")

	ErrRegistrationFailed     = errors.New("failed to add geofence")
	ErrRegistrationInProgress = errors.New("geofence registration already in progress")
	ErrRemovalFailed          = errors.New("failed to remove geofence")

	ErrInvalidTransition = errors.New("invalid geofence transition")
)
