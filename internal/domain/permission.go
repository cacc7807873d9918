package domain

import "fmt"

type Permission string

const (
	PermissionFineLocation       Permission = "fine_location"
	PermissionBackgroundLocation Permission = "background_location"
)

func NewPermission(p string) (Permission, error) {
	switch p {
	case string(PermissionFineLocation), string(PermissionBackgroundLocation):
		return Permission(p), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidPermission, p)
	}
}

// RequiredPermissions lists what must be granted before a geofence may be
// registered. Background access is only asked for on platforms that
// distinguish it from foreground access.
func RequiredPermissions(distinguishesBackground bool) []Permission {
	if distinguishesBackground {
		return []Permission{PermissionFineLocation, PermissionBackgroundLocation}
	}

	return []Permission{PermissionFineLocation}
}
