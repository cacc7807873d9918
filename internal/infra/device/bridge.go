// Package device holds what the mobile client reports about its location
// stack and exposes it through the provider interfaces the service consumes.
package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

var ErrGeofencingUnavailable = errors.New("geofencing is not available on the device")

type Settings struct {
	LocationEnabled     bool
	GeofencingAvailable bool
}

// Region is a monitor the service asked the device to register.
type Region struct {
	Request  domain.GeofenceRequest
	Callback domain.CallbackHandle
}

// Bridge satisfies domain.LocationProvider, domain.GeofencingClient and
// domain.PermissionOracle from device-reported state.
type Bridge struct {
	mu sync.RWMutex

	clock       clockwork.Clock
	position    *domain.Position
	settings    Settings
	permissions map[domain.Permission]struct{}
	regions     map[string]Region
}

func NewBridge(clock clockwork.Clock, granted []domain.Permission) *Bridge {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	b := &Bridge{
		clock:    clock,
		settings: Settings{LocationEnabled: true, GeofencingAvailable: true},
		regions:  make(map[string]Region),
	}
	b.SetPermissions(granted)

	return b
}

func (b *Bridge) ReportPosition(position domain.Position) {
	if position.RecordedAt.IsZero() {
		position.RecordedAt = b.clock.Now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.position = &position
}

func (b *Bridge) SetSettings(settings Settings) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.settings = settings
}

func (b *Bridge) SetPermissions(granted []domain.Permission) {
	set := make(map[domain.Permission]struct{}, len(granted))
	for _, p := range granted {
		set[p] = struct{}{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.permissions = set
}

func (b *Bridge) Permissions() []domain.Permission {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]domain.Permission, 0, len(b.permissions))
	for p := range b.permissions {
		out = append(out, p)
	}

	slices.Sort(out)

	return out
}

// Geofences returns the registered regions ordered by request ID.
func (b *Bridge) Geofences() []Region {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Region, 0, len(b.regions))
	for _, r := range b.regions {
		out = append(out, r)
	}

	slices.SortFunc(out, func(a, c Region) int {
		switch {
		case a.Request.RequestID < c.Request.RequestID:
			return -1
		case a.Request.RequestID > c.Request.RequestID:
			return 1
		default:
			return 0
		}
	})

	return out
}

func (b *Bridge) LastPosition(ctx context.Context) (*domain.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.position == nil {
		return nil, nil
	}

	p := *b.position

	return &p, nil
}

func (b *Bridge) ResolveSettings(ctx context.Context, request domain.SettingsRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	enabled := b.settings.LocationEnabled
	b.mu.RUnlock()

	if !enabled {
		slog.DebugContext(ctx, "location settings unresolved",
			slog.String("priority", string(request.Priority)),
		)

		return domain.ErrSettingsResolutionRequired
	}

	return nil
}

func (b *Bridge) AddGeofence(ctx context.Context, request domain.GeofenceRequest, callback domain.CallbackHandle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.settings.GeofencingAvailable {
		return fmt.Errorf("%w: %s", ErrGeofencingUnavailable, request.RequestID)
	}

	b.regions[request.RequestID] = Region{Request: request, Callback: callback}

	return nil
}

func (b *Bridge) RemoveGeofences(ctx context.Context, requestIDs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, id := range requestIDs {
		delete(b.regions, id)
	}

	return nil
}

func (b *Bridge) IsGranted(permission domain.Permission) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.permissions[permission]

	return ok
}
