package geofence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

var ErrInvalidStrategy = errors.New("invalid geofence strategy")

type Strategy string

const (
	// StrategyEager resolves device location settings before every
	// registration and refuses to register while they are unresolved.
	StrategyEager Strategy = "eager"
	// StrategyLazy registers straight away and leaves settings to the device.
	StrategyLazy Strategy = "lazy"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyEager, "":
		return StrategyEager, nil
	case StrategyLazy:
		return StrategyLazy, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidStrategy, s)
	}
}

// SettingsGate decides whether location settings allow a registration.
type SettingsGate interface {
	Check(ctx context.Context) error
}

func NewSettingsGate(strategy Strategy, provider domain.LocationProvider) SettingsGate {
	if strategy == StrategyLazy {
		return lazyGate{}
	}

	return eagerGate{provider: provider}
}

type eagerGate struct {
	provider domain.LocationProvider
}

func (g eagerGate) Check(ctx context.Context) error {
	return g.provider.ResolveSettings(ctx, domain.SettingsRequest{Priority: domain.PriorityLowPower})
}

type lazyGate struct{}

func (lazyGate) Check(context.Context) error {
	return nil
}
