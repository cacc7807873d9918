package location

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

type Status string

const (
	StatusFound              Status = "found"
	StatusExhausted          Status = "exhausted"
	StatusSettingsUnresolved Status = "settings_unresolved"
	StatusProviderError      Status = "provider_error"
	StatusPermissionDenied   Status = "permission_denied"
)

// Outcome describes how an acquisition sequence ended. Position is nil for
// every status other than StatusFound.
type Outcome struct {
	Position *domain.Position
	Tries    int
	Attempt  domain.LocationAttempt
	Status   Status
}

func (o Outcome) Found() bool {
	return o.Position != nil
}

type Recorder interface {
	ObserveAcquisition(outcome string, tries int)
}

type Config struct {
	MaxAttempts int
	RetryDelay  time.Duration
	// VerifySettings asks the provider to resolve location settings before
	// each try. A sequence ends quietly when settings stay unresolved.
	VerifySettings bool
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts:    domain.DefaultMaxLocationAttempts,
		RetryDelay:     domain.DefaultLocationRetryDelay,
		VerifySettings: true,
	}
}

type Acquirer struct {
	provider    domain.LocationProvider
	permissions domain.PermissionOracle
	clock       clockwork.Clock
	recorder    Recorder
	cfg         Config
}

// NewAcquirer builds an Acquirer. A nil permissions oracle skips the
// permission check.
func NewAcquirer(
	provider domain.LocationProvider,
	permissions domain.PermissionOracle,
	clock clockwork.Clock,
	recorder Recorder,
	cfg Config,
) *Acquirer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Acquirer{
		provider:    provider,
		permissions: permissions,
		clock:       clock,
		recorder:    recorder,
		cfg:         cfg,
	}
}

// Acquire asks the provider for its last known position, retrying at a fixed
// delay while no fix is available. The provider is called at most
// MaxAttempts times. Running out of tries is not an error; only a cancelled
// context is. Without fine location access the provider is never called.
func (a *Acquirer) Acquire(ctx context.Context) (Outcome, error) {
	attempt := domain.NewLocationAttempt(a.cfg.MaxAttempts, a.cfg.RetryDelay)
	tries := 0

	if a.permissions != nil && !a.permissions.IsGranted(domain.PermissionFineLocation) {
		slog.Debug("location permission not granted, ending acquisition",
			"permission", string(domain.PermissionFineLocation),
		)

		return a.finish(Outcome{Attempt: attempt, Status: StatusPermissionDenied}), nil
	}

	for {
		if a.cfg.VerifySettings {
			if err := a.provider.ResolveSettings(ctx, domain.SettingsRequest{Priority: domain.PriorityLowPower}); err != nil {
				if errors.Is(err, domain.ErrSettingsResolutionRequired) {
					slog.Debug("location settings unresolved, ending acquisition",
						"tries", tries,
					)

					return a.finish(Outcome{Tries: tries, Attempt: attempt, Status: StatusSettingsUnresolved}), nil
				}

				if ctxErr := ctx.Err(); ctxErr != nil {
					return Outcome{Tries: tries, Attempt: attempt}, ctxErr
				}

				slog.Warn("failed to verify location settings",
					"error", err,
					"tries", tries,
				)

				return a.finish(Outcome{Tries: tries, Attempt: attempt, Status: StatusProviderError}), nil
			}
		}

		tries++

		position, err := a.provider.LastPosition(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Outcome{Tries: tries, Attempt: attempt}, ctxErr
			}

			slog.Warn("failed to get last known position",
				"error", err,
				"tries", tries,
			)

			return a.finish(Outcome{Tries: tries, Attempt: attempt, Status: StatusProviderError}), nil
		}

		if position != nil {
			attempt.Reset()

			slog.Debug("position acquired",
				"tries", tries,
				"accuracy_meters", position.AccuracyMeters,
			)

			return a.finish(Outcome{Position: position, Tries: tries, Attempt: attempt, Status: StatusFound}), nil
		}

		if !attempt.CanRetry() {
			slog.Debug("no position after max attempts",
				"tries", tries,
				"max_attempts", attempt.Max(),
			)

			return a.finish(Outcome{Tries: tries, Attempt: attempt, Status: StatusExhausted}), nil
		}

		attempt.Next()

		slog.Debug("no position yet, retrying",
			"attempt", attempt.Count(),
			"delay", attempt.Delay(),
		)

		if err := a.wait(ctx, attempt.Delay()); err != nil {
			return Outcome{Tries: tries, Attempt: attempt}, err
		}
	}
}

func (a *Acquirer) wait(ctx context.Context, d time.Duration) error {
	timer := a.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

func (a *Acquirer) finish(outcome Outcome) Outcome {
	if a.recorder != nil {
		a.recorder.ObserveAcquisition(string(outcome.Status), outcome.Tries)
	}

	return outcome
}
