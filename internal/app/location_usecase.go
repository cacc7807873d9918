package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
	"github.com/KasumiMercury/primind-location-remind/internal/location"
)

type LocationAcquirer interface {
	Acquire(ctx context.Context) (location.Outcome, error)
}

type LocationUseCase interface {
	CurrentLocation(ctx context.Context) (LocationOutput, error)
}

type locationUseCaseImpl struct {
	acquirer LocationAcquirer
}

func NewLocationUseCase(acquirer LocationAcquirer) LocationUseCase {
	return &locationUseCaseImpl{acquirer: acquirer}
}

// CurrentLocation reports Found=false when no fix could be obtained. That is
// a soft failure, not an error. Missing location access is an error.
func (uc *locationUseCaseImpl) CurrentLocation(ctx context.Context) (LocationOutput, error) {
	outcome, err := uc.acquirer.Acquire(ctx)
	if err != nil {
		slog.Warn("location acquisition interrupted",
			"error", err,
			"tries", outcome.Tries,
		)

		return LocationOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if outcome.Status == location.StatusPermissionDenied {
		denied := domain.Failure[struct{}](
			fmt.Sprintf("%s: %s", domain.ErrPermissionDenied, domain.PermissionFineLocation),
			domain.CodePermissionDenied,
		)

		return LocationOutput{}, fmt.Errorf("%w: %w", ErrPermissionDenied, denied.Err())
	}

	output := LocationOutput{
		Found:  outcome.Found(),
		Tries:  outcome.Tries,
		Status: string(outcome.Status),
	}

	if outcome.Position != nil {
		output.Latitude = outcome.Position.Latitude
		output.Longitude = outcome.Position.Longitude
		output.AccuracyMeters = outcome.Position.AccuracyMeters
		output.RecordedAt = outcome.Position.RecordedAt
	}

	return output, nil
}
