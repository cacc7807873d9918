package app

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

type TransitionHandler interface {
	HandleTransition(ctx context.Context, event domain.TransitionEvent) []domain.Trigger
}

type GeofenceEventUseCase interface {
	HandleTransition(ctx context.Context, input TransitionEventInput) (TransitionOutput, error)
}

type geofenceEventUseCaseImpl struct {
	handler TransitionHandler
}

func NewGeofenceEventUseCase(handler TransitionHandler) GeofenceEventUseCase {
	return &geofenceEventUseCaseImpl{handler: handler}
}

func (uc *geofenceEventUseCaseImpl) HandleTransition(ctx context.Context, input TransitionEventInput) (TransitionOutput, error) {
	slog.Debug("handling geofence event",
		"transition", input.Transition,
		"request_ids", input.RequestIDs,
		"error_code", input.ErrorCode,
	)

	event := domain.TransitionEvent{
		RequestIDs: input.RequestIDs,
		Position:   input.Position.toDomain(),
		ErrorCode:  input.ErrorCode,
	}

	if !event.HasError() {
		if len(input.RequestIDs) == 0 {
			return TransitionOutput{}, NewValidationError("request_ids", "at least one request ID is required")
		}

		transition, err := domain.NewTransition(input.Transition)
		if err != nil {
			return TransitionOutput{}, NewValidationError("transition", err.Error())
		}

		event.Transition = transition
	}

	triggers := uc.handler.HandleTransition(ctx, event)

	slog.Debug("geofence event handled",
		"triggered", len(triggers),
	)

	return FromTriggers(triggers), nil
}
