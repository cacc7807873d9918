package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

const (
	msgEnterTitle     = "Please enter title"
	msgSelectLocation = "Please select location"
)

type reminderUseCaseImpl struct {
	store     *ReminderStore
	registrar GeofenceRegistrar
}

func NewReminderUseCase(store *ReminderStore, registrar GeofenceRegistrar) ReminderUseCase {
	return &reminderUseCaseImpl{
		store:     store,
		registrar: registrar,
	}
}

// SaveReminder validates the input, registers the geofence and persists the
// reminder, in that order. A reminder is never stored without a geofence.
func (uc *reminderUseCaseImpl) SaveReminder(ctx context.Context, input SaveReminderInput) (ReminderOutput, error) {
	slog.Debug("saving reminder",
		"reminder_id", input.ID,
	)

	if strings.TrimSpace(input.Title) == "" {
		return ReminderOutput{}, NewValidationError("title", msgEnterTitle)
	}

	if strings.TrimSpace(input.LocationLabel) == "" {
		return ReminderOutput{}, NewValidationError("location", msgSelectLocation)
	}

	reminderID := domain.NewReminderID()

	if input.ID != "" {
		id, err := domain.ReminderIDFromString(input.ID)
		if err != nil {
			return ReminderOutput{}, NewValidationError("id", err.Error())
		}

		reminderID = id
	}

	reminder, err := domain.NewReminder(
		reminderID,
		input.Title,
		input.Description,
		input.LocationLabel,
		input.Latitude,
		input.Longitude,
	)
	if err != nil {
		return ReminderOutput{}, NewValidationError("location", err.Error())
	}

	var previous *domain.Reminder

	if input.ID != "" {
		existing := uc.store.GetByID(ctx, reminderID)

		switch {
		case existing.IsSuccess():
			previous = existing.Value()
		case existing.Code() != domain.CodeNotFound:
			return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, existing.Err())
		}
	}

	if res := uc.registrar.Register(ctx, reminder); !res.IsSuccess() {
		slog.Warn("geofence not registered, reminder not saved",
			"reminder_id", reminderID.String(),
			"code", string(res.Code()),
			"message", res.Message(),
		)

		return ReminderOutput{}, registrationError(res)
	}

	if err := uc.store.Save(ctx, reminder); err != nil {
		uc.revertRegistration(ctx, reminderID, previous)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Debug("reminder saved",
		"reminder_id", reminderID.String(),
	)

	return FromEntity(reminder), nil
}

func (uc *reminderUseCaseImpl) LoadReminders(ctx context.Context) (RemindersOutput, error) {
	slog.Debug("loading reminders")

	res := uc.store.GetAll(ctx)
	if !res.IsSuccess() {
		return RemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, res.Err())
	}

	output := FromEntities(res.Value())

	slog.Debug("reminders loaded",
		"count", output.Count,
	)

	return output, nil
}

func (uc *reminderUseCaseImpl) GetReminder(ctx context.Context, input GetReminderInput) (ReminderOutput, error) {
	slog.Debug("getting reminder",
		"reminder_id", input.ID,
	)

	reminderID, err := domain.ReminderIDFromString(input.ID)
	if err != nil {
		return ReminderOutput{}, NewValidationError("id", err.Error())
	}

	res := uc.store.GetByID(ctx, reminderID)
	if !res.IsSuccess() {
		if res.Code() == domain.CodeNotFound {
			return ReminderOutput{}, fmt.Errorf("%w: %v", ErrNotFound, res.Err())
		}

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, res.Err())
	}

	return FromEntity(res.Value()), nil
}

// DeleteReminder removes the geofence and then the reminder. A failed
// geofence removal does not stop the reminder from being deleted.
func (uc *reminderUseCaseImpl) DeleteReminder(ctx context.Context, input DeleteReminderInput) error {
	slog.Debug("deleting reminder",
		"reminder_id", input.ID,
	)

	reminderID, err := domain.ReminderIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if res := uc.registrar.Remove(ctx, reminderID); !res.IsSuccess() {
		if res.Code() == domain.CodeConflict {
			return fmt.Errorf("%w: %v", ErrConflict, res.Err())
		}

		slog.Warn("failed to remove geofence",
			"reminder_id", input.ID,
			"error", res.Message(),
		)
	}

	if err := uc.store.Delete(ctx, reminderID); err != nil {
		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Debug("reminder deleted",
		"reminder_id", input.ID,
	)

	return nil
}

func (uc *reminderUseCaseImpl) DeleteAllReminders(ctx context.Context) error {
	slog.Debug("deleting all reminders")

	res := uc.registrar.RemoveAll(ctx)
	if !res.IsSuccess() {
		slog.Warn("failed to remove geofences",
			"error", res.Message(),
		)
	}

	if err := uc.store.DeleteAll(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("all reminders deleted",
		"geofences_removed", res.Value(),
	)

	return nil
}

// revertRegistration undoes the geofence of a reminder that could not be
// persisted. A reminder that was already stored gets its stored geofence back.
func (uc *reminderUseCaseImpl) revertRegistration(ctx context.Context, reminderID domain.ReminderID, previous *domain.Reminder) {
	if previous != nil && previous.CanBeGeofenced() {
		if res := uc.registrar.Register(ctx, previous); !res.IsSuccess() {
			slog.Error("failed to restore geofence of stored reminder",
				"reminder_id", reminderID.String(),
				"error", res.Message(),
			)
		}

		return
	}

	if removal := uc.registrar.Remove(ctx, reminderID); !removal.IsSuccess() {
		slog.Error("failed to remove geofence of unsaved reminder",
			"reminder_id", reminderID.String(),
			"error", removal.Message(),
		)
	}
}

func registrationError(res domain.Result[domain.GeofenceHandle]) error {
	err := res.Err()

	switch res.Code() {
	case domain.CodeInvalidReminder:
		return NewValidationError("location", res.Message())
	case domain.CodePermissionDenied:
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	case domain.CodeSettingsUnresolved:
		return fmt.Errorf("%w: %w", ErrSettingsUnresolved, err)
	case domain.CodeRegistrationFailed:
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	case domain.CodeConflict:
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %w", ErrInternalError, err)
	}
}
