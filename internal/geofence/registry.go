package geofence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

type State string

const (
	StateUnregistered State = "unregistered"
	StateRegistering  State = "registering"
	StateActive       State = "active"
)

// ReminderReader resolves the reminder behind a triggered geofence.
type ReminderReader interface {
	GetByID(ctx context.Context, id domain.ReminderID) domain.Result[*domain.Reminder]
}

type Recorder interface {
	ObserveRegistration(outcome string)
	ObserveTrigger()
	SetActiveGeofences(n int)
}

// Dependencies wires a Registry. Handles, Notifier and Recorder are optional.
type Dependencies struct {
	Client      domain.GeofencingClient
	Permissions domain.PermissionOracle
	Settings    SettingsGate
	Reminders   ReminderReader
	Notifier    domain.NotificationTrigger
	Handles     domain.GeofenceHandleRepository
	Recorder    Recorder
	Clock       clockwork.Clock

	// RequireBackgroundPermission is set on platforms that grant background
	// location separately from foreground location.
	RequireBackgroundPermission bool
}

type entry struct {
	state  State
	handle domain.GeofenceHandle
}

// Registry tracks one geofence per reminder. Provider calls happen outside
// the lock; the Registering state keeps a second registration for the same
// reminder from starting meanwhile.
type Registry struct {
	deps Dependencies

	mu        sync.Mutex
	entries   map[string]entry
	byRequest map[string]domain.ReminderID
}

func NewRegistry(deps Dependencies) *Registry {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	if deps.Settings == nil {
		deps.Settings = lazyGate{}
	}

	return &Registry{
		deps:      deps,
		entries:   make(map[string]entry),
		byRequest: make(map[string]domain.ReminderID),
	}
}

func (r *Registry) Register(ctx context.Context, reminder *domain.Reminder) domain.Result[domain.GeofenceHandle] {
	request, err := domain.NewGeofenceRequest(reminder)
	if err != nil {
		return r.fail(domain.Failure[domain.GeofenceHandle](err.Error(), domain.CodeInvalidReminder))
	}

	reminderID := reminder.ID()

	slog.Debug("registering geofence",
		"reminder_id", reminderID.String(),
		"request_id", request.RequestID,
	)

	if missing := r.missingPermissions(); len(missing) > 0 {
		slog.Info("geofence registration denied",
			"reminder_id", reminderID.String(),
			"missing_permissions", missing,
		)

		return r.fail(domain.Failure[domain.GeofenceHandle](
			fmt.Sprintf("%s: %s", domain.ErrPermissionDenied, strings.Join(missing, ", ")),
			domain.CodePermissionDenied,
		))
	}

	previous, ok := r.beginRegistration(reminderID)
	if !ok {
		return r.fail(domain.Failure[domain.GeofenceHandle](
			domain.ErrRegistrationInProgress.Error(),
			domain.CodeConflict,
		))
	}

	if err := r.deps.Settings.Check(ctx); err != nil {
		r.rollback(reminderID, previous)

		if errors.Is(err, domain.ErrSettingsResolutionRequired) {
			slog.Info("location settings unresolved, geofence not registered",
				"reminder_id", reminderID.String(),
			)

			return r.fail(domain.Failure[domain.GeofenceHandle](
				domain.ErrSettingsResolutionRequired.Error(),
				domain.CodeSettingsUnresolved,
			))
		}

		slog.Error("failed to check location settings",
			"error", err,
			"reminder_id", reminderID.String(),
		)

		return r.fail(domain.Failure[domain.GeofenceHandle](err.Error(), domain.CodeInfrastructure))
	}

	callback := domain.CallbackHandle{Purpose: domain.SavedGeofencePurpose}

	if err := r.deps.Client.AddGeofence(ctx, request, callback); err != nil {
		r.rollback(reminderID, previous)

		slog.Error("failed to add geofence",
			"error", err,
			"reminder_id", reminderID.String(),
			"request_id", request.RequestID,
		)

		return r.fail(domain.Failure[domain.GeofenceHandle](
			domain.ErrRegistrationFailed.Error(),
			domain.CodeRegistrationFailed,
		))
	}

	handle := domain.GeofenceHandle{
		ReminderID:      reminderID,
		RequestID:       request.RequestID,
		CallbackPurpose: callback.Purpose,
		RegisteredAt:    r.deps.Clock.Now(),
	}

	if r.deps.Handles != nil {
		if err := r.deps.Handles.Save(ctx, handle); err != nil {
			slog.Warn("failed to persist geofence handle",
				"error", err,
				"reminder_id", reminderID.String(),
			)
		}
	}

	active := r.activate(handle, previous)

	if r.deps.Recorder != nil {
		r.deps.Recorder.ObserveRegistration("success")
		r.deps.Recorder.SetActiveGeofences(active)
	}

	slog.Debug("geofence registered",
		"reminder_id", reminderID.String(),
		"request_id", handle.RequestID,
	)

	return domain.Success(handle)
}

// Remove drops the geofence of a reminder. Local state is cleared even when
// the provider call fails. Removing a reminder without a geofence succeeds.
func (r *Registry) Remove(ctx context.Context, reminderID domain.ReminderID) domain.Result[struct{}] {
	r.mu.Lock()

	current, ok := r.entries[reminderID.String()]
	if !ok || current.state == StateUnregistered {
		r.mu.Unlock()

		return domain.Success(struct{}{})
	}

	if current.state == StateRegistering {
		r.mu.Unlock()

		return domain.Failure[struct{}](domain.ErrRegistrationInProgress.Error(), domain.CodeConflict)
	}

	delete(r.entries, reminderID.String())
	delete(r.byRequest, current.handle.RequestID)
	active := r.activeCountLocked()
	r.mu.Unlock()

	r.setActive(active)

	if r.deps.Handles != nil {
		if err := r.deps.Handles.Delete(ctx, reminderID); err != nil {
			slog.Warn("failed to delete geofence handle",
				"error", err,
				"reminder_id", reminderID.String(),
			)
		}
	}

	if err := r.deps.Client.RemoveGeofences(ctx, []string{current.handle.RequestID}); err != nil {
		slog.Warn("failed to remove geofence",
			"error", err,
			"reminder_id", reminderID.String(),
			"request_id", current.handle.RequestID,
		)

		return domain.Failure[struct{}](domain.ErrRemovalFailed.Error(), domain.CodeInfrastructure)
	}

	slog.Debug("geofence removed",
		"reminder_id", reminderID.String(),
	)

	return domain.Success(struct{}{})
}

// RemoveAll drops every active geofence and reports how many were removed.
func (r *Registry) RemoveAll(ctx context.Context) domain.Result[int] {
	r.mu.Lock()

	requestIDs := make([]string, 0, len(r.entries))

	for key, e := range r.entries {
		if e.state != StateActive {
			continue
		}

		requestIDs = append(requestIDs, e.handle.RequestID)
		delete(r.entries, key)
		delete(r.byRequest, e.handle.RequestID)
	}

	r.mu.Unlock()

	r.setActive(0)

	if r.deps.Handles != nil {
		if err := r.deps.Handles.DeleteAll(ctx); err != nil {
			slog.Warn("failed to delete geofence handles",
				"error", err,
			)
		}
	}

	if len(requestIDs) == 0 {
		return domain.Success(0)
	}

	if err := r.deps.Client.RemoveGeofences(ctx, requestIDs); err != nil {
		slog.Warn("failed to remove geofences",
			"error", err,
			"count", len(requestIDs),
		)

		return domain.Failure[int](domain.ErrRemovalFailed.Error(), domain.CodeInfrastructure)
	}

	slog.Debug("geofences removed",
		"count", len(requestIDs),
	)

	return domain.Success(len(requestIDs))
}

// Restore marks persisted handles active again. The provider keeps monitors
// that never expire, so no provider call is made.
func (r *Registry) Restore(ctx context.Context) error {
	if r.deps.Handles == nil {
		return nil
	}

	handles, err := r.deps.Handles.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load geofence handles: %w", err)
	}

	r.mu.Lock()

	for _, handle := range handles {
		r.entries[handle.ReminderID.String()] = entry{state: StateActive, handle: handle}
		r.byRequest[handle.RequestID] = handle.ReminderID
	}

	active := r.activeCountLocked()
	r.mu.Unlock()

	r.setActive(active)

	slog.Info("geofence handles restored",
		"count", len(handles),
	)

	return nil
}

// HandleTransition resolves a provider event to reminders and signals the
// notifier once per reminder. Error events, transitions other than enter and
// request IDs without an active geofence are ignored. Geofences stay active
// after they trigger.
func (r *Registry) HandleTransition(ctx context.Context, event domain.TransitionEvent) []domain.Trigger {
	if event.HasError() {
		slog.Warn("geofence event reported an error",
			"error_code", event.ErrorCode,
		)

		return nil
	}

	if event.Transition != domain.TransitionEnter {
		slog.Debug("ignoring geofence transition",
			"transition", string(event.Transition),
		)

		return nil
	}

	triggers := make([]domain.Trigger, 0, len(event.RequestIDs))
	seen := make(map[string]struct{}, len(event.RequestIDs))

	for _, requestID := range event.RequestIDs {
		reminderID, ok := r.resolve(requestID)
		if !ok {
			slog.Debug("ignoring unknown geofence request",
				"request_id", requestID,
			)

			continue
		}

		if _, dup := seen[reminderID.String()]; dup {
			continue
		}

		seen[reminderID.String()] = struct{}{}

		res := r.deps.Reminders.GetByID(ctx, reminderID)

		reminder, found := res.Get()
		if !found {
			slog.Warn("triggered geofence has no stored reminder",
				"reminder_id", reminderID.String(),
				"request_id", requestID,
				"error", res.Message(),
			)

			continue
		}

		trigger := domain.Trigger{ReminderID: reminderID, Reminder: reminder}

		if r.deps.Notifier != nil {
			if err := r.deps.Notifier.OnGeofenceEntered(ctx, trigger); err != nil {
				slog.Error("failed to signal geofence entry",
					"error", err,
					"reminder_id", reminderID.String(),
				)

				continue
			}
		}

		if r.deps.Recorder != nil {
			r.deps.Recorder.ObserveTrigger()
		}

		triggers = append(triggers, trigger)
	}

	return triggers
}

func (r *Registry) State(reminderID domain.ReminderID) State {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[reminderID.String()]
	if !ok {
		return StateUnregistered
	}

	return e.state
}

func (r *Registry) Handle(reminderID domain.ReminderID) (domain.GeofenceHandle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[reminderID.String()]
	if !ok || e.state != StateActive {
		return domain.GeofenceHandle{}, false
	}

	return e.handle, true
}

func (r *Registry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.activeCountLocked()
}

func (r *Registry) missingPermissions() []string {
	var missing []string

	for _, p := range domain.RequiredPermissions(r.deps.RequireBackgroundPermission) {
		if r.deps.Permissions == nil || !r.deps.Permissions.IsGranted(p) {
			missing = append(missing, string(p))
		}
	}

	return missing
}

func (r *Registry) beginRegistration(reminderID domain.ReminderID) (entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, ok := r.entries[reminderID.String()]
	if !ok {
		previous = entry{state: StateUnregistered}
	}

	if previous.state == StateRegistering {
		return previous, false
	}

	r.entries[reminderID.String()] = entry{state: StateRegistering, handle: previous.handle}

	return previous, true
}

// rollback restores the state held before a failed registration. An
// already active geofence keeps its old handle.
func (r *Registry) rollback(reminderID domain.ReminderID, previous entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if previous.state == StateActive {
		r.entries[reminderID.String()] = previous

		return
	}

	delete(r.entries, reminderID.String())
}

func (r *Registry) activate(handle domain.GeofenceHandle, previous entry) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if previous.state == StateActive && previous.handle.RequestID != handle.RequestID {
		delete(r.byRequest, previous.handle.RequestID)
	}

	r.entries[handle.ReminderID.String()] = entry{state: StateActive, handle: handle}
	r.byRequest[handle.RequestID] = handle.ReminderID

	return r.activeCountLocked()
}

func (r *Registry) resolve(requestID string) (domain.ReminderID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reminderID, ok := r.byRequest[requestID]
	if !ok {
		return domain.ReminderID{}, false
	}

	if e, ok := r.entries[reminderID.String()]; !ok || e.state != StateActive {
		return domain.ReminderID{}, false
	}

	return reminderID, true
}

func (r *Registry) activeCountLocked() int {
	n := 0

	for _, e := range r.entries {
		if e.state == StateActive {
			n++
		}
	}

	return n
}

func (r *Registry) setActive(n int) {
	if r.deps.Recorder != nil {
		r.deps.Recorder.SetActiveGeofences(n)
	}
}

func (r *Registry) fail(res domain.Result[domain.GeofenceHandle]) domain.Result[domain.GeofenceHandle] {
	if r.deps.Recorder != nil {
		r.deps.Recorder.ObserveRegistration(string(res.Code()))
	}

	return res
}
