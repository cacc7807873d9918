package domain

import (
	"context"
)

//go:generate mockgen -source=reminder_repository.go -destination=mock/reminder_repository_mock.go -package=domainmock

// ReminderRepository is the storage engine behind the reminder store.
// Save is an upsert keyed by reminder ID.
type ReminderRepository interface {
	Save(ctx context.Context, reminder *Reminder) error
	FindAll(ctx context.Context) ([]*Reminder, error)
	FindByID(ctx context.Context, id ReminderID) (*Reminder, error)
	Delete(ctx context.Context, id ReminderID) error
	DeleteAll(ctx context.Context) (int64, error)
}

// GeofenceHandleRepository keeps one handle per reminder so request IDs
// delivered by the provider can still be resolved after a restart.
type GeofenceHandleRepository interface {
	Save(ctx context.Context, handle GeofenceHandle) error
	FindAll(ctx context.Context) ([]GeofenceHandle, error)
	Delete(ctx context.Context, reminderID ReminderID) error
	DeleteAll(ctx context.Context) error
}
