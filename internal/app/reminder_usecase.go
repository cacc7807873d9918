package app

import (
	"context"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

type ReminderUseCase interface {
	SaveReminder(ctx context.Context, input SaveReminderInput) (ReminderOutput, error)
	LoadReminders(ctx context.Context) (RemindersOutput, error)
	GetReminder(ctx context.Context, input GetReminderInput) (ReminderOutput, error)
	DeleteReminder(ctx context.Context, input DeleteReminderInput) error
	DeleteAllReminders(ctx context.Context) error
}

type GeofenceRegistrar interface {
	Register(ctx context.Context, reminder *domain.Reminder) domain.Result[domain.GeofenceHandle]
	Remove(ctx context.Context, reminderID domain.ReminderID) domain.Result[struct{}]
	RemoveAll(ctx context.Context) domain.Result[int]
}
