package app

import (
	"time"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

type ReminderOutput struct {
	ID            string
	Title         string
	Description   string
	LocationLabel string
	Latitude      *float64
	Longitude     *float64
}

type RemindersOutput struct {
	Reminders []ReminderOutput
	Count     int32
	// NoData is set when the store holds no reminders at all.
	NoData bool
}

type TriggerOutput struct {
	ReminderID string
	Title      string
}

type TransitionOutput struct {
	Triggered []TriggerOutput
}

type LocationOutput struct {
	Found          bool
	Latitude       float64
	Longitude      float64
	AccuracyMeters float64
	RecordedAt     time.Time
	Tries          int
	Status         string
}

func FromEntity(reminder *domain.Reminder) ReminderOutput {
	return ReminderOutput{
		ID:            reminder.ID().String(),
		Title:         reminder.Title(),
		Description:   reminder.Description(),
		LocationLabel: reminder.LocationLabel(),
		Latitude:      reminder.Latitude(),
		Longitude:     reminder.Longitude(),
	}
}

func FromEntities(reminders []*domain.Reminder) RemindersOutput {
	outputs := make([]ReminderOutput, 0, len(reminders))
	for _, r := range reminders {
		outputs = append(outputs, FromEntity(r))
	}

	return RemindersOutput{
		Reminders: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
		NoData:    len(outputs) == 0,
	}
}

func FromTriggers(triggers []domain.Trigger) TransitionOutput {
	outputs := make([]TriggerOutput, 0, len(triggers))
	for _, t := range triggers {
		outputs = append(outputs, TriggerOutput{
			ReminderID: t.ReminderID.String(),
			Title:      t.Reminder.Title(),
		})
	}

	return TransitionOutput{Triggered: outputs}
}
