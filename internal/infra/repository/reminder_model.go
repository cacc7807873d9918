package repository

import (
	"time"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

type ReminderModel struct {
	ID            string    `gorm:"column:id;type:varchar(255);primaryKey"`
	Title         *string   `gorm:"column:title;type:text"`
	Description   *string   `gorm:"column:description;type:text"`
	LocationLabel *string   `gorm:"column:location_label;type:text"`
	Latitude      *float64  `gorm:"column:latitude;type:double precision"`
	Longitude     *float64  `gorm:"column:longitude;type:double precision"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamptz"`
	UpdatedAt     time.Time `gorm:"column:updated_at;type:timestamptz"`
}

func (ReminderModel) TableName() string {
	return "reminders"
}

func (m *ReminderModel) ToEntity() (*domain.Reminder, error) {
	reminderID, err := domain.ReminderIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	return domain.Reconstitute(
		reminderID,
		deref(m.Title),
		deref(m.Description),
		deref(m.LocationLabel),
		m.Latitude,
		m.Longitude,
	), nil
}

func FromEntity(e *domain.Reminder) *ReminderModel {
	return &ReminderModel{
		ID:            e.ID().String(),
		Title:         nullable(e.Title()),
		Description:   nullable(e.Description()),
		LocationLabel: nullable(e.LocationLabel()),
		Latitude:      e.Latitude(),
		Longitude:     e.Longitude(),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
