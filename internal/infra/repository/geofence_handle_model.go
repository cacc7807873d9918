package repository

import (
	"time"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

type GeofenceHandleModel struct {
	ReminderID      string    `gorm:"column:reminder_id;type:varchar(255);primaryKey"`
	RequestID       string    `gorm:"column:request_id;type:varchar(255);not null;uniqueIndex:idx_geofence_handles_request_id"`
	CallbackPurpose string    `gorm:"column:callback_purpose;type:varchar(255);not null"`
	RegisteredAt    time.Time `gorm:"column:registered_at;type:timestamptz;not null"`
}

func (GeofenceHandleModel) TableName() string {
	return "geofence_handles"
}

func (m *GeofenceHandleModel) ToEntity() (domain.GeofenceHandle, error) {
	reminderID, err := domain.ReminderIDFromString(m.ReminderID)
	if err != nil {
		return domain.GeofenceHandle{}, err
	}

	return domain.GeofenceHandle{
		ReminderID:      reminderID,
		RequestID:       m.RequestID,
		CallbackPurpose: m.CallbackPurpose,
		RegisteredAt:    m.RegisteredAt,
	}, nil
}

func FromHandle(h domain.GeofenceHandle) *GeofenceHandleModel {
	return &GeofenceHandleModel{
		ReminderID:      h.ReminderID.String(),
		RequestID:       h.RequestID,
		CallbackPurpose: h.CallbackPurpose,
		RegisteredAt:    h.RegisteredAt,
	}
}
