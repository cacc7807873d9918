package repository

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

type geofenceHandleRepositoryImpl struct {
	db *gorm.DB
}

func NewGeofenceHandleRepository(db *gorm.DB) domain.GeofenceHandleRepository {
	return &geofenceHandleRepositoryImpl{
		db: db,
	}
}

// Save keeps at most one handle per reminder; a newer handle replaces it.
func (r *geofenceHandleRepositoryImpl) Save(ctx context.Context, handle domain.GeofenceHandle) error {
	m := FromHandle(handle)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "reminder_id"}},
		UpdateAll: true,
	}).Create(m)
	if result.Error != nil {
		slog.Error("failed to save geofence handle",
			"reminder_id", m.ReminderID,
			"request_id", m.RequestID,
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("geofence handle saved",
		"reminder_id", m.ReminderID,
		"request_id", m.RequestID,
	)

	return nil
}

func (r *geofenceHandleRepositoryImpl) FindAll(ctx context.Context) ([]domain.GeofenceHandle, error) {
	var models []GeofenceHandleModel

	result := r.db.WithContext(ctx).Order("registered_at ASC").Find(&models)
	if result.Error != nil {
		slog.Error("failed to find geofence handles",
			"error", result.Error,
		)

		return nil, result.Error
	}

	handles := make([]domain.GeofenceHandle, 0, len(models))
	for _, m := range models {
		handle, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert geofence handle",
				"reminder_id", m.ReminderID,
				"error", err,
			)

			return nil, err
		}

		handles = append(handles, handle)
	}

	return handles, nil
}

func (r *geofenceHandleRepositoryImpl) Delete(ctx context.Context, reminderID domain.ReminderID) error {
	result := r.db.WithContext(ctx).Where("reminder_id = ?", reminderID.String()).Delete(&GeofenceHandleModel{})
	if result.Error != nil {
		slog.Error("failed to delete geofence handle",
			"reminder_id", reminderID.String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *geofenceHandleRepositoryImpl) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&GeofenceHandleModel{})
	if result.Error != nil {
		slog.Error("failed to delete geofence handles",
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("geofence handles deleted",
		"count", result.RowsAffected,
	)

	return nil
}
