package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

type reminderRepositoryImpl struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) domain.ReminderRepository {
	return &reminderRepositoryImpl{
		db: db,
	}
}

func (r *reminderRepositoryImpl) Save(ctx context.Context, reminder *domain.Reminder) error {
	slog.Debug("saving reminder to database",
		"reminder_id", reminder.ID().String(),
	)

	m := FromEntity(reminder)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title",
			"description",
			"location_label",
			"latitude",
			"longitude",
			"updated_at",
		}),
	}).Create(m)
	if result.Error != nil {
		slog.Error("failed to save reminder to database",
			"reminder_id", reminder.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("reminder saved to database",
		"reminder_id", reminder.ID().String(),
	)

	return nil
}

func (r *reminderRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Reminder, error) {
	slog.Debug("finding all reminders")

	var models []ReminderModel

	result := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&models)
	if result.Error != nil {
		slog.Error("failed to find reminders",
			"error", result.Error,
		)

		return nil, result.Error
	}

	reminders := make([]*domain.Reminder, 0, len(models))
	for _, m := range models {
		reminder, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"reminder_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		reminders = append(reminders, reminder)
	}

	slog.Debug("reminders found",
		"count", len(reminders),
	)

	return reminders, nil
}

func (r *reminderRepositoryImpl) FindByID(ctx context.Context, id domain.ReminderID) (*domain.Reminder, error) {
	slog.Debug("finding reminder by ID",
		"reminder_id", id.String(),
	)

	var m ReminderModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("reminder not found",
				"reminder_id", id.String(),
			)

			return nil, domain.ErrReminderNotFound
		}

		slog.Error("failed to find reminder by ID",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *reminderRepositoryImpl) Delete(ctx context.Context, id domain.ReminderID) error {
	slog.Debug("deleting reminder from database",
		"reminder_id", id.String(),
	)

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&ReminderModel{})
	if result.Error != nil {
		slog.Error("failed to delete reminder from database",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("reminder not found for deletion",
			"reminder_id", id.String(),
		)

		return domain.ErrReminderNotFound
	}

	slog.Debug("reminder deleted from database",
		"reminder_id", id.String(),
	)

	return nil
}

func (r *reminderRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	slog.Debug("deleting all reminders from database")

	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&ReminderModel{})
	if result.Error != nil {
		slog.Error("failed to delete all reminders from database",
			"error", result.Error,
		)

		return 0, result.Error
	}

	slog.Debug("all reminders deleted from database",
		"count", result.RowsAffected,
	)

	return result.RowsAffected, nil
}
