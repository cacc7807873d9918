package repository

import "gorm.io/gorm"

// AutoMigrate creates or extends the tables. It never drops columns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&ReminderModel{}, &GeofenceHandleModel{})
}
