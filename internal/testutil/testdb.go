package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/KasumiMercury/primind-location-remind/internal/infra/repository"
)

// reminderTables lists every table the location reminder schema owns.
var reminderTables = []schema.Tabler{
	repository.ReminderModel{},
	repository.GeofenceHandleModel{},
}

type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// SetupTestDB starts a disposable PostgreSQL container holding the reminder
// and geofence handle tables. The container is terminated when t finishes.
// Callers skip it under -short.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16",
		postgres.WithDatabase("location_remind"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return &TestDB{
		Container: pgContainer,
		DB:        db,
		DSN:       dsn,
	}
}

// CleanTables empties reminders and geofence handles in one statement.
func (tdb *TestDB) CleanTables(t *testing.T) {
	t.Helper()

	names := make([]string, 0, len(reminderTables))
	for _, table := range reminderTables {
		names = append(names, table.TableName())
	}

	if err := tdb.DB.Exec("TRUNCATE TABLE " + strings.Join(names, ", ")).Error; err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
}

// RowCount reports how many rows the table behind model holds.
func (tdb *TestDB) RowCount(t *testing.T, model schema.Tabler) int64 {
	t.Helper()

	var count int64
	if err := tdb.DB.Table(model.TableName()).Count(&count).Error; err != nil {
		t.Fatalf("failed to count %s: %v", model.TableName(), err)
	}

	return count
}
