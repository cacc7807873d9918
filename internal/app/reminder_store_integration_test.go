package app_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-location-remind/internal/app"
	"github.com/KasumiMercury/primind-location-remind/internal/domain"
	"github.com/KasumiMercury/primind-location-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-location-remind/internal/testutil"
)

func setupStoreTest(t *testing.T) (*app.ReminderStore, func()) {
	t.Helper()

	testDB := testutil.SetupTestDB(t)
	store := app.NewReminderStore(repository.NewReminderRepository(testDB.DB))

	return store, func() {
		testDB.CleanTables(t)
	}
}

func TestReminderStoreRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	store, cleanup := setupStoreTest(t)
	defer cleanup()

	ctx := context.Background()
	reminder := createReminder(t, "r1", "Gym")

	require.NoError(t, store.Save(ctx, reminder))

	res := store.GetByID(ctx, reminder.ID())

	require.True(t, res.IsSuccess())
	assert.True(t, reminder.Equals(res.Value()))
}

func TestReminderStoreListAndDeleteAll(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	store, cleanup := setupStoreTest(t)
	defer cleanup()

	ctx := context.Background()

	const n = 5

	ids := make([]domain.ReminderID, 0, n)

	for i := range n {
		reminder := createReminder(t, fmt.Sprintf("r%d", i), fmt.Sprintf("title %d", i))
		require.NoError(t, store.Save(ctx, reminder))

		ids = append(ids, reminder.ID())
	}

	all := store.GetAll(ctx)
	require.True(t, all.IsSuccess())
	assert.Len(t, all.Value(), n)

	require.NoError(t, store.DeleteAll(ctx))
	require.NoError(t, store.DeleteAll(ctx))

	empty := store.GetAll(ctx)
	require.True(t, empty.IsSuccess())
	assert.Empty(t, empty.Value())

	for _, id := range ids {
		res := store.GetByID(ctx, id)

		assert.False(t, res.IsSuccess())
		assert.Equal(t, "Reminder not found!", res.Message())
		assert.Equal(t, domain.CodeNotFound, res.Code())
	}
}

func TestReminderStoreGetMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	store, cleanup := setupStoreTest(t)
	defer cleanup()

	res := store.GetByID(context.Background(), domain.NewReminderID())

	assert.False(t, res.IsSuccess())
	assert.Equal(t, "Reminder not found!", res.Message())
}
