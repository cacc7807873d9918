package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

// ReminderStore is the single access point to persisted reminders. Writes
// on one store are serialized; reads go straight to the repository.
type ReminderStore struct {
	repo domain.ReminderRepository
	mu   sync.Mutex
}

func NewReminderStore(repo domain.ReminderRepository) *ReminderStore {
	return &ReminderStore{repo: repo}
}

// Save creates the reminder or overwrites the one with the same ID.
func (s *ReminderStore) Save(ctx context.Context, reminder *domain.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, reminder); err != nil {
		slog.Error("failed to save reminder",
			"error", err,
			"reminder_id", reminder.ID().String(),
		)

		return fmt.Errorf("failed to save reminder: %w", err)
	}

	return nil
}

func (s *ReminderStore) GetAll(ctx context.Context) domain.Result[[]*domain.Reminder] {
	reminders, err := s.repo.FindAll(ctx)
	if err != nil {
		slog.Error("failed to get reminders",
			"error", err,
		)

		return domain.Failure[[]*domain.Reminder](err.Error(), domain.CodeInfrastructure)
	}

	return domain.Success(reminders)
}

func (s *ReminderStore) GetByID(ctx context.Context, id domain.ReminderID) domain.Result[*domain.Reminder] {
	reminder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			return domain.Failure[*domain.Reminder](domain.ErrReminderNotFound.Error(), domain.CodeNotFound)
		}

		slog.Error("failed to get reminder",
			"error", err,
			"reminder_id", id.String(),
		)

		return domain.Failure[*domain.Reminder](err.Error(), domain.CodeInfrastructure)
	}

	return domain.Success(reminder)
}

// Delete removes one reminder. Deleting a missing reminder succeeds.
func (s *ReminderStore) Delete(ctx context.Context, id domain.ReminderID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrReminderNotFound) {
		slog.Error("failed to delete reminder",
			"error", err,
			"reminder_id", id.String(),
		)

		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}

func (s *ReminderStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		slog.Error("failed to delete all reminders",
			"error", err,
		)

		return fmt.Errorf("failed to delete all reminders: %w", err)
	}

	slog.Debug("all reminders deleted",
		"count", deleted,
	)

	return nil
}
