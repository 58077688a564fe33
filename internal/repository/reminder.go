package repository

import (
	"context"
	"time"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// Reminders defines the data access interface for scheduled reminders
type Reminders interface {
	// Create inserts r unless the user already holds limit reminders (domain.ErrReminderCap).
	Create(ctx context.Context, r *domain.Reminder, limit int) (*domain.Reminder, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Reminder, error)
	// Delete only removes reminders owned by userID; reports whether a row was removed.
	Delete(ctx context.Context, userID, reminderID int64) (bool, error)
	// ClaimDue locks up to limit reminders due at now, reschedules repeating ones and
	// deletes one-shot ones before returning them. Concurrent claimers never see the same row.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.Reminder, error)
}
