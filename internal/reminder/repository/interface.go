package repository

import (
	"context"
	"errors"
	"time"
)

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToDelete = errors.New("failed to delete record")
)

// Repository persists reminder trigger times for a separate notifier to fire.
type Repository interface {
	CreateReminders(ctx context.Context, eventID string, triggerAt []time.Time) error
	DeleteRemindersByEvent(ctx context.Context, eventID string) error
}
