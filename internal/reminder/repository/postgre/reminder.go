package postgre

import (
	"context"
	"database/sql"
	"time"

	repo "meetsync/internal/reminder/repository"
	"meetsync/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for reminders.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("reminder/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// CreateReminders inserts one row per trigger time for the event.
func (r *implRepository) CreateReminders(ctx context.Context, eventID string, triggerAt []time.Time) error {
	const query = `INSERT INTO reminders (event_id, trigger_at, created_at) VALUES ($1, $2, NOW())`
	for _, t := range triggerAt {
		if _, err := r.db.ExecContext(ctx, query, eventID, t); err != nil {
			r.l.Errorf(ctx, "reminder/repository/postgre.CreateReminders: %v", err)
			return repo.ErrFailedToInsert
		}
	}
	return nil
}

// DeleteRemindersByEvent removes all reminders for the event.
func (r *implRepository) DeleteRemindersByEvent(ctx context.Context, eventID string) error {
	const query = `DELETE FROM reminders WHERE event_id = $1`
	if _, err := r.db.ExecContext(ctx, query, eventID); err != nil {
		r.l.Errorf(ctx, "reminder/repository/postgre.DeleteRemindersByEvent: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}
