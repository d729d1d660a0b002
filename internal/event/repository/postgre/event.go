package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"meetsync/internal/event"
	repo "meetsync/internal/event/repository"
	"meetsync/internal/model"
)

const eventColumns = `id, user_id, title, description, start_time, end_time, location,
	meeting_url, is_all_day, external_id, calendar_type, calendar_integration_id,
	attendees, reminders, timezone, recurrence, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (event.Event, error) {
	var ev event.Event
	var calType string
	var attendees pq.StringArray
	var reminders pq.Int64Array
	err := row.Scan(
		&ev.ID, &ev.UserID, &ev.Title, &ev.Description, &ev.StartTime, &ev.EndTime,
		&ev.Location, &ev.MeetingURL, &ev.IsAllDay, &ev.ExternalID, &calType,
		&ev.CalendarIntegrationID, &attendees, &reminders, &ev.Timezone, &ev.Recurrence,
		&ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return event.Event{}, err
	}
	ev.CalendarType = model.CalendarType(calType)
	ev.Attendees = []string(attendees)
	ev.Reminders = toInts(reminders)
	return ev, nil
}

func toInts(a pq.Int64Array) []int {
	if len(a) == 0 {
		return nil
	}
	out := make([]int, len(a))
	for i, v := range a {
		out[i] = int(v)
	}
	return out
}

func toInt64s(a []int) pq.Int64Array {
	out := make(pq.Int64Array, len(a))
	for i, v := range a {
		out[i] = int64(v)
	}
	return out
}

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (event.Event, error) {
	query := fmt.Sprintf(`
		INSERT INTO events
			(user_id, title, description, start_time, end_time, location, meeting_url,
			 is_all_day, external_id, calendar_type, calendar_integration_id,
			 attendees, reminders, timezone, recurrence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING %s`, eventColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.Title, opt.Description, opt.StartTime, opt.EndTime,
		opt.Location, opt.MeetingURL, opt.IsAllDay, opt.ExternalID,
		string(opt.CalendarType), opt.CalendarIntegrationID,
		pq.StringArray(opt.Attendees), toInt64s(opt.Reminders), opt.Timezone, opt.Recurrence,
	)
	ev, err := scanEvent(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return event.Event{}, repo.ErrFailedToInsert
	}
	return ev, nil
}

// GetOneEvent retrieves a single Event by the provided filters (AND condition).
// Returns zero-value Event (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (event.Event, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM events WHERE %s LIMIT 1", eventColumns, mods)

	ev, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return event.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return event.Event{}, repo.ErrFailedToGet
	}
	return ev, nil
}

// ListEvents returns all Events matching the filters, ordered by start time.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]event.Event, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM events WHERE %s ORDER BY start_time ASC", eventColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []event.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, ev)
	}
	return out, nil
}

// UpdateEvent overwrites an Event by ID and returns the updated entity.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (event.Event, error) {
	query := fmt.Sprintf(`
		UPDATE events
		SET title = $2, description = $3, start_time = $4, end_time = $5, location = $6,
			meeting_url = $7, is_all_day = $8, external_id = $9, calendar_type = $10,
			calendar_integration_id = $11, attendees = $12, reminders = $13,
			timezone = $14, recurrence = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, eventColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Title, opt.Description, opt.StartTime, opt.EndTime, opt.Location,
		opt.MeetingURL, opt.IsAllDay, opt.ExternalID, string(opt.CalendarType),
		opt.CalendarIntegrationID, pq.StringArray(opt.Attendees), toInt64s(opt.Reminders),
		opt.Timezone, opt.Recurrence,
	)
	ev, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return event.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return event.Event{}, repo.ErrFailedToUpdate
	}
	return ev, nil
}

// DeleteEvent removes an Event by ID.
func (r *implRepository) DeleteEvent(ctx context.Context, id string) error {
	const query = `DELETE FROM events WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// DeleteEventsByIntegration removes all Events owned by an integration.
func (r *implRepository) DeleteEventsByIntegration(ctx context.Context, integrationID string) error {
	const query = `DELETE FROM events WHERE calendar_integration_id = $1`
	if _, err := r.db.ExecContext(ctx, query, integrationID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEventsByIntegration"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
