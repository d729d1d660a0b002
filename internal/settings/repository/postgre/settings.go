package postgre

import (
	"context"
	"database/sql"

	"meetsync/internal/model"
	"meetsync/internal/settings"
	repo "meetsync/internal/settings/repository"
	"meetsync/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for user settings.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("settings/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// GetSettings returns the user's settings row, or the zero value when absent.
func (r *implRepository) GetSettings(ctx context.Context, userID string) (settings.Settings, error) {
	const query = `
		SELECT user_id, default_calendar_integration_id, default_calendar_type, timezone, updated_at
		FROM user_settings WHERE user_id = $1`

	var s settings.Settings
	var calType string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &s.DefaultCalendarIntegrationID, &calType, &s.Timezone, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return settings.Settings{UserID: userID}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "settings/repository/postgre.GetSettings: %v", err)
		return settings.Settings{}, repo.ErrFailedToGet
	}
	s.DefaultCalendarType = model.CalendarType(calType)
	return s, nil
}

// UpsertSettings writes the user's settings row, inserting on first save.
func (r *implRepository) UpsertSettings(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	const query = `
		INSERT INTO user_settings (user_id, default_calendar_integration_id, default_calendar_type, timezone, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET default_calendar_integration_id = EXCLUDED.default_calendar_integration_id,
			default_calendar_type = EXCLUDED.default_calendar_type,
			timezone = EXCLUDED.timezone,
			updated_at = NOW()
		RETURNING user_id, default_calendar_integration_id, default_calendar_type, timezone, updated_at`

	var out settings.Settings
	var calType string
	err := r.db.QueryRowContext(ctx, query,
		s.UserID, s.DefaultCalendarIntegrationID, string(s.DefaultCalendarType), s.Timezone,
	).Scan(&out.UserID, &out.DefaultCalendarIntegrationID, &calType, &out.Timezone, &out.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "settings/repository/postgre.UpsertSettings: %v", err)
		return settings.Settings{}, repo.ErrFailedToUpsert
	}
	out.DefaultCalendarType = model.CalendarType(calType)
	return out, nil
}
