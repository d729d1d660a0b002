package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"meetsync/internal/integration"
	"meetsync/internal/model"
	repo "meetsync/internal/integration/repository"
)

const integrationColumns = `id, user_id, type, name, access_token, refresh_token,
	expires_at, calendar_id, last_synced, is_connected, is_primary, created_at, updated_at`

// scanIntegration scans one row into an Integration, handling nullable times.
func scanIntegration(row interface{ Scan(...any) error }) (integration.Integration, error) {
	var in integration.Integration
	var typ string
	var expiresAt, lastSynced sql.NullTime
	err := row.Scan(
		&in.ID, &in.UserID, &typ, &in.Name, &in.AccessToken, &in.RefreshToken,
		&expiresAt, &in.CalendarID, &lastSynced, &in.IsConnected, &in.IsPrimary,
		&in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		return integration.Integration{}, err
	}
	in.Type = model.CalendarType(typ)
	if expiresAt.Valid {
		in.ExpiresAt = expiresAt.Time
	}
	if lastSynced.Valid {
		in.LastSynced = lastSynced.Time
	}
	return in, nil
}

// nullTime converts a zero time to NULL.
func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// CreateIntegration inserts a new Integration row and returns the created entity.
func (r *implRepository) CreateIntegration(ctx context.Context, opt repo.CreateIntegrationOptions) (integration.Integration, error) {
	query := fmt.Sprintf(`
		INSERT INTO calendar_integrations
			(user_id, type, name, access_token, refresh_token, expires_at,
			 calendar_id, is_connected, is_primary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s`, integrationColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.UserID, string(opt.Type), opt.Name, opt.AccessToken, opt.RefreshToken,
		nullTime(opt.ExpiresAt), opt.CalendarID, opt.IsConnected, opt.IsPrimary,
	)
	in, err := scanIntegration(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateIntegration"), err)
		return integration.Integration{}, repo.ErrFailedToInsert
	}
	return in, nil
}

// GetOneIntegration retrieves a single Integration by the provided filters.
// Returns zero-value Integration (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneIntegration(ctx context.Context, opt repo.GetOneIntegrationOptions) (integration.Integration, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM calendar_integrations WHERE %s ORDER BY created_at ASC LIMIT 1",
		integrationColumns, mods)

	in, err := scanIntegration(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return integration.Integration{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneIntegration"), err)
		return integration.Integration{}, repo.ErrFailedToGet
	}
	return in, nil
}

// ListIntegrations returns all Integrations matching the filters.
func (r *implRepository) ListIntegrations(ctx context.Context, opt repo.ListIntegrationsOptions) ([]integration.Integration, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM calendar_integrations WHERE %s ORDER BY created_at ASC",
		integrationColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListIntegrations"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []integration.Integration
	for rows.Next() {
		in, err := scanIntegration(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, in)
	}
	return out, nil
}

// UpdateIntegration updates an Integration by ID and returns the updated entity.
func (r *implRepository) UpdateIntegration(ctx context.Context, opt repo.UpdateIntegrationOptions) (integration.Integration, error) {
	mods, args := r.buildUpdateQuery(opt)
	query := fmt.Sprintf("UPDATE calendar_integrations SET %s WHERE id = $1 RETURNING %s",
		mods, integrationColumns)

	in, err := scanIntegration(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return integration.Integration{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateIntegration"), err)
		return integration.Integration{}, repo.ErrFailedToUpdate
	}
	return in, nil
}

// DeleteIntegration removes an Integration by ID.
func (r *implRepository) DeleteIntegration(ctx context.Context, id string) error {
	const query = `DELETE FROM calendar_integrations WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteIntegration"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ClearPrimary unsets isPrimary for every integration of the (user, type).
func (r *implRepository) ClearPrimary(ctx context.Context, userID string, typ model.CalendarType) error {
	const query = `
		UPDATE calendar_integrations
		SET is_primary = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND type = $2 AND is_primary = TRUE`
	if _, err := r.db.ExecContext(ctx, query, userID, string(typ)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClearPrimary"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
