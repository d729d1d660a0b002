package postgre

import (
	"fmt"
	"strings"

	repo "meetsync/internal/integration/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneIntegration.
// All non-zero fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneIntegrationOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", idx))
		args = append(args, string(opt.Type))
		idx++
	}
	if opt.OnlyPrimary {
		conditions = append(conditions, "is_primary = TRUE")
	}
	if opt.OnlyConnected {
		conditions = append(conditions, "is_connected = TRUE")
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE clause + args for ListIntegrations.
func (r *implRepository) buildListQuery(opt repo.ListIntegrationsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", idx))
		args = append(args, string(opt.Type))
		idx++
	}
	if opt.OnlyConnected {
		conditions = append(conditions, "is_connected = TRUE")
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildUpdateQuery builds the SET clause + args for UpdateIntegration.
// $1 is reserved for the id in the WHERE clause.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateIntegrationOptions) (string, []any) {
	sets := []string{"updated_at = NOW()"}
	args := []any{opt.ID}
	idx := 2

	if opt.Name != "" {
		sets = append(sets, fmt.Sprintf("name = $%d", idx))
		args = append(args, opt.Name)
		idx++
	}
	if opt.AccessToken != "" {
		sets = append(sets, fmt.Sprintf("access_token = $%d", idx))
		args = append(args, opt.AccessToken)
		idx++
	}
	if opt.RefreshToken != "" {
		sets = append(sets, fmt.Sprintf("refresh_token = $%d", idx))
		args = append(args, opt.RefreshToken)
		idx++
	}
	if !opt.ExpiresAt.IsZero() {
		sets = append(sets, fmt.Sprintf("expires_at = $%d", idx))
		args = append(args, opt.ExpiresAt)
		idx++
	}
	if !opt.LastSynced.IsZero() {
		sets = append(sets, fmt.Sprintf("last_synced = $%d", idx))
		args = append(args, opt.LastSynced)
		idx++
	}
	if opt.IsConnected != nil {
		sets = append(sets, fmt.Sprintf("is_connected = $%d", idx))
		args = append(args, *opt.IsConnected)
		idx++
	}
	if opt.IsPrimary != nil {
		sets = append(sets, fmt.Sprintf("is_primary = $%d", idx))
		args = append(args, *opt.IsPrimary)
	}

	return strings.Join(sets, ", "), args
}
