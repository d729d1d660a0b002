package postgre

import (
	"fmt"
	"strings"

	repo "meetsync/internal/event/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneEvent.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneEventOptions) (string, []any) {
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
	if opt.ExternalID != "" {
		conditions = append(conditions, fmt.Sprintf("external_id = $%d", idx))
		args = append(args, opt.ExternalID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE clause + args for ListEvents.
// From/To match events whose span intersects the requested range.
func (r *implRepository) buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.CalendarType != "" {
		conditions = append(conditions, fmt.Sprintf("calendar_type = $%d", idx))
		args = append(args, string(opt.CalendarType))
		idx++
	}
	if opt.IntegrationID != "" {
		conditions = append(conditions, fmt.Sprintf("calendar_integration_id = $%d", idx))
		args = append(args, opt.IntegrationID)
		idx++
	}
	if !opt.From.IsZero() {
		conditions = append(conditions, fmt.Sprintf("end_time > $%d", idx))
		args = append(args, opt.From)
		idx++
	}
	if !opt.To.IsZero() {
		conditions = append(conditions, fmt.Sprintf("start_time < $%d", idx))
		args = append(args, opt.To)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
