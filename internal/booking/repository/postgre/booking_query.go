package postgre

import (
	"fmt"
	"strings"

	repo "meetsync/internal/booking/repository"
)

func (r *implRepository) buildGetOneQuery(opt repo.GetOneBookingOptions) (string, []any) {
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

	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}
	return strings.Join(conditions, " AND "), args
}

func (r *implRepository) buildListQuery(opt repo.ListBookingsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
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
		conditions = append(conditions, "1=1")
	}
	return strings.Join(conditions, " AND "), args
}
