package utils

import "rentdesk-backoffice/internal/domain"

// InclusiveDays counts the days of [start, end] including both ends.
// It returns 0 when either date is unset or end is before start.
func InclusiveDays(start, end domain.Date) int {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return start.DaysUntil(end) + 1
}
