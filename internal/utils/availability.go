package utils

import "rentdesk-backoffice/internal/domain"

// Overlaps reports whether two inclusive periods share at least one day.
// Periods that touch on a single day (one ends on N, the other starts on N) overlap.
func Overlaps(a, b domain.BookingPeriod) bool {
	return !a.Start.After(b.End) && !b.Start.After(a.End)
}

// FindConflicts returns the existing periods that overlap candidate, in input order
func FindConflicts(existing []domain.BookingPeriod, candidate domain.BookingPeriod) []domain.BookingPeriod {
	var conflicts []domain.BookingPeriod
	for _, p := range existing {
		if Overlaps(p, candidate) {
			conflicts = append(conflicts, p)
		}
	}
	return conflicts
}

// HasConflict reports whether any existing period overlaps candidate
func HasConflict(existing []domain.BookingPeriod, candidate domain.BookingPeriod) bool {
	for _, p := range existing {
		if Overlaps(p, candidate) {
			return true
		}
	}
	return false
}
