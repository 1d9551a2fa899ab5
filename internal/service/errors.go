package service

import (
	"errors"
	"fmt"
	"strings"

	"rentdesk-backoffice/internal/domain"
)

var (
	ErrDraftNotFound   = errors.New("contract draft not found")
	ErrSuperseded      = errors.New("car selection superseded by a later one")
	ErrBookingsPending = errors.New("bookings for the selected car are still loading")
	ErrSubmitInFlight  = errors.New("contract draft is already being submitted")
)

// FieldError is one rejected input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError blocks an operation until the listed fields are corrected
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// orNil returns e only when it holds at least one field
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// AvailabilityConflictError reports the existing bookings a candidate period overlaps
type AvailabilityConflictError struct {
	CarID     string
	Candidate domain.BookingPeriod
	Conflicts []domain.BookingPeriod
}

func (e *AvailabilityConflictError) Error() string {
	windows := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		windows = append(windows, c.String())
	}
	return fmt.Sprintf("car is already booked for %s (requested %s)", strings.Join(windows, ", "), e.Candidate)
}
