package domain

import "fmt"

// BookingPeriod is an inclusive start/end date range during which a car is reserved
type BookingPeriod struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// NewBookingPeriod returns a period, rejecting end before start
func NewBookingPeriod(start, end Date) (BookingPeriod, error) {
	p := BookingPeriod{Start: start, End: end}
	if err := p.Validate(); err != nil {
		return BookingPeriod{}, err
	}
	return p, nil
}

func (p BookingPeriod) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("booking period requires both start and end dates")
	}
	if p.End.Before(p.Start) {
		return fmt.Errorf("booking period end %s is before start %s", p.End, p.Start)
	}
	return nil
}

func (p BookingPeriod) String() string {
	return fmt.Sprintf("%s..%s", p.Start, p.End)
}
