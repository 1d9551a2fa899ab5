package service

import (
	"slices"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/utils"

	"github.com/shopspring/decimal"
)

// DraftChange is one field edit on a contract form
type DraftChange func(domain.ContractDraft) domain.ContractDraft

// Reduce applies changes in order, then recalculates the derived fields
func Reduce(d domain.ContractDraft, changes ...DraftChange) domain.ContractDraft {
	for _, change := range changes {
		d = change(d)
	}
	return Recalculate(d)
}

// Recalculate derives days and totals from the draft's inputs
func Recalculate(d domain.ContractDraft) domain.ContractDraft {
	d.Days = utils.InclusiveDays(d.StartDate, d.EndDate)
	d.Totals = utils.CalculateContractTotals(utils.PricingInput{
		DailyRate:  d.DailyRate,
		Days:       d.Days,
		Discount:   d.Discount,
		TaxRate:    d.TaxRate,
		Surcharges: d.Surcharges,
	})
	return d
}

func WithCustomer(customerID string) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.CustomerID = customerID
		return d
	}
}

// WithCar selects car. The daily rate defaults to the car's price when none is set yet.
// Known bookings belong to the previous car and are dropped.
func WithCar(car *domain.Car) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		if d.CarID != car.ID {
			d.BookedRanges = nil
			d.BookingsKnown = false
		}
		d.CarID = car.ID
		if d.DailyRate.IsZero() {
			d.DailyRate = car.PricePerDay
		}
		return d
	}
}

func WithDates(start, end domain.Date) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.StartDate = start
		d.EndDate = end
		return d
	}
}

func WithStartDate(start domain.Date) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.StartDate = start
		return d
	}
}

func WithEndDate(end domain.Date) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.EndDate = end
		return d
	}
}

func WithDailyRate(rate decimal.Decimal) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.DailyRate = rate
		return d
	}
}

func WithDiscount(discount decimal.Decimal) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.Discount = discount
		return d
	}
}

func WithTaxRate(rate decimal.Decimal) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.TaxRate = rate
		return d
	}
}

func WithSurcharges(s domain.Surcharges) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.Surcharges = s
		return d
	}
}

func WithStatus(status domain.ContractStatus) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.Status = status
		return d
	}
}

func WithPaymentMode(mode domain.PaymentMode) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.PaymentMode = mode
		return d
	}
}

func WithExtras(extras domain.ContractExtras) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.Extras = extras
		return d
	}
}

// WithBookedRanges records the selected car's existing bookings
func WithBookedRanges(ranges []domain.BookingPeriod) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.BookedRanges = slices.Clone(ranges)
		d.BookingsKnown = true
		return d
	}
}

// WithBookingsUnknown marks the bookings as unavailable and attaches a warning
func WithBookingsUnknown(warning string) DraftChange {
	return func(d domain.ContractDraft) domain.ContractDraft {
		d.BookedRanges = nil
		d.BookingsKnown = false
		d.Warnings = append(slices.Clip(d.Warnings), warning)
		return d
	}
}

// DraftInput is a partial edit of a contract form. Nil fields are left untouched.
type DraftInput struct {
	CustomerID  *string                `json:"customer_id,omitempty"`
	CarID       *string                `json:"car_id,omitempty"`
	StartDate   *domain.Date           `json:"start_date,omitempty"`
	EndDate     *domain.Date           `json:"end_date,omitempty"`
	DailyRate   *decimal.Decimal       `json:"daily_rate,omitempty"`
	Discount    *decimal.Decimal       `json:"discount,omitempty"`
	TaxRate     *decimal.Decimal       `json:"tax_rate,omitempty"`
	Status      *domain.ContractStatus `json:"status,omitempty"`
	PaymentMode *domain.PaymentMode    `json:"payment_mode,omitempty"`

	SimAmount          *decimal.Decimal `json:"sim_amount,omitempty"`
	DeliveryAmount     *decimal.Decimal `json:"delivery_amount,omitempty"`
	ChildSeatAmount    *decimal.Decimal `json:"child_seat_amount,omitempty"`
	BoosterSeatAmount  *decimal.Decimal `json:"booster_seat_amount,omitempty"`
	CardPaymentPercent *decimal.Decimal `json:"card_payment_percent,omitempty"`

	Extras *domain.ContractExtras `json:"extras,omitempty"`
}

// Changes converts the input into draft transitions.
// The car is not included: selecting a car needs a lookup and a bookings fetch.
func (in DraftInput) Changes() []DraftChange {
	var changes []DraftChange
	if in.CustomerID != nil {
		changes = append(changes, WithCustomer(*in.CustomerID))
	}
	if in.StartDate != nil {
		changes = append(changes, WithStartDate(*in.StartDate))
	}
	if in.EndDate != nil {
		changes = append(changes, WithEndDate(*in.EndDate))
	}
	if in.DailyRate != nil {
		changes = append(changes, WithDailyRate(*in.DailyRate))
	}
	if in.Discount != nil {
		changes = append(changes, WithDiscount(*in.Discount))
	}
	if in.TaxRate != nil {
		changes = append(changes, WithTaxRate(*in.TaxRate))
	}
	if in.Status != nil {
		changes = append(changes, WithStatus(*in.Status))
	}
	if in.PaymentMode != nil {
		changes = append(changes, WithPaymentMode(*in.PaymentMode))
	}
	if in.hasSurcharges() {
		changes = append(changes, func(d domain.ContractDraft) domain.ContractDraft {
			s := d.Surcharges
			setIfPresent(&s.SimAmount, in.SimAmount)
			setIfPresent(&s.DeliveryAmount, in.DeliveryAmount)
			setIfPresent(&s.ChildSeatAmount, in.ChildSeatAmount)
			setIfPresent(&s.BoosterSeatAmount, in.BoosterSeatAmount)
			setIfPresent(&s.CardPaymentPercent, in.CardPaymentPercent)
			return WithSurcharges(s)(d)
		})
	}
	if in.Extras != nil {
		changes = append(changes, WithExtras(*in.Extras))
	}
	return changes
}

func (in DraftInput) hasSurcharges() bool {
	return in.SimAmount != nil || in.DeliveryAmount != nil || in.ChildSeatAmount != nil ||
		in.BoosterSeatAmount != nil || in.CardPaymentPercent != nil
}

func setIfPresent(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}

// ValidateDraft checks the fields a contract cannot be saved without
func ValidateDraft(d domain.ContractDraft) error {
	v := &ValidationError{}
	if d.CustomerID == "" {
		v.add("customer_id", "select a customer")
	}
	if d.CarID == "" {
		v.add("car_id", "select a car")
	}
	if d.PaymentMode == "" {
		v.add("payment_mode", "select a payment mode")
	} else if !d.PaymentMode.Valid() {
		v.add("payment_mode", "must be cash, card or bank_transfer")
	}
	if !d.Status.Valid() {
		v.add("status", "unknown contract status")
	}
	switch {
	case d.StartDate.IsZero():
		v.add("start_date", "is required")
	case d.EndDate.IsZero():
		v.add("end_date", "is required")
	case d.EndDate.Before(d.StartDate):
		v.add("end_date", "must not be before start_date")
	}
	return v.orNil()
}

// CheckAvailability rejects a create-mode draft whose period overlaps a known booking.
// Edits are not re-checked, and unknown bookings never block.
func CheckAvailability(d domain.ContractDraft) error {
	if d.Mode != domain.DraftModeCreate || !d.BookingsKnown {
		return nil
	}
	candidate := d.Period()
	conflicts := utils.FindConflicts(d.BookedRanges, candidate)
	if len(conflicts) == 0 {
		return nil
	}
	return &AvailabilityConflictError{
		CarID:     d.CarID,
		Candidate: candidate,
		Conflicts: conflicts,
	}
}
