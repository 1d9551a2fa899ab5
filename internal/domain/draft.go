package domain

import "github.com/shopspring/decimal"

type DraftMode string

const (
	DraftModeCreate DraftMode = "create"
	DraftModeEdit   DraftMode = "edit"
)

// ContractDraft is the in-progress state of a contract form.
// It is a value: transitions return a new draft and never mutate slices in place.
type ContractDraft struct {
	ID             string          `json:"id,omitempty"`
	Mode           DraftMode       `json:"mode"`
	ContractID     string          `json:"contract_id,omitempty"`
	ContractNumber string          `json:"contract_number,omitempty"`
	CustomerID     string          `json:"customer_id"`
	CarID          string          `json:"car_id"`
	StartDate      Date            `json:"start_date"`
	EndDate        Date            `json:"end_date"`
	DailyRate      decimal.Decimal `json:"daily_rate"`
	Days           int             `json:"days"`
	Discount       decimal.Decimal `json:"discount"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Surcharges     Surcharges      `json:"surcharges"`
	Totals         ContractTotals  `json:"totals"`
	Status         ContractStatus  `json:"status"`
	PaymentMode    PaymentMode     `json:"payment_mode"`
	Extras         ContractExtras  `json:"extras"`

	// BookedRanges are the car's existing bookings, excluding the contract being edited.
	BookedRanges []BookingPeriod `json:"booked_ranges"`
	// BookingsKnown is false until a fetch succeeds; an unknown set never blocks submission.
	BookingsKnown bool     `json:"bookings_known"`
	Warnings      []string `json:"warnings,omitempty"`
}

// NewContractDraft returns an empty create-mode draft
func NewContractDraft() ContractDraft {
	return ContractDraft{
		Mode:   DraftModeCreate,
		Status: ContractStatusDraft,
	}
}

// DraftFromContract opens an existing contract for editing
func DraftFromContract(c *Contract) ContractDraft {
	return ContractDraft{
		Mode:           DraftModeEdit,
		ContractID:     c.ID,
		ContractNumber: c.ContractNumber,
		CustomerID:     c.CustomerID,
		CarID:          c.CarID,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		DailyRate:      c.DailyRate,
		Days:           c.Days,
		Discount:       c.Discount,
		TaxRate:        c.TaxRate,
		Surcharges:     c.Surcharges,
		Totals: ContractTotals{
			Subtotal:          c.Subtotal,
			CardPaymentAmount: c.CardPaymentAmount,
			Total:             c.Total,
		},
		Status:      c.Status,
		PaymentMode: c.PaymentMode,
		Extras:      c.ContractExtras,
	}
}

// Period returns the draft's candidate booking period
func (d ContractDraft) Period() BookingPeriod {
	return BookingPeriod{Start: d.StartDate, End: d.EndDate}
}

// Contract assembles the persistable record. Timestamps are left to the store.
func (d ContractDraft) Contract() *Contract {
	return &Contract{
		ID:                d.ContractID,
		ContractNumber:    d.ContractNumber,
		CustomerID:        d.CustomerID,
		CarID:             d.CarID,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		DailyRate:         d.DailyRate,
		Days:              d.Days,
		Discount:          d.Discount,
		TaxRate:           d.TaxRate,
		Surcharges:        d.Surcharges,
		Subtotal:          d.Totals.Subtotal,
		CardPaymentAmount: d.Totals.CardPaymentAmount,
		Total:             d.Totals.Total,
		Status:            d.Status,
		PaymentMode:       d.PaymentMode,
		ContractExtras:    d.Extras,
	}
}
