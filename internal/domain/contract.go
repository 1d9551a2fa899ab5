package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "draft"
	ContractStatusActive    ContractStatus = "active"
	ContractStatusCompleted ContractStatus = "completed"
	ContractStatusCancelled ContractStatus = "cancelled"
	ContractStatusOverdue   ContractStatus = "overdue"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractStatusDraft, ContractStatusActive, ContractStatusCompleted,
		ContractStatusCancelled, ContractStatusOverdue:
		return true
	}
	return false
}

// CountsAsRevenue reports whether contracts in this status contribute to revenue reports
func (s ContractStatus) CountsAsRevenue() bool {
	return s == ContractStatusActive || s == ContractStatusCompleted
}

type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "cash"
	PaymentModeCard         PaymentMode = "card"
	PaymentModeBankTransfer PaymentMode = "bank_transfer"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeCard, PaymentModeBankTransfer:
		return true
	}
	return false
}

// Surcharges are fixed add-ons charged after tax, plus the card payment percentage
type Surcharges struct {
	SimAmount          decimal.Decimal `json:"sim_amount"`
	DeliveryAmount     decimal.Decimal `json:"delivery_amount"`
	ChildSeatAmount    decimal.Decimal `json:"child_seat_amount"`
	BoosterSeatAmount  decimal.Decimal `json:"booster_seat_amount"`
	CardPaymentPercent decimal.Decimal `json:"card_payment_percent"`
}

// Fixed returns the named fixed amounts
func (s Surcharges) Fixed() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"sim":          s.SimAmount,
		"delivery":     s.DeliveryAmount,
		"child_seat":   s.ChildSeatAmount,
		"booster_seat": s.BoosterSeatAmount,
	}
}

// ContractTotals are derived from rate, days, discount, tax and surcharges; never set directly
type ContractTotals struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	CardPaymentAmount decimal.Decimal `json:"card_payment_amount"`
	Total             decimal.Decimal `json:"total"`
}

// ContractExtras are the informational fields of a contract; they never affect pricing
type ContractExtras struct {
	LicenseNumber         string `json:"license_number,omitempty"`
	ClientSignatureBase64 string `json:"client_signature_base64,omitempty"`
	OwnerSignatureBase64  string `json:"owner_signature_base64,omitempty"`
	FuelAmount            *int   `json:"fuel_amount,omitempty"`
	PreAuthorization      string `json:"pre_authorization,omitempty"`
	PickupDate            *Date  `json:"pickup_date,omitempty"`
	PickupTime            string `json:"pickup_time,omitempty"`
	DeliveryDate          *Date  `json:"delivery_date,omitempty"`
	DeliveryTime          string `json:"delivery_time,omitempty"`
	SecondDriverName      string `json:"second_driver_name,omitempty"`
	SecondDriverLicense   string `json:"second_driver_license,omitempty"`
	Notes                 string `json:"notes,omitempty"`
}

type Contract struct {
	ID             string          `json:"id"`
	ContractNumber string          `json:"contract_number"`
	CustomerID     string          `json:"customer_id"`
	CarID          string          `json:"car_id"`
	StartDate      Date            `json:"start_date"`
	EndDate        Date            `json:"end_date"`
	DailyRate      decimal.Decimal `json:"daily_rate"`
	Days           int             `json:"days"`
	Discount       decimal.Decimal `json:"discount"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Surcharges
	Subtotal          decimal.Decimal `json:"subtotal"`
	CardPaymentAmount decimal.Decimal `json:"card_payment_amount"`
	Total             decimal.Decimal `json:"total"`
	Status            ContractStatus  `json:"status"`
	PaymentMode       PaymentMode     `json:"payment_mode"`

	ContractExtras

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Period returns the contract's booking period
func (c *Contract) Period() BookingPeriod {
	return BookingPeriod{Start: c.StartDate, End: c.EndDate}
}

// ActivityDate is the date reports bucket the contract on: creation, falling back to start
func (c *Contract) ActivityDate() Date {
	if c.CreatedAt.IsZero() {
		return c.StartDate
	}
	return DateOf(c.CreatedAt.UTC())
}

// ContractImage is a photo attached to a contract (damage report, fuel gauge, ...)
type ContractImage struct {
	ID          string    `json:"id"`
	ContractID  string    `json:"contract_id"`
	ImageBase64 string    `json:"image_base64"`
	Caption     string    `json:"caption,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
