package utils

import (
	"github.com/shopspring/decimal"

	"rentdesk-backoffice/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// currencyPlaces is the precision percentage-derived amounts are rounded to
const currencyPlaces = 2

// PricingInput is everything the contract total depends on
type PricingInput struct {
	DailyRate  decimal.Decimal
	Days       int
	Discount   decimal.Decimal
	TaxRate    decimal.Decimal
	Surcharges domain.Surcharges
}

// CalculateContractTotals derives subtotal, tax, card fee and total.
//
// gross = rate*days, subtotal = max(0, gross-discount), tax = subtotal*taxRate/100,
// base = subtotal+tax, card = base*cardPercent/100, total = base+fixed surcharges+card.
// A non-positive rate or day count yields all-zero totals: the form is not yet computable.
// Negative inputs are clamped to zero, so the function never fails.
func CalculateContractTotals(in PricingInput) domain.ContractTotals {
	if !in.DailyRate.IsPositive() || in.Days <= 0 {
		return domain.ContractTotals{}
	}

	gross := in.DailyRate.Mul(decimal.NewFromInt(int64(in.Days)))
	subtotal := decimal.Max(decimal.Zero, gross.Sub(nonNegative(in.Discount)))
	taxAmount := percentOf(subtotal, in.TaxRate)
	baseTotal := subtotal.Add(taxAmount)
	cardAmount := percentOf(baseTotal, in.Surcharges.CardPaymentPercent)

	total := baseTotal.Add(SumSurcharges(in.Surcharges)).Add(cardAmount)

	return domain.ContractTotals{
		Subtotal:          subtotal,
		TaxAmount:         taxAmount,
		CardPaymentAmount: cardAmount,
		Total:             total,
	}
}

// SumSurcharges adds the fixed add-ons; negative amounts count as zero
func SumSurcharges(s domain.Surcharges) decimal.Decimal {
	sum := decimal.Zero
	for _, amount := range s.Fixed() {
		sum = sum.Add(nonNegative(amount))
	}
	return sum
}

func percentOf(amount, percent decimal.Decimal) decimal.Decimal {
	if !percent.IsPositive() {
		return decimal.Zero
	}
	return amount.Mul(percent).Div(hundred).Round(currencyPlaces)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
