package gst

import "github.com/shopspring/decimal"

// DiscountType selects how a line item's discount value is interpreted.
type DiscountType string

const (
	// DiscountPercentage treats the discount value as a percentage of the
	// base amount, clamped to 100.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFlat treats the discount value as an absolute amount, clamped
	// to the base amount.
	DiscountFlat DiscountType = "flat"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// NonTaxableRate is the sentinel tax rate for lines that carry no GST at all,
// as opposed to a 0% slab.
var NonTaxableRate = decimal.NewFromInt(-1)

// LineItem is one editable row of a document. All fields are expected to be
// sanitized, non-negative decimals (except TaxRatePercent, where negative
// values mean non-taxable).
type LineItem struct {
	Quantity       decimal.Decimal
	Rate           decimal.Decimal
	DiscountType   DiscountType
	DiscountValue  decimal.Decimal
	TaxRatePercent decimal.Decimal
}

// LineItemResult holds the derived amounts for a single line. Values keep
// full precision; round only when formatting or serializing.
type LineItemResult struct {
	BaseAmount     decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxableAmount  decimal.Decimal
	TaxAmount      decimal.Decimal
	LineTotal      decimal.Decimal
}

// CalculateLineItem derives the amounts for one line. The discount can never
// push the taxable amount below zero: percentage discounts are clamped to
// 100% and flat discounts to the base amount.
func CalculateLineItem(item LineItem) LineItemResult {
	base := item.Quantity.Mul(item.Rate)

	var discount decimal.Decimal
	switch item.DiscountType {
	case DiscountPercentage:
		pct := item.DiscountValue
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
		discount = base.Mul(pct).Div(hundred)
	default:
		discount = item.DiscountValue
	}
	if discount.GreaterThan(base) {
		discount = base
	}

	taxable := base.Sub(discount)
	tax := decimal.Zero
	if item.TaxRatePercent.IsPositive() {
		tax = taxable.Mul(item.TaxRatePercent).Div(hundred)
	}

	return LineItemResult{
		BaseAmount:     base,
		DiscountAmount: discount,
		TaxableAmount:  taxable,
		TaxAmount:      tax,
		LineTotal:      taxable.Add(tax),
	}
}
