package gst

import "github.com/shopspring/decimal"

// Shipping is an optional document-level charge. Amount is ignored unless
// Enabled is set.
type Shipping struct {
	Enabled bool
	Amount  decimal.Decimal
}

// DocumentTotals is the aggregate of all line items plus document-level
// charges, with the total tax split per the resolved regime.
type DocumentTotals struct {
	SubtotalTaxable decimal.Decimal
	TotalTax        decimal.Decimal
	CGST            decimal.Decimal
	SGST            decimal.Decimal
	IGST            decimal.Decimal
	ShippingCharge  decimal.Decimal
	Adjustment      decimal.Decimal
	GrandTotal      decimal.Decimal
}

// AggregateTotals folds CalculateLineItem over items and applies the regime
// split, shipping, and the signed adjustment. Under the exempt regime the
// document reports zero tax even when lines carry non-zero rates; exemption
// is a document-level override, not a per-line one. The result is independent
// of item order.
func AggregateTotals(items []LineItem, regime TaxRegime, shipping Shipping, adjustment decimal.Decimal) DocumentTotals {
	var subtotal, tax decimal.Decimal
	for _, item := range items {
		r := CalculateLineItem(item)
		subtotal = subtotal.Add(r.TaxableAmount)
		tax = tax.Add(r.TaxAmount)
	}

	totals := DocumentTotals{
		SubtotalTaxable: subtotal,
		Adjustment:      adjustment,
	}
	switch regime {
	case TaxRegimeIntraState:
		totals.TotalTax = tax
		half := tax.Div(two)
		totals.CGST = half
		totals.SGST = half
	case TaxRegimeInterState:
		totals.TotalTax = tax
		totals.IGST = tax
	case TaxRegimeExempt:
		// all tax fields stay zero
	}

	if shipping.Enabled {
		totals.ShippingCharge = shipping.Amount
	}
	totals.GrandTotal = totals.SubtotalTaxable.
		Add(totals.TotalTax).
		Add(totals.ShippingCharge).
		Add(adjustment)
	return totals
}

// TaxSplit is an estimated breakdown of a tax-inclusive total.
type TaxSplit struct {
	TaxableAmount decimal.Decimal
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	IGST          decimal.Decimal
}

var inclusiveEighteen = decimal.NewFromFloat(1.18)

// EstimateTaxSplit back-computes a breakdown from a tax-inclusive total,
// assuming the standard 18% slab. This is a display-only estimation for
// documents that carry no per-line tax data; it must never feed the
// authoritative totals persisted at submission time. Use AggregateTotals for
// those.
func EstimateTaxSplit(grandTotal decimal.Decimal, regime TaxRegime) TaxSplit {
	if regime == TaxRegimeExempt {
		return TaxSplit{TaxableAmount: grandTotal}
	}
	taxable := grandTotal.Div(inclusiveEighteen)
	tax := grandTotal.Sub(taxable)
	split := TaxSplit{TaxableAmount: taxable}
	if regime == TaxRegimeIntraState {
		half := tax.Div(two)
		split.CGST = half
		split.SGST = half
	} else {
		split.IGST = tax
	}
	return split
}
