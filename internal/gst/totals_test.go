package gst

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleItems() []LineItem {
	return []LineItem{
		{
			Quantity:       d("10"),
			Rate:           d("100"),
			DiscountType:   DiscountPercentage,
			DiscountValue:  d("10"),
			TaxRatePercent: d("18"),
		},
		{
			Quantity:       d("2"),
			Rate:           d("500"),
			DiscountType:   DiscountFlat,
			DiscountValue:  d("0"),
			TaxRatePercent: d("18"),
		},
	}
	// taxable 900 + 1000 = 1900; tax 162 + 180 = 342
}

func TestAggregateTotals_IntraStateSplit(t *testing.T) {
	totals := AggregateTotals(sampleItems(), TaxRegimeIntraState, Shipping{}, decimal.Zero)
	assertDecimalEqual(t, "1900", totals.SubtotalTaxable)
	assertDecimalEqual(t, "342", totals.TotalTax)
	assertDecimalEqual(t, "171", totals.CGST)
	assertDecimalEqual(t, "171", totals.SGST)
	assertDecimalEqual(t, "0", totals.IGST)
	assertDecimalEqual(t, "2242", totals.GrandTotal)
}

func TestAggregateTotals_InterStateSplit(t *testing.T) {
	totals := AggregateTotals(sampleItems(), TaxRegimeInterState, Shipping{}, decimal.Zero)
	assertDecimalEqual(t, "0", totals.CGST)
	assertDecimalEqual(t, "0", totals.SGST)
	assertDecimalEqual(t, "342", totals.IGST)
	assertDecimalEqual(t, "2242", totals.GrandTotal)
}

func TestAggregateTotals_ExemptOverridesLineRates(t *testing.T) {
	totals := AggregateTotals(sampleItems(), TaxRegimeExempt, Shipping{}, decimal.Zero)
	assertDecimalEqual(t, "1900", totals.SubtotalTaxable)
	assertDecimalEqual(t, "0", totals.TotalTax)
	assertDecimalEqual(t, "0", totals.CGST)
	assertDecimalEqual(t, "0", totals.SGST)
	assertDecimalEqual(t, "0", totals.IGST)
	assertDecimalEqual(t, "1900", totals.GrandTotal)
}

func TestAggregateTotals_ShippingAndAdjustment(t *testing.T) {
	t.Run("shipping_applied_when_enabled", func(t *testing.T) {
		totals := AggregateTotals(sampleItems(), TaxRegimeIntraState,
			Shipping{Enabled: true, Amount: d("50")}, d("-0.25"))
		assertDecimalEqual(t, "50", totals.ShippingCharge)
		assertDecimalEqual(t, "-0.25", totals.Adjustment)
		assertDecimalEqual(t, "2291.75", totals.GrandTotal)
	})

	t.Run("shipping_ignored_when_disabled", func(t *testing.T) {
		totals := AggregateTotals(sampleItems(), TaxRegimeIntraState,
			Shipping{Enabled: false, Amount: d("50")}, decimal.Zero)
		assertDecimalEqual(t, "0", totals.ShippingCharge)
		assertDecimalEqual(t, "2242", totals.GrandTotal)
	})
}

func TestAggregateTotals_IdempotentAndOrderIndependent(t *testing.T) {
	items := sampleItems()
	first := AggregateTotals(items, TaxRegimeIntraState, Shipping{}, decimal.Zero)
	second := AggregateTotals(items, TaxRegimeIntraState, Shipping{}, decimal.Zero)
	assert.True(t, first.GrandTotal.Equal(second.GrandTotal))
	assert.True(t, first.CGST.Equal(second.CGST))

	reversed := []LineItem{items[1], items[0]}
	permuted := AggregateTotals(reversed, TaxRegimeIntraState, Shipping{}, decimal.Zero)
	assert.True(t, first.SubtotalTaxable.Equal(permuted.SubtotalTaxable))
	assert.True(t, first.TotalTax.Equal(permuted.TotalTax))
	assert.True(t, first.GrandTotal.Equal(permuted.GrandTotal))
}

func TestAggregateTotals_Empty(t *testing.T) {
	totals := AggregateTotals(nil, TaxRegimeInterState, Shipping{}, decimal.Zero)
	assertDecimalEqual(t, "0", totals.SubtotalTaxable)
	assertDecimalEqual(t, "0", totals.GrandTotal)
}

func TestEstimateTaxSplit(t *testing.T) {
	t.Run("intra_state_halves", func(t *testing.T) {
		split := EstimateTaxSplit(d("118"), TaxRegimeIntraState)
		assert.True(t, split.TaxableAmount.Round(2).Equal(d("100")))
		assert.True(t, split.CGST.Round(2).Equal(d("9")))
		assert.True(t, split.SGST.Round(2).Equal(d("9")))
		assert.True(t, split.IGST.IsZero())
	})

	t.Run("inter_state_whole", func(t *testing.T) {
		split := EstimateTaxSplit(d("118"), TaxRegimeInterState)
		assert.True(t, split.IGST.Round(2).Equal(d("18")))
		assert.True(t, split.CGST.IsZero())
	})

	t.Run("exempt_passes_through", func(t *testing.T) {
		split := EstimateTaxSplit(d("118"), TaxRegimeExempt)
		assert.True(t, split.TaxableAmount.Equal(d("118")))
		assert.True(t, split.IGST.IsZero())
	})
}
