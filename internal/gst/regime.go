package gst

import "errors"

// TaxRegime determines how a document's total tax is split.
type TaxRegime string

const (
	// TaxRegimeIntraState applies when buyer and seller are in the same
	// state: tax is split equally between CGST and SGST.
	TaxRegimeIntraState TaxRegime = "intra_state"
	// TaxRegimeInterState applies across state lines: the full tax is IGST.
	TaxRegimeInterState TaxRegime = "inter_state"
	// TaxRegimeExempt reports zero tax regardless of per-line rates.
	TaxRegimeExempt TaxRegime = "exempt"
)

// ErrIndeterminateRegime is returned when a state code needed to resolve the
// regime is missing. Callers must surface this as a required-field error
// rather than defaulting to a regime.
var ErrIndeterminateRegime = errors.New("tax regime indeterminate: seller state or place of supply missing")

// ResolveTaxRegime decides the tax split rule for a transaction. Exemption is
// a document-level override and wins unconditionally, even when state codes
// are missing.
func ResolveTaxRegime(sellerStateCode, placeOfSupply string, taxExempt bool) (TaxRegime, error) {
	if taxExempt {
		return TaxRegimeExempt, nil
	}
	if sellerStateCode == "" || placeOfSupply == "" {
		return "", ErrIndeterminateRegime
	}
	if sellerStateCode == placeOfSupply {
		return TaxRegimeIntraState, nil
	}
	return TaxRegimeInterState, nil
}
