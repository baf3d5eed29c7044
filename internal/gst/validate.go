// Package gst implements the GST calculation core: structural validation of
// GSTIN/PAN identifiers, tax regime resolution, line-item and document-total
// arithmetic, and the Indian-numbering amount-in-words converter.
//
// Every function in this package is pure: no I/O, no shared state, and
// identical inputs always produce identical outputs. Callers are responsible
// for sanitizing numeric inputs; passing negative or non-finite quantities
// produces unspecified results.
package gst

import (
	"fmt"
	"regexp"
)

var (
	gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
)

// FieldValidation is the outcome of a structural field check. Validation
// never fails with an error; the message is suitable for inline display.
type FieldValidation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidateGSTIN checks the shape of a GSTIN. An empty value is valid because
// the field is optional. Only the published format is checked; the trailing
// checksum character is not verified, so a passing value is not proof of a
// registered GSTIN.
func ValidateGSTIN(value string) FieldValidation {
	if value == "" {
		return FieldValidation{Valid: true}
	}
	if len(value) != 15 {
		return FieldValidation{Message: "GSTIN must be 15 characters"}
	}
	if !gstinPattern.MatchString(value) {
		return FieldValidation{Message: "Invalid GSTIN format"}
	}
	return FieldValidation{Valid: true}
}

// ValidatePAN checks the shape of a PAN. An empty value is valid.
func ValidatePAN(value string) FieldValidation {
	if value == "" {
		return FieldValidation{Valid: true}
	}
	if len(value) != 10 {
		return FieldValidation{Message: "PAN must be 10 characters"}
	}
	if !panPattern.MatchString(value) {
		return FieldValidation{Message: "Invalid PAN format"}
	}
	return FieldValidation{Valid: true}
}

// StateCodeFromGSTIN extracts the embedded 2-digit state code. It returns ""
// when the value is too short and does not validate the GSTIN itself.
func StateCodeFromGSTIN(gstin string) string {
	if len(gstin) < 2 {
		return ""
	}
	return gstin[:2]
}

// StateMismatch describes a GSTIN whose embedded state code differs from an
// independently selected place of supply. It is a warning, not a validation
// failure: registrations in one state can legitimately bill supplies to
// another.
type StateMismatch struct {
	GSTINStateCode    string `json:"gstin_state_code"`
	GSTINState        string `json:"gstin_state"`
	SelectedStateCode string `json:"selected_state_code"`
	SelectedState     string `json:"selected_state"`
}

// Warning renders the mismatch as display text naming both states.
func (m *StateMismatch) Warning() string {
	return fmt.Sprintf("GSTIN belongs to %s (%s) but place of supply is %s (%s)",
		m.GSTINState, m.GSTINStateCode, m.SelectedState, m.SelectedStateCode)
}

// CheckGSTINState compares the state code embedded in gstin against a
// selected place-of-supply code. It returns nil when either value is missing,
// the GSTIN is too short to carry a state code, or the codes agree.
func CheckGSTINState(gstin, placeOfSupply string) *StateMismatch {
	if gstin == "" || placeOfSupply == "" {
		return nil
	}
	code := StateCodeFromGSTIN(gstin)
	if code == "" || code == placeOfSupply {
		return nil
	}
	gstinState, ok := StateName(code)
	if !ok {
		gstinState = "unknown state"
	}
	selectedState, ok := StateName(placeOfSupply)
	if !ok {
		selectedState = "unknown state"
	}
	return &StateMismatch{
		GSTINStateCode:    code,
		GSTINState:        gstinState,
		SelectedStateCode: placeOfSupply,
		SelectedState:     selectedState,
	}
}
