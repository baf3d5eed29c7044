package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstbooks/internal/gst"
)

// User represents an authenticated user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Customer represents a billable party. GSTIN and PAN are optional and
// validated structurally on write; PlaceOfSupply is the default state code
// used when a document does not override it.
type Customer struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	GSTIN          string    `db:"gstin" json:"gstin"`
	PAN            string    `db:"pan" json:"pan"`
	PlaceOfSupply  string    `db:"place_of_supply" json:"place_of_supply"`
	TaxExempt      bool      `db:"tax_exempt" json:"tax_exempt"`
	BillingAddress string    `db:"billing_address" json:"billing_address"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Document is one invoice, estimate, sales order, payment receipt, or vendor
// credit. The totals columns are derived server-side from the lines and the
// resolved tax regime; client-supplied figures are never persisted.
type Document struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	Type            DocumentType    `db:"type" json:"type"`
	Number          string          `db:"number" json:"number"`
	CustomerID      uuid.UUID       `db:"customer_id" json:"customer_id"`
	PlaceOfSupply   string          `db:"place_of_supply" json:"place_of_supply"`
	TaxRegime       gst.TaxRegime   `db:"tax_regime" json:"tax_regime"`
	ShippingEnabled bool            `db:"shipping_enabled" json:"shipping_enabled"`
	ShippingCharge  decimal.Decimal `db:"shipping_charge" json:"shipping_charge"`
	Adjustment      decimal.Decimal `db:"adjustment" json:"adjustment"`
	SubtotalTaxable decimal.Decimal `db:"subtotal_taxable" json:"subtotal_taxable"`
	TotalTax        decimal.Decimal `db:"total_tax" json:"total_tax"`
	CGST            decimal.Decimal `db:"cgst" json:"cgst"`
	SGST            decimal.Decimal `db:"sgst" json:"sgst"`
	IGST            decimal.Decimal `db:"igst" json:"igst"`
	GrandTotal      decimal.Decimal `db:"grand_total" json:"grand_total"`
	AmountInWords   string          `db:"amount_in_words" json:"amount_in_words"`
	Status          DocumentStatus  `db:"status" json:"status"`
	Notes           string          `db:"notes" json:"notes"`
	IssueDate       time.Time       `db:"issue_date" json:"issue_date"`
	DueDate         *time.Time      `db:"due_date" json:"due_date,omitempty"`
	CreatedBy       uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`

	Lines []DocumentLine `db:"-" json:"lines,omitempty"`
}

// DocumentLine is one row of a document. The derived amount columns are
// persisted for display and export but always recomputed from the input
// fields before insert.
type DocumentLine struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	DocumentID     uuid.UUID        `db:"document_id" json:"document_id"`
	Position       int              `db:"position" json:"position"`
	Description    string           `db:"description" json:"description"`
	HSNSACCode     string           `db:"hsn_sac_code" json:"hsn_sac_code"`
	Quantity       decimal.Decimal  `db:"quantity" json:"quantity"`
	Rate           decimal.Decimal  `db:"rate" json:"rate"`
	DiscountType   gst.DiscountType `db:"discount_type" json:"discount_type"`
	DiscountValue  decimal.Decimal  `db:"discount_value" json:"discount_value"`
	TaxRatePercent decimal.Decimal  `db:"tax_rate_percent" json:"tax_rate_percent"`
	TaxableAmount  decimal.Decimal  `db:"taxable_amount" json:"taxable_amount"`
	TaxAmount      decimal.Decimal  `db:"tax_amount" json:"tax_amount"`
	LineTotal      decimal.Decimal  `db:"line_total" json:"line_total"`
}
