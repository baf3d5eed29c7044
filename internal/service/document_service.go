package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstbooks/internal/config"
	"gstbooks/internal/domain"
	"gstbooks/internal/gst"
	"gstbooks/internal/port"
)

// LineItemInput is one document row as submitted by the client. Derived
// amounts are never accepted from the client.
type LineItemInput struct {
	Description    string           `json:"description" binding:"required"`
	HSNSACCode     string           `json:"hsn_sac_code"`
	Quantity       decimal.Decimal  `json:"quantity"`
	Rate           decimal.Decimal  `json:"rate"`
	DiscountType   gst.DiscountType `json:"discount_type" binding:"omitempty,oneof=percentage flat"`
	DiscountValue  decimal.Decimal  `json:"discount_value"`
	TaxRatePercent decimal.Decimal  `json:"tax_rate_percent"`
}

// DocumentInput is the DTO for creating a document.
type DocumentInput struct {
	Type            domain.DocumentType `json:"type" binding:"required"`
	Number          string              `json:"number" binding:"required"`
	CustomerID      uuid.UUID           `json:"customer_id" binding:"required"`
	PlaceOfSupply   string              `json:"place_of_supply"`
	ShippingEnabled bool                `json:"shipping_enabled"`
	ShippingCharge  decimal.Decimal     `json:"shipping_charge"`
	Adjustment      decimal.Decimal     `json:"adjustment"`
	Notes           string              `json:"notes"`
	IssueDate       time.Time           `json:"issue_date"`
	DueDate         *time.Time          `json:"due_date"`
	Draft           bool                `json:"draft"`
	Lines           []LineItemInput     `json:"lines" binding:"required,min=1,dive"`
}

// PreviewInput is the DTO for a totals preview; nothing is persisted.
type PreviewInput struct {
	PlaceOfSupply   string          `json:"place_of_supply"`
	TaxExempt       bool            `json:"tax_exempt"`
	ShippingEnabled bool            `json:"shipping_enabled"`
	ShippingCharge  decimal.Decimal `json:"shipping_charge"`
	Adjustment      decimal.Decimal `json:"adjustment"`
	Lines           []LineItemInput `json:"lines" binding:"required,min=1,dive"`
}

// LineResult is the per-row echo of a preview, rounded for display.
type LineResult struct {
	BaseAmount     decimal.Decimal `json:"base_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	LineTotal      decimal.Decimal `json:"line_total"`
}

// TotalsResult is the computed footer of a document, rounded for display.
type TotalsResult struct {
	TaxRegime       gst.TaxRegime   `json:"tax_regime"`
	SubtotalTaxable decimal.Decimal `json:"subtotal_taxable"`
	TotalTax        decimal.Decimal `json:"total_tax"`
	CGST            decimal.Decimal `json:"cgst"`
	SGST            decimal.Decimal `json:"sgst"`
	IGST            decimal.Decimal `json:"igst"`
	ShippingCharge  decimal.Decimal `json:"shipping_charge"`
	Adjustment      decimal.Decimal `json:"adjustment"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	AmountInWords   string          `json:"amount_in_words"`
	Lines           []LineResult    `json:"lines"`
}

// DocumentService creates and reads commercial documents. Totals are always
// recomputed server-side from the submitted lines.
type DocumentService interface {
	Preview(input PreviewInput) (*TotalsResult, error)
	Create(ctx context.Context, input DocumentInput, createdBy uuid.UUID) (*domain.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, filter port.DocumentFilter) ([]domain.Document, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentService struct {
	documentRepo port.DocumentRepository
	customerRepo port.CustomerRepository
	emailSender  port.EmailSender
	sellerState  string
}

// NewDocumentService creates a new DocumentService implementation. The
// seller's state code comes from configuration, falling back to the one
// embedded in the configured seller GSTIN.
func NewDocumentService(
	documentRepo port.DocumentRepository,
	customerRepo port.CustomerRepository,
	emailSender port.EmailSender,
	seller config.SellerConfig,
) DocumentService {
	state := seller.StateCode
	if state == "" {
		state = gst.StateCodeFromGSTIN(seller.GSTIN)
	}
	return &documentService{
		documentRepo: documentRepo,
		customerRepo: customerRepo,
		emailSender:  emailSender,
		sellerState:  state,
	}
}

func toGSTItems(lines []LineItemInput) []gst.LineItem {
	items := make([]gst.LineItem, len(lines))
	for i, l := range lines {
		discountType := l.DiscountType
		if discountType == "" {
			discountType = gst.DiscountFlat
		}
		items[i] = gst.LineItem{
			Quantity:       l.Quantity,
			Rate:           l.Rate,
			DiscountType:   discountType,
			DiscountValue:  l.DiscountValue,
			TaxRatePercent: l.TaxRatePercent,
		}
	}
	return items
}

func (s *documentService) Preview(input PreviewInput) (*TotalsResult, error) {
	regime, err := gst.ResolveTaxRegime(s.sellerState, input.PlaceOfSupply, input.TaxExempt)
	if err != nil {
		return nil, domain.ErrMissingPlaceOfSupply
	}

	items := toGSTItems(input.Lines)
	totals := gst.AggregateTotals(items, regime,
		gst.Shipping{Enabled: input.ShippingEnabled, Amount: input.ShippingCharge},
		input.Adjustment)
	if totals.GrandTotal.IsNegative() {
		return nil, domain.ErrNegativeGrandTotal
	}

	result := &TotalsResult{
		TaxRegime:       regime,
		SubtotalTaxable: totals.SubtotalTaxable.Round(2),
		TotalTax:        totals.TotalTax.Round(2),
		CGST:            totals.CGST.Round(2),
		SGST:            totals.SGST.Round(2),
		IGST:            totals.IGST.Round(2),
		ShippingCharge:  totals.ShippingCharge.Round(2),
		Adjustment:      totals.Adjustment.Round(2),
		GrandTotal:      totals.GrandTotal.Round(2),
		AmountInWords:   gst.AmountInWords(totals.GrandTotal.Round(2)),
	}
	for _, item := range items {
		r := gst.CalculateLineItem(item)
		result.Lines = append(result.Lines, LineResult{
			BaseAmount:     r.BaseAmount.Round(2),
			DiscountAmount: r.DiscountAmount.Round(2),
			TaxableAmount:  r.TaxableAmount.Round(2),
			TaxAmount:      r.TaxAmount.Round(2),
			LineTotal:      r.LineTotal.Round(2),
		})
	}
	return result, nil
}

func (s *documentService) Create(ctx context.Context, input DocumentInput, createdBy uuid.UUID) (*domain.Document, error) {
	if !domain.ValidDocumentTypes[input.Type] {
		return nil, domain.ErrInvalidDocumentType
	}
	if len(input.Lines) == 0 {
		return nil, domain.ErrNoLineItems
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	placeOfSupply := input.PlaceOfSupply
	if placeOfSupply == "" {
		placeOfSupply = customer.PlaceOfSupply
	}
	regime, err := gst.ResolveTaxRegime(s.sellerState, placeOfSupply, customer.TaxExempt)
	if err != nil {
		return nil, domain.ErrMissingPlaceOfSupply
	}

	items := toGSTItems(input.Lines)
	totals := gst.AggregateTotals(items, regime,
		gst.Shipping{Enabled: input.ShippingEnabled, Amount: input.ShippingCharge},
		input.Adjustment)
	if totals.GrandTotal.IsNegative() {
		return nil, domain.ErrNegativeGrandTotal
	}

	issueDate := input.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now().UTC()
	}
	status := domain.DocumentStatusIssued
	if input.Draft {
		status = domain.DocumentStatusDraft
	}

	grandTotal := totals.GrandTotal.Round(2)
	doc := &domain.Document{
		Type:            input.Type,
		Number:          input.Number,
		CustomerID:      customer.ID,
		PlaceOfSupply:   placeOfSupply,
		TaxRegime:       regime,
		ShippingEnabled: input.ShippingEnabled,
		ShippingCharge:  totals.ShippingCharge.Round(2),
		Adjustment:      totals.Adjustment.Round(2),
		SubtotalTaxable: totals.SubtotalTaxable.Round(2),
		TotalTax:        totals.TotalTax.Round(2),
		CGST:            totals.CGST.Round(2),
		SGST:            totals.SGST.Round(2),
		IGST:            totals.IGST.Round(2),
		GrandTotal:      grandTotal,
		AmountInWords:   gst.AmountInWords(grandTotal),
		Status:          status,
		Notes:           input.Notes,
		IssueDate:       issueDate,
		DueDate:         input.DueDate,
		CreatedBy:       createdBy,
	}
	for i, item := range items {
		r := gst.CalculateLineItem(item)
		doc.Lines = append(doc.Lines, domain.DocumentLine{
			Position:       i,
			Description:    input.Lines[i].Description,
			HSNSACCode:     input.Lines[i].HSNSACCode,
			Quantity:       item.Quantity,
			Rate:           item.Rate,
			DiscountType:   item.DiscountType,
			DiscountValue:  item.DiscountValue,
			TaxRatePercent: item.TaxRatePercent,
			TaxableAmount:  r.TaxableAmount.Round(2),
			TaxAmount:      r.TaxAmount.Round(2),
			LineTotal:      r.LineTotal.Round(2),
		})
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	// Notify the customer on issue. Delivery failure must not fail the create.
	if status == domain.DocumentStatusIssued && customer.Email != "" {
		if err := s.emailSender.SendDocumentIssued(ctx, customer.Email, customer.Name, doc); err != nil {
			log.Printf("document %s: issue notification failed: %v", doc.Number, err)
		}
	}

	return doc, nil
}

func (s *documentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	return s.documentRepo.GetByID(ctx, id)
}

func (s *documentService) List(ctx context.Context, filter port.DocumentFilter) ([]domain.Document, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.documentRepo.List(ctx, filter)
}

func (s *documentService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) error {
	if !domain.ValidDocumentStatuses[status] {
		return domain.ErrInvalidStatus
	}
	return s.documentRepo.UpdateStatus(ctx, id, status)
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc.Status != domain.DocumentStatusDraft {
		return fmt.Errorf("%w: document is %s", domain.ErrDocumentNotDraft, doc.Status)
	}
	return s.documentRepo.Delete(ctx, id)
}
