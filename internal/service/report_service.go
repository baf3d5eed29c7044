package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"gstbooks/internal/csvexport"
	"gstbooks/internal/domain"
	"gstbooks/internal/port"
)

var registerHeader = []string{
	"Number", "Type", "Status", "Issue Date", "Place of Supply", "Tax Regime",
	"Taxable Subtotal", "CGST", "SGST", "IGST", "Total Tax",
	"Shipping", "Adjustment", "Grand Total", "Amount in Words",
}

// ReportService exports the document register.
type ReportService interface {
	// ExportRegister builds an XLSX workbook of all documents, optionally
	// filtered to one type, and returns the serialized file.
	ExportRegister(ctx context.Context, docType domain.DocumentType) ([]byte, error)
	// ExportRegisterCSV renders the same register as BOM-prefixed CSV.
	ExportRegisterCSV(ctx context.Context, docType domain.DocumentType) ([]byte, error)
}

type reportService struct {
	documentRepo port.DocumentRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(documentRepo port.DocumentRepository) ReportService {
	return &reportService{documentRepo: documentRepo}
}

func (s *reportService) ExportRegister(ctx context.Context, docType domain.DocumentType) ([]byte, error) {
	if docType != "" && !domain.ValidDocumentTypes[docType] {
		return nil, domain.ErrInvalidDocumentType
	}

	docs, err := s.documentRepo.ListAll(ctx, docType)
	if err != nil {
		return nil, fmt.Errorf("reportService.ExportRegister: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Register"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range registerHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("reportService.ExportRegister header: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("reportService.ExportRegister header: %w", err)
		}
	}

	for i := range docs {
		doc := &docs[i]
		row := []interface{}{
			doc.Number,
			string(doc.Type),
			string(doc.Status),
			doc.IssueDate.Format("2006-01-02"),
			doc.PlaceOfSupply,
			string(doc.TaxRegime),
			doc.SubtotalTaxable.InexactFloat64(),
			doc.CGST.InexactFloat64(),
			doc.SGST.InexactFloat64(),
			doc.IGST.InexactFloat64(),
			doc.TotalTax.InexactFloat64(),
			doc.ShippingCharge.InexactFloat64(),
			doc.Adjustment.InexactFloat64(),
			doc.GrandTotal.InexactFloat64(),
			doc.AmountInWords,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("reportService.ExportRegister row %d: %w", i, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("reportService.ExportRegister row %d: %w", i, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("reportService.ExportRegister write: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *reportService) ExportRegisterCSV(ctx context.Context, docType domain.DocumentType) ([]byte, error) {
	if docType != "" && !domain.ValidDocumentTypes[docType] {
		return nil, domain.ErrInvalidDocumentType
	}

	docs, err := s.documentRepo.ListAll(ctx, docType)
	if err != nil {
		return nil, fmt.Errorf("reportService.ExportRegisterCSV: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)

	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, fmt.Errorf("reportService.ExportRegisterCSV header: %w", err)
	}
	if err := w.WriteDocuments(docs); err != nil {
		return nil, fmt.Errorf("reportService.ExportRegisterCSV rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("reportService.ExportRegisterCSV flush: %w", err)
	}
	return buf.Bytes(), nil
}
