package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbooks/internal/domain"
	"gstbooks/internal/gst"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 17)
	assert.Equal(t, "Number", row[0])
	assert.Equal(t, "Grand Total", row[14])
	assert.Equal(t, "Created At", row[16])
}

func TestWriteDocuments(t *testing.T) {
	due := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	doc := domain.Document{
		Number:          "INV-001",
		Type:            domain.DocumentTypeInvoice,
		Status:          domain.DocumentStatusIssued,
		IssueDate:       time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:         &due,
		PlaceOfSupply:   "29",
		TaxRegime:       gst.TaxRegimeIntraState,
		SubtotalTaxable: decimal.RequireFromString("1900"),
		CGST:            decimal.RequireFromString("171"),
		SGST:            decimal.RequireFromString("171"),
		TotalTax:        decimal.RequireFromString("342"),
		ShippingEnabled: true,
		ShippingCharge:  decimal.RequireFromString("50"),
		Adjustment:      decimal.RequireFromString("-0.25"),
		GrandTotal:      decimal.RequireFromString("2291.75"),
		AmountInWords:   "Indian Rupee Two Thousand Two Hundred Ninety One and Seventy Five Paise Only",
		CreatedAt:       time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteDocuments([]domain.Document{doc}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, "INV-001", row[0])
	assert.Equal(t, "invoice", row[1])
	assert.Equal(t, "issued", row[2])
	assert.Equal(t, "2026-01-15", row[3])
	assert.Equal(t, "2026-02-15", row[4])
	assert.Equal(t, "intra_state", row[6])
	assert.Equal(t, "1900.00", row[7])
	assert.Equal(t, "171.00", row[8])
	assert.Equal(t, "171.00", row[9])
	assert.Equal(t, "0.00", row[10])
	assert.Equal(t, "342.00", row[11])
	assert.Equal(t, "50.00", row[12])
	assert.Equal(t, "-0.25", row[13])
	assert.Equal(t, "2291.75", row[14])
}

func TestWriteDocuments_ShippingDisabledLeavesColumnEmpty(t *testing.T) {
	doc := domain.Document{
		Number:    "EST-002",
		Type:      domain.DocumentTypeEstimate,
		Status:    domain.DocumentStatusDraft,
		IssueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		TaxRegime: gst.TaxRegimeExempt,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteDocuments([]domain.Document{doc}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, "", row[4])
	assert.Equal(t, "", row[12])
}

func TestBuildFilename(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, "register_all_"+today+".csv", BuildFilename(""))
	assert.Equal(t, "register_invoice_"+today+".csv", BuildFilename(domain.DocumentTypeInvoice))
}
