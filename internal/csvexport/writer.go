package csvexport

import (
	"encoding/csv"
	"io"
	"time"

	"gstbooks/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row of the document register.
var columns = []string{
	"Number",
	"Type",
	"Status",
	"Issue Date",
	"Due Date",
	"Place of Supply",
	"Tax Regime",
	"Taxable Amount",
	"CGST",
	"SGST",
	"IGST",
	"Total Tax",
	"Shipping",
	"Adjustment",
	"Grand Total",
	"Amount in Words",
	"Created At",
}

// Writer wraps csv.Writer for exporting the document register as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteDocuments converts a batch of documents to CSV rows and writes them.
func (w *Writer) WriteDocuments(docs []domain.Document) error {
	for i := range docs {
		row := documentToRow(&docs[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func documentToRow(doc *domain.Document) []string {
	row := make([]string, len(columns))

	row[0] = doc.Number
	row[1] = string(doc.Type)
	row[2] = string(doc.Status)
	row[3] = doc.IssueDate.Format("2006-01-02")
	row[4] = formatDate(doc.DueDate)
	row[5] = doc.PlaceOfSupply
	row[6] = string(doc.TaxRegime)
	row[7] = doc.SubtotalTaxable.StringFixed(2)
	row[8] = doc.CGST.StringFixed(2)
	row[9] = doc.SGST.StringFixed(2)
	row[10] = doc.IGST.StringFixed(2)
	row[11] = doc.TotalTax.StringFixed(2)
	row[12] = shippingColumn(doc)
	row[13] = doc.Adjustment.StringFixed(2)
	row[14] = doc.GrandTotal.StringFixed(2)
	row[15] = doc.AmountInWords
	row[16] = doc.CreatedAt.Format(time.RFC3339)

	return row
}

func shippingColumn(doc *domain.Document) string {
	if !doc.ShippingEnabled {
		return ""
	}
	return doc.ShippingCharge.StringFixed(2)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// BuildFilename returns a filename for the Content-Disposition header.
// Format: register_{type|all}_{YYYY-MM-DD}.csv
func BuildFilename(docType domain.DocumentType) string {
	scope := "all"
	if docType != "" {
		scope = string(docType)
	}
	return "register_" + scope + "_" + time.Now().Format("2006-01-02") + ".csv"
}
