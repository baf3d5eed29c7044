package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbooks/internal/domain"
	"gstbooks/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	doc.ID = uuid.New()
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("documentRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO documents (
		id, type, number, customer_id, place_of_supply, tax_regime,
		shipping_enabled, shipping_charge, adjustment,
		subtotal_taxable, total_tax, cgst, sgst, igst, grand_total, amount_in_words,
		status, notes, issue_date, due_date, created_by, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9,
		$10, $11, $12, $13, $14, $15, $16,
		$17, $18, $19, $20, $21, $22, $23
	)`

	_, err = tx.ExecContext(ctx, query,
		doc.ID, doc.Type, doc.Number, doc.CustomerID, doc.PlaceOfSupply, doc.TaxRegime,
		doc.ShippingEnabled, doc.ShippingCharge, doc.Adjustment,
		doc.SubtotalTaxable, doc.TotalTax, doc.CGST, doc.SGST, doc.IGST, doc.GrandTotal, doc.AmountInWords,
		doc.Status, doc.Notes, doc.IssueDate, doc.DueDate, doc.CreatedBy, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "number") {
			return domain.ErrDuplicateDocumentNumber
		}
		return fmt.Errorf("documentRepo.Create: %w", err)
	}

	lineQuery := `INSERT INTO document_lines (
		id, document_id, position, description, hsn_sac_code,
		quantity, rate, discount_type, discount_value, tax_rate_percent,
		taxable_amount, tax_amount, line_total
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	for i := range doc.Lines {
		line := &doc.Lines[i]
		line.ID = uuid.New()
		line.DocumentID = doc.ID
		line.Position = i
		_, err = tx.ExecContext(ctx, lineQuery,
			line.ID, line.DocumentID, line.Position, line.Description, line.HSNSACCode,
			line.Quantity, line.Rate, line.DiscountType, line.DiscountValue, line.TaxRatePercent,
			line.TaxableAmount, line.TaxAmount, line.LineTotal)
		if err != nil {
			return fmt.Errorf("documentRepo.Create line %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("documentRepo.Create commit: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc, "SELECT * FROM documents WHERE id = $1", docID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &doc.Lines,
		"SELECT * FROM document_lines WHERE document_id = $1 ORDER BY position ASC", docID)
	if err != nil {
		return nil, fmt.Errorf("documentRepo.GetByID lines: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) List(ctx context.Context, filter port.DocumentFilter) ([]domain.Document, int, error) {
	where := []string{}
	args := []interface{}{}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where = append(where, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CustomerID != uuid.Nil {
		args = append(args, filter.CustomerID)
		where = append(where, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM documents"+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List count: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf("SELECT * FROM documents%s ORDER BY issue_date DESC, created_at DESC LIMIT $%d OFFSET $%d",
		clause, len(args)-1, len(args))

	docs := []domain.Document{}
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List: %w", err)
	}
	return docs, total, nil
}

func (r *documentRepo) ListAll(ctx context.Context, docType domain.DocumentType) ([]domain.Document, error) {
	docs := []domain.Document{}
	var err error
	if docType != "" {
		err = r.db.SelectContext(ctx, &docs,
			"SELECT * FROM documents WHERE type = $1 ORDER BY issue_date ASC, number ASC", docType)
	} else {
		err = r.db.SelectContext(ctx, &docs,
			"SELECT * FROM documents ORDER BY issue_date ASC, number ASC")
	}
	if err != nil {
		return nil, fmt.Errorf("documentRepo.ListAll: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) UpdateStatus(ctx context.Context, docID uuid.UUID, status domain.DocumentStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE documents SET status = $2, updated_at = $3 WHERE id = $1",
		docID, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateStatus: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateStatus: %w", err)
	}
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, docID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = $1", docID)
	if err != nil {
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
