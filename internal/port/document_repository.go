package port

import (
	"context"

	"github.com/google/uuid"

	"gstbooks/internal/domain"
)

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	Type       domain.DocumentType
	Status     domain.DocumentStatus
	CustomerID uuid.UUID
	Offset     int
	Limit      int
}

// DocumentRepository defines the contract for document persistence. Create
// stores the document and its lines in one transaction.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, filter DocumentFilter) ([]domain.Document, int, error)
	ListAll(ctx context.Context, docType domain.DocumentType) ([]domain.Document, error)
	UpdateStatus(ctx context.Context, docID uuid.UUID, status domain.DocumentStatus) error
	Delete(ctx context.Context, docID uuid.UUID) error
}
