package noop

import (
	"context"
	"log"

	"gstbooks/internal/domain"
	"gstbooks/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendDocumentIssued(_ context.Context, toEmail, toName string, doc *domain.Document) error {
	log.Printf("[NOOP EMAIL] %s %s issued to %s (%s), total %s", doc.Type, doc.Number, toName, toEmail, doc.GrandTotal.StringFixed(2))
	return nil
}
