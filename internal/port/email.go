package port

import (
	"context"

	"gstbooks/internal/domain"
)

// EmailSender delivers transactional mail to customers.
type EmailSender interface {
	// SendDocumentIssued notifies a customer that a document was issued in
	// their name. Failures are reported but must not fail the issuing
	// operation.
	SendDocumentIssued(ctx context.Context, toEmail, toName string, doc *domain.Document) error
}
