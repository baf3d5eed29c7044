package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"gstbooks/internal/domain"
	"gstbooks/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendDocumentIssued(ctx context.Context, toEmail, toName string, doc *domain.Document) error {
	subject := fmt.Sprintf("%s %s from %s", documentLabel(doc.Type), doc.Number, s.fromName)
	htmlBody := buildDocumentIssuedHTML(toName, doc)
	textBody := fmt.Sprintf(
		"Hi %s,\n\n%s %s has been issued to you.\n\nTaxable amount: %s\nTax: %s\nGrand total: %s\n(%s)\n\n%s",
		toName, documentLabel(doc.Type), doc.Number,
		doc.SubtotalTaxable.StringFixed(2), doc.TotalTax.StringFixed(2),
		doc.GrandTotal.StringFixed(2), doc.AmountInWords, s.fromName)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func documentLabel(t domain.DocumentType) string {
	switch t {
	case domain.DocumentTypeInvoice:
		return "Tax Invoice"
	case domain.DocumentTypeEstimate:
		return "Estimate"
	case domain.DocumentTypeSalesOrder:
		return "Sales Order"
	case domain.DocumentTypePayment:
		return "Payment Receipt"
	case domain.DocumentTypeVendorCredit:
		return "Vendor Credit"
	default:
		return "Document"
	}
}

func buildDocumentIssuedHTML(name string, doc *domain.Document) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s %s</h2>
  <p>Hi %s,</p>
  <p>The following document has been issued to you:</p>
  <table style="border-collapse: collapse; width: 100%%;">
    <tr><td style="padding: 6px 12px; color: #666;">Taxable amount</td><td style="padding: 6px 12px; text-align: right;">%s</td></tr>
    <tr><td style="padding: 6px 12px; color: #666;">Tax</td><td style="padding: 6px 12px; text-align: right;">%s</td></tr>
    <tr><td style="padding: 6px 12px; color: #666; font-weight: bold;">Grand total</td><td style="padding: 6px 12px; text-align: right; font-weight: bold;">%s</td></tr>
  </table>
  <p style="color: #666; font-style: italic;">%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">This is an automated notification.</p>
</body>
</html>`, documentLabel(doc.Type), doc.Number, name,
		doc.SubtotalTaxable.StringFixed(2), doc.TotalTax.StringFixed(2),
		doc.GrandTotal.StringFixed(2), doc.AmountInWords)
}
