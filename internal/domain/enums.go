package domain

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// DocumentType distinguishes the commercial document kinds that share the
// same line-item and totals model.
type DocumentType string

const (
	DocumentTypeInvoice      DocumentType = "invoice"
	DocumentTypeEstimate     DocumentType = "estimate"
	DocumentTypeSalesOrder   DocumentType = "sales_order"
	DocumentTypePayment      DocumentType = "payment"
	DocumentTypeVendorCredit DocumentType = "vendor_credit"
)

// ValidDocumentTypes is the set of accepted document types.
var ValidDocumentTypes = map[DocumentType]bool{
	DocumentTypeInvoice:      true,
	DocumentTypeEstimate:     true,
	DocumentTypeSalesOrder:   true,
	DocumentTypePayment:      true,
	DocumentTypeVendorCredit: true,
}

// DocumentStatus represents the document lifecycle.
type DocumentStatus string

const (
	DocumentStatusDraft  DocumentStatus = "draft"
	DocumentStatusIssued DocumentStatus = "issued"
	DocumentStatusPaid   DocumentStatus = "paid"
	DocumentStatusVoid   DocumentStatus = "void"
)

// ValidDocumentStatuses is the set of accepted document statuses.
var ValidDocumentStatuses = map[DocumentStatus]bool{
	DocumentStatusDraft:  true,
	DocumentStatusIssued: true,
	DocumentStatusPaid:   true,
	DocumentStatusVoid:   true,
}
