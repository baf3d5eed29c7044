package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUserInactive            = errors.New("user is inactive")
	ErrDuplicateEmail          = errors.New("email already exists")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrDocumentNotFound        = errors.New("document not found")
	ErrDuplicateDocumentNumber = errors.New("document number already exists")
	ErrInvalidGSTIN            = errors.New("invalid GSTIN")
	ErrInvalidPAN              = errors.New("invalid PAN")
	ErrUnknownStateCode        = errors.New("unknown place of supply state code")
	ErrMissingPlaceOfSupply    = errors.New("place of supply is required")
	ErrInvalidDocumentType     = errors.New("invalid document type")
	ErrNoLineItems             = errors.New("document requires at least one line item")
	ErrDocumentNotDraft        = errors.New("only draft documents can be modified or deleted")
	ErrNegativeGrandTotal      = errors.New("grand total must not be negative")
	ErrInvalidStatus           = errors.New("invalid document status")
)
