package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gstbooks/internal/domain"
	"gstbooks/internal/gst"
	"gstbooks/internal/port"
)

// CustomerInput is the DTO for creating or updating a customer.
type CustomerInput struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	GSTIN          string `json:"gstin"`
	PAN            string `json:"pan"`
	PlaceOfSupply  string `json:"place_of_supply"`
	TaxExempt      bool   `json:"tax_exempt"`
	BillingAddress string `json:"billing_address"`
}

// CustomerResult pairs a customer with the non-blocking GSTIN/place-of-supply
// warning, when one applies.
type CustomerResult struct {
	Customer *domain.Customer   `json:"customer"`
	Warning  *gst.StateMismatch `json:"warning,omitempty"`
}

// CustomerService manages billable parties.
type CustomerService interface {
	Create(ctx context.Context, input CustomerInput) (*CustomerResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerResult, error)
	List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, id uuid.UUID, input CustomerInput) (*CustomerResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	customerRepo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(customerRepo port.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

// validateIdentifiers checks GSTIN/PAN shape and the place-of-supply code.
// Identifier fields are optional; the shape rules only apply when present.
func validateIdentifiers(input *CustomerInput) error {
	if res := gst.ValidateGSTIN(input.GSTIN); !res.Valid {
		return fmt.Errorf("%w: %s", domain.ErrInvalidGSTIN, res.Message)
	}
	if res := gst.ValidatePAN(input.PAN); !res.Valid {
		return fmt.Errorf("%w: %s", domain.ErrInvalidPAN, res.Message)
	}
	if input.PlaceOfSupply != "" && !gst.IsKnownStateCode(input.PlaceOfSupply) {
		return domain.ErrUnknownStateCode
	}
	return nil
}

func (s *customerService) Create(ctx context.Context, input CustomerInput) (*CustomerResult, error) {
	if err := validateIdentifiers(&input); err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Name:           input.Name,
		Email:          input.Email,
		GSTIN:          input.GSTIN,
		PAN:            input.PAN,
		PlaceOfSupply:  input.PlaceOfSupply,
		TaxExempt:      input.TaxExempt,
		BillingAddress: input.BillingAddress,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("customerService.Create: %w", err)
	}

	return &CustomerResult{
		Customer: customer,
		Warning:  gst.CheckGSTINState(customer.GSTIN, customer.PlaceOfSupply),
	}, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResult, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CustomerResult{
		Customer: customer,
		Warning:  gst.CheckGSTINState(customer.GSTIN, customer.PlaceOfSupply),
	}, nil
}

func (s *customerService) List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error) {
	return s.customerRepo.List(ctx, offset, limit)
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, input CustomerInput) (*CustomerResult, error) {
	if err := validateIdentifiers(&input); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Name = input.Name
	customer.Email = input.Email
	customer.GSTIN = input.GSTIN
	customer.PAN = input.PAN
	customer.PlaceOfSupply = input.PlaceOfSupply
	customer.TaxExempt = input.TaxExempt
	customer.BillingAddress = input.BillingAddress

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("customerService.Update: %w", err)
	}
	return &CustomerResult{
		Customer: customer,
		Warning:  gst.CheckGSTINState(customer.GSTIN, customer.PlaceOfSupply),
	}, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.customerRepo.Delete(ctx, id)
}
