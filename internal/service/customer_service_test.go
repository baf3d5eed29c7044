package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbooks/internal/domain"
	"gstbooks/internal/service"
	"gstbooks/mocks"
)

func TestCustomerService_Create_Success(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	result, err := svc.Create(context.Background(), service.CustomerInput{
		Name:          "Acme Traders",
		GSTIN:         "27AAGCA4900Q1ZE",
		PAN:           "AAGCA4900Q",
		PlaceOfSupply: "27",
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", result.Customer.Name)
	assert.Nil(t, result.Warning)
	repo.AssertExpectations(t)
}

func TestCustomerService_Create_StateMismatchWarning(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	// GSTIN says Maharashtra (27), place of supply says Karnataka (29).
	result, err := svc.Create(context.Background(), service.CustomerInput{
		Name:          "Acme Traders",
		GSTIN:         "27AAGCA4900Q1ZE",
		PlaceOfSupply: "29",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Warning)
	assert.Equal(t, "27", result.Warning.GSTINStateCode)
	assert.Equal(t, "29", result.Warning.SelectedStateCode)
}

func TestCustomerService_Create_InvalidGSTIN(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	_, err := svc.Create(context.Background(), service.CustomerInput{
		Name:  "Acme Traders",
		GSTIN: "27AAGCA4900Q1Z", // 14 chars
	})

	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	repo.AssertNotCalled(t, "Create")
}

func TestCustomerService_Create_InvalidPAN(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	_, err := svc.Create(context.Background(), service.CustomerInput{
		Name: "Acme Traders",
		PAN:  "abcde1234f", // lowercase
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPAN)
}

func TestCustomerService_Create_UnknownStateCode(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	_, err := svc.Create(context.Background(), service.CustomerInput{
		Name:          "Acme Traders",
		PlaceOfSupply: "00",
	})

	assert.ErrorIs(t, err, domain.ErrUnknownStateCode)
}

func TestCustomerService_Create_EmptyIdentifiersAllowed(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	result, err := svc.Create(context.Background(), service.CustomerInput{Name: "Walk-in"})

	require.NoError(t, err)
	assert.Nil(t, result.Warning)
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrCustomerNotFound)

	_, err := svc.Update(context.Background(), id, service.CustomerInput{Name: "Renamed"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
