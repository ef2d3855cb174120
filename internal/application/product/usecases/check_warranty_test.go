package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warrantydesk/internal/domain/product"
	"warrantydesk/internal/domain/ticket"
	vo "warrantydesk/internal/domain/ticket/valueobjects"
	"warrantydesk/internal/shared/errors"
)

func registeredProduct(t *testing.T, purchase time.Time, months int) *product.Product {
	t.Helper()
	p, err := product.NewProduct("P-abc123", "Printer", "SN-100", "LJ-1100", "B-42", &purchase, &months, purchase)
	require.NoError(t, err)
	return p
}

func TestCheckWarrantyUseCase_Execute_Found(t *testing.T) {
	purchase := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := registeredProduct(t, purchase, 120)

	productRepo := &mockProductRepository{
		FindByIdentityFunc: func(ctx context.Context, itemName, serial string) (*product.Product, error) {
			assert.Equal(t, "Printer", itemName)
			assert.Equal(t, "SN-100", serial)
			return p, nil
		},
	}

	uc := NewCheckWarrantyUseCase(productRepo, &mockTicketRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckWarrantyQuery{ItemName: " Printer ", Serial: " SN-100 "})

	require.NoError(t, err)
	assert.True(t, result.Found)
	require.NotNil(t, result.Product)
	require.NotNil(t, result.Coverage)
	assert.True(t, result.Coverage.OnWarranty)
	require.NotNil(t, result.Coverage.EndDate)
	assert.Equal(t, "2034-01-01", *result.Coverage.EndDate)
	assert.Nil(t, result.LatestTicket)
}

func TestCheckWarrantyUseCase_Execute_NotFound(t *testing.T) {
	uc := NewCheckWarrantyUseCase(&mockProductRepository{}, &mockTicketRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckWarrantyQuery{ItemName: "Unknown", Serial: "X"})

	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Nil(t, result.Product)
	assert.Nil(t, result.Coverage)
}

func TestCheckWarrantyUseCase_Execute_IncludesLatestTicket(t *testing.T) {
	purchase := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := registeredProduct(t, purchase, 12)

	received := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	months := 12
	tk, err := ticket.NewTicket("T-latest1", p.ProductID(), "Alice", "555-0101", ticket.ProductSnapshot{
		ItemName:       "Printer",
		Serial:         "SN-100",
		PurchaseDate:   &purchase,
		WarrantyMonths: &months,
	}, vo.PriorityNormal, "paper jam", received)
	require.NoError(t, err)

	productRepo := &mockProductRepository{
		FindByIdentityFunc: func(ctx context.Context, itemName, serial string) (*product.Product, error) {
			return p, nil
		},
	}
	ticketRepo := &mockTicketRepository{
		FindByProductFunc: func(ctx context.Context, productID string) ([]*ticket.Ticket, error) {
			assert.Equal(t, p.ProductID(), productID)
			return []*ticket.Ticket{tk}, nil
		},
	}

	uc := NewCheckWarrantyUseCase(productRepo, ticketRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckWarrantyQuery{ItemName: "Printer", Serial: "SN-100"})

	require.NoError(t, err)
	require.NotNil(t, result.LatestTicket)
	assert.Equal(t, "T-latest1", result.LatestTicket.TicketID)
	assert.Equal(t, "Received", result.LatestTicket.Status)
	assert.Equal(t, "2024-03-10", result.LatestTicket.ReceivedDate)
}

func TestCheckWarrantyUseCase_Execute_TicketLookupFailureIsNonFatal(t *testing.T) {
	purchase := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := registeredProduct(t, purchase, 12)

	productRepo := &mockProductRepository{
		FindByIdentityFunc: func(ctx context.Context, itemName, serial string) (*product.Product, error) {
			return p, nil
		},
	}
	ticketRepo := &mockTicketRepository{
		FindByProductFunc: func(ctx context.Context, productID string) ([]*ticket.Ticket, error) {
			return nil, fmt.Errorf("connection reset")
		},
	}

	uc := NewCheckWarrantyUseCase(productRepo, ticketRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckWarrantyQuery{ItemName: "Printer", Serial: "SN-100"})

	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Nil(t, result.LatestTicket)
}

func TestCheckWarrantyUseCase_Execute_RequiresItemName(t *testing.T) {
	uc := NewCheckWarrantyUseCase(&mockProductRepository{}, &mockTicketRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckWarrantyQuery{Serial: "SN-100"})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCheckWarrantyUseCase_Execute_ProductLookupFailure(t *testing.T) {
	productRepo := &mockProductRepository{
		FindByIdentityFunc: func(ctx context.Context, itemName, serial string) (*product.Product, error) {
			return nil, fmt.Errorf("database is locked")
		},
	}
	uc := NewCheckWarrantyUseCase(productRepo, &mockTicketRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckWarrantyQuery{ItemName: "Printer"})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsStorageError(err))
}
