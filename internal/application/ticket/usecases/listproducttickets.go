package usecases

import (
	"context"
	"strings"

	"warrantydesk/internal/application/ticket/dto"
	"warrantydesk/internal/domain/product"
	"warrantydesk/internal/domain/ticket"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type ListProductTicketsQuery struct {
	ProductID string
}

type ListProductTicketsResult struct {
	Items []dto.TicketListItemDTO `json:"items"`
	Total int64                   `json:"total"`
}

// ListProductTicketsUseCase lists the tickets raised against one product,
// newest first.
type ListProductTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	productRepo product.ProductRepository
	logger      logger.Interface
}

func NewListProductTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	productRepo product.ProductRepository,
	logger logger.Interface,
) *ListProductTicketsUseCase {
	return &ListProductTicketsUseCase{
		ticketRepo:  ticketRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductTicketsUseCase) Execute(ctx context.Context, query ListProductTicketsQuery) (*ListProductTicketsResult, error) {
	productID := strings.TrimSpace(query.ProductID)
	if productID == "" {
		return nil, errors.NewValidationError("product ID is required")
	}

	p, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		uc.logger.Errorw("failed to find product", "error", err, "product_id", productID)
		return nil, errors.NewStorageError("failed to load product")
	}
	if p == nil {
		return nil, errors.NewNotFoundError("product not found")
	}

	tickets, err := uc.ticketRepo.FindByProduct(ctx, p.ProductID())
	if err != nil {
		uc.logger.Errorw("failed to list tickets for product", "error", err, "product_id", productID)
		return nil, errors.NewStorageError("failed to load tickets")
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, tk := range tickets {
		items = append(items, dto.ToTicketListItemDTO(tk))
	}

	return &ListProductTicketsResult{
		Items: items,
		Total: int64(len(items)),
	}, nil
}
