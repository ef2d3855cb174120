package usecases

import (
	"context"
	"strings"

	"warrantydesk/internal/application/product/dto"
	"warrantydesk/internal/domain/product"
	"warrantydesk/internal/domain/ticket"
	"warrantydesk/internal/shared/biztime"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type CheckWarrantyQuery struct {
	ItemName string
	Serial   string
}

// LatestTicketInfo is the public-facing summary of the most recent repair
// ticket for a product. It deliberately omits customer contact details.
type LatestTicketInfo struct {
	TicketID     string `json:"ticket_id"`
	Status       string `json:"status"`
	ReceivedDate string `json:"received_date"`
}

type CheckWarrantyResult struct {
	Found        bool              `json:"found"`
	Product      *dto.ProductDTO   `json:"product,omitempty"`
	Coverage     *dto.CoverageDTO  `json:"coverage,omitempty"`
	LatestTicket *LatestTicketInfo `json:"latest_ticket,omitempty"`
}

// CheckWarrantyUseCase answers the public warranty lookup. It is the only
// product read path reachable without an admin session.
type CheckWarrantyUseCase struct {
	productRepo product.ProductRepository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
}

func NewCheckWarrantyUseCase(
	productRepo product.ProductRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CheckWarrantyUseCase {
	return &CheckWarrantyUseCase{
		productRepo: productRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (uc *CheckWarrantyUseCase) Execute(ctx context.Context, query CheckWarrantyQuery) (*CheckWarrantyResult, error) {
	itemName := strings.TrimSpace(query.ItemName)
	if itemName == "" {
		return nil, errors.NewValidationError("item name is required")
	}

	entity, err := uc.productRepo.FindByIdentity(ctx, itemName, strings.TrimSpace(query.Serial))
	if err != nil {
		uc.logger.Errorw("failed to look up product by identity", "error", err, "item_name", itemName)
		return nil, errors.NewStorageError("failed to look up product")
	}
	if entity == nil {
		return &CheckWarrantyResult{Found: false}, nil
	}

	coverage := dto.ToCoverageDTO(entity.Coverage(biztime.NowUTC()))
	result := &CheckWarrantyResult{
		Found:    true,
		Product:  dto.ToProductDTO(entity),
		Coverage: &coverage,
	}

	tickets, err := uc.ticketRepo.FindByProduct(ctx, entity.ProductID())
	if err != nil {
		// The warranty answer is still useful without ticket history.
		uc.logger.Warnw("failed to load tickets for product", "error", err, "product_id", entity.ProductID())
		return result, nil
	}
	if len(tickets) > 0 {
		latest := tickets[0]
		result.LatestTicket = &LatestTicketInfo{
			TicketID:     latest.ID(),
			Status:       latest.Status().String(),
			ReceivedDate: biztime.FormatDate(latest.ReceivedDate()),
		}
	}

	return result, nil
}
