package usecases

import (
	"context"
	"strings"

	"warrantydesk/internal/application/ticket/dto"
	"warrantydesk/internal/domain/ticket"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID string
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	ticketID := strings.TrimSpace(query.TicketID)
	if ticketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	tk, err := uc.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", ticketID)
		return nil, errors.NewStorageError("failed to load ticket")
	}
	if tk == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return dto.ToTicketDTO(tk), nil
}
