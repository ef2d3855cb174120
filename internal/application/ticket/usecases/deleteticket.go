package usecases

import (
	"context"
	"strings"

	"warrantydesk/internal/domain/ticket"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID string
}

// DeleteTicketUseCase removes a ticket. Deleting an already absent ticket is
// treated as success so retried deletes stay harmless.
type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	ticketID := strings.TrimSpace(cmd.TicketID)
	if ticketID == "" {
		return errors.NewValidationError("ticket ID is required")
	}

	if err := uc.ticketRepo.Delete(ctx, ticketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", ticketID)
		return errors.NewStorageError("failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted", "ticket_id", ticketID)
	return nil
}
