package usecases

import (
	"context"
	"strings"

	"warrantydesk/internal/application/ticket/dto"
	"warrantydesk/internal/domain/ticket"
	"warrantydesk/internal/shared/biztime"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type AddNoteCommand struct {
	TicketID string
	Text     string
}

type AddNoteUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewAddNoteUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *AddNoteUseCase {
	return &AddNoteUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*dto.TicketDTO, error) {
	ticketID := strings.TrimSpace(cmd.TicketID)
	if ticketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var tk *ticket.Ticket
	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		tk, err = uc.ticketRepo.FindByID(txCtx, ticketID)
		if err != nil {
			uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", ticketID)
			return errors.NewStorageError("failed to load ticket")
		}
		if tk == nil {
			return errors.NewNotFoundError("ticket not found")
		}

		if err := tk.AddNote(cmd.Text, biztime.NowUTC()); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, tk); err != nil {
			uc.logger.Errorw("failed to save ticket note", "error", err, "ticket_id", ticketID)
			return errors.NewStorageError("failed to update ticket")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("note added to ticket", "ticket_id", tk.ID())
	return dto.ToTicketDTO(tk), nil
}
