package usecases

import (
	"context"
	"strings"

	"warrantydesk/internal/application/ticket/dto"
	"warrantydesk/internal/domain/ticket"
	vo "warrantydesk/internal/domain/ticket/valueobjects"
	"warrantydesk/internal/shared/biztime"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID string
	Status   string
	Note     string
}

// ChangeStatusUseCase moves a ticket through its repair lifecycle. Every
// accepted change appends a timeline entry; rejected transitions leave the
// ticket untouched.
type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change ticket status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	ticketID := strings.TrimSpace(cmd.TicketID)
	if ticketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
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

		if err := tk.ChangeStatus(status, cmd.Note, biztime.NowUTC()); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, tk); err != nil {
			uc.logger.Errorw("failed to update ticket status", "error", err, "ticket_id", ticketID)
			return errors.NewStorageError("failed to update ticket")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", tk.ID(),
		"status", tk.Status().String(),
	)

	return dto.ToTicketDTO(tk), nil
}
