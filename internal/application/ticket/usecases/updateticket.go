package usecases

import (
	"context"
	"strings"

	"warrantydesk/internal/application/ticket/dto"
	"warrantydesk/internal/domain/product"
	"warrantydesk/internal/domain/ticket"
	vo "warrantydesk/internal/domain/ticket/valueobjects"
	"warrantydesk/internal/shared/biztime"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID  string
	ProductID string
	CustName  string
	CustPhone string
	Priority  string
	Problem   string
}

// UpdateTicketUseCase edits a ticket's descriptive fields. Status, timeline
// and notes are out of scope here; those change only through the status and
// note operations. Pointing the ticket at a different product refreshes the
// embedded snapshot from that product.
type UpdateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	productRepo product.ProductRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	productRepo product.ProductRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		productRepo: productRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update ticket command", "error", err)
		return nil, err
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	ticketID := strings.TrimSpace(cmd.TicketID)

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

		productID := strings.TrimSpace(cmd.ProductID)
		snapshot := tk.Snapshot()
		if productID != tk.ProductID() {
			entity, err := uc.productRepo.FindByID(txCtx, productID)
			if err != nil {
				uc.logger.Errorw("failed to find product", "error", err, "product_id", productID)
				return errors.NewStorageError("failed to load product")
			}
			if entity == nil {
				return errors.NewNotFoundError("product not found")
			}
			productID = entity.ProductID()
			snapshot = snapshotFromProduct(entity)
		}

		if err := tk.UpdateDetails(productID, cmd.CustName, cmd.CustPhone, snapshot, priority, cmd.Problem, biztime.NowUTC()); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, tk); err != nil {
			uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", ticketID)
			return errors.NewStorageError("failed to update ticket")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", tk.ID())
	return dto.ToTicketDTO(tk), nil
}

func (uc *UpdateTicketUseCase) validateCommand(cmd UpdateTicketCommand) error {
	if strings.TrimSpace(cmd.TicketID) == "" {
		return errors.NewValidationError("ticket ID is required")
	}
	if strings.TrimSpace(cmd.ProductID) == "" {
		return errors.NewValidationError("product ID is required")
	}
	if strings.TrimSpace(cmd.CustName) == "" {
		return errors.NewValidationError("customer name is required")
	}
	return nil
}
