package usecases

import (
	"context"
	"fmt"
	"strings"

	"warrantydesk/internal/application/ticket/dto"
	"warrantydesk/internal/domain/product"
	"warrantydesk/internal/domain/ticket"
	vo "warrantydesk/internal/domain/ticket/valueobjects"
	"warrantydesk/internal/shared/biztime"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/id"
	"warrantydesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	ProductID string
	CustName  string
	CustPhone string
	Priority  string
	Problem   string
}

// CreateTicketUseCase opens a repair ticket against a registered product.
// The product's descriptive fields are copied into the ticket at creation
// time, so the ticket stays intact if the product is later edited or removed.
type CreateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	productRepo product.ProductRepository
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	productRepo product.ProductRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "product_id", cmd.ProductID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	productID := strings.TrimSpace(cmd.ProductID)
	entity, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		uc.logger.Errorw("failed to find product", "error", err, "product_id", productID)
		return nil, errors.NewStorageError("failed to load product")
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("product not found")
	}

	ticketID, err := id.NewTicketID()
	if err != nil {
		uc.logger.Errorw("failed to generate ticket ID", "error", err)
		return nil, fmt.Errorf("failed to generate ticket ID: %w", err)
	}

	now := biztime.NowUTC()
	tk, err := ticket.NewTicket(
		ticketID,
		entity.ProductID(),
		cmd.CustName,
		cmd.CustPhone,
		snapshotFromProduct(entity),
		priority,
		cmd.Problem,
		now,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, tk); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "ticket_id", ticketID)
		return nil, errors.NewStorageError("failed to save ticket")
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", tk.ID(),
		"product_id", tk.ProductID(),
		"priority", tk.Priority().String(),
	)

	return dto.ToTicketDTO(tk), nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if strings.TrimSpace(cmd.ProductID) == "" {
		return errors.NewValidationError("product ID is required")
	}
	if strings.TrimSpace(cmd.CustName) == "" {
		return errors.NewValidationError("customer name is required")
	}
	return nil
}

// snapshotFromProduct copies the product's descriptive fields into a ticket
// snapshot. Pointer fields are deep-copied so later product edits cannot
// reach into stored tickets.
func snapshotFromProduct(p *product.Product) ticket.ProductSnapshot {
	snapshot := ticket.ProductSnapshot{
		ItemName: p.ItemName(),
		Serial:   p.Serial(),
		Model:    p.Model(),
		BillNo:   p.BillNo(),
	}
	if d := p.PurchaseDate(); d != nil {
		copied := *d
		snapshot.PurchaseDate = &copied
	}
	if m := p.WarrantyMonths(); m != nil {
		copied := *m
		snapshot.WarrantyMonths = &copied
	}
	return snapshot
}
