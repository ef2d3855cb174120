package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"warrantydesk/internal/domain/ticket"
	vo "warrantydesk/internal/domain/ticket/valueobjects"
	"warrantydesk/internal/infrastructure/persistence/mappers"
	"warrantydesk/internal/infrastructure/persistence/models"
	db "warrantydesk/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("ticket_id = ?", model.TicketID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// RowsAffected may be 0 when the updated values equal the stored ones.

	return nil
}

// Delete removes a ticket by ID. Deleting a ticket that is already gone is
// not an error.
func (r *TicketRepository) Delete(ctx context.Context, ticketID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("LOWER(ticket_id) = ?", strings.ToLower(ticketID)).
		Delete(&models.TicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("LOWER(ticket_id) = ?", strings.ToLower(strings.TrimSpace(ticketID))).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TicketRepository) FindByProduct(ctx context.Context, productID string) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets by product: %w", err)
	}

	return r.mapper.ToEntities(ticketModels)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if search := strings.TrimSpace(filter.SearchText); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(ticket_id) LIKE ? OR LOWER(cust_name) LIKE ? OR LOWER(item_name) LIKE ? OR LOWER(product_id) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	order := "created_at ASC"
	if filter.SortOrder == "" || strings.EqualFold(filter.SortOrder, "newest") {
		order = "created_at DESC"
	}

	var ticketModels []*models.TicketModel
	if err := query.Order(order).Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	entities, err := r.mapper.ToEntities(ticketModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Count  int64
	}
	if err := tx.
		Model(&models.TicketModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[vo.TicketStatus]int64, len(rows))
	for _, row := range rows {
		status, err := vo.NewTicketStatus(row.Status)
		if err != nil {
			// Skip rows written by a newer schema rather than failing the
			// whole summary.
			continue
		}
		counts[status] = row.Count
	}

	return counts, nil
}
