package mappers

import (
	"encoding/json"
	"fmt"

	"warrantydesk/internal/domain/ticket"
	vo "warrantydesk/internal/domain/ticket/valueobjects"
	"warrantydesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between domain entities and
// persistence models. Timeline and notes travel as JSON documents.
type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) (*models.TicketModel, error)
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	var timeline []ticket.TimelineEntry
	if len(model.Timeline) > 0 {
		if err := json.Unmarshal(model.Timeline, &timeline); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket timeline: %w", err)
		}
	}

	var notes []ticket.Note
	if len(model.Notes) > 0 {
		if err := json.Unmarshal(model.Notes, &notes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket notes: %w", err)
		}
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("stored ticket %s has invalid status: %w", model.TicketID, err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("stored ticket %s has invalid priority: %w", model.TicketID, err)
	}

	snapshot := ticket.ProductSnapshot{
		ItemName:       model.ItemName,
		Serial:         model.Serial,
		Model:          model.Model,
		BillNo:         model.BillNo,
		PurchaseDate:   model.PurchaseDate,
		WarrantyMonths: model.WarrantyMonths,
	}

	return ticket.ReconstructTicket(
		model.TicketID,
		model.ProductID,
		model.CustName,
		model.CustPhone,
		snapshot,
		model.ReceivedDate,
		priority,
		model.Problem,
		status,
		timeline,
		notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ticketMapper) ToModel(entity *ticket.Ticket) (*models.TicketModel, error) {
	if entity == nil {
		return nil, nil
	}

	timelineJSON, err := json.Marshal(entity.Timeline())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket timeline: %w", err)
	}

	notes := entity.Notes()
	if notes == nil {
		notes = []ticket.Note{}
	}
	notesJSON, err := json.Marshal(notes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket notes: %w", err)
	}

	snapshot := entity.Snapshot()

	return &models.TicketModel{
		TicketID:       entity.ID(),
		ProductID:      entity.ProductID(),
		CustName:       entity.CustName(),
		CustPhone:      entity.CustPhone(),
		ItemName:       snapshot.ItemName,
		Serial:         snapshot.Serial,
		Model:          snapshot.Model,
		BillNo:         snapshot.BillNo,
		PurchaseDate:   snapshot.PurchaseDate,
		WarrantyMonths: snapshot.WarrantyMonths,
		ReceivedDate:   entity.ReceivedDate(),
		Priority:       entity.Priority().String(),
		Problem:        entity.Problem(),
		Status:         entity.Status().String(),
		Timeline:       timelineJSON,
		Notes:          notesJSON,
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *ticketMapper) ToEntities(ticketModels []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
