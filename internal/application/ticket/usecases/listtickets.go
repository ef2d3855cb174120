package usecases

import (
	"context"
	"strings"

	"warrantydesk/internal/application/ticket/dto"
	"warrantydesk/internal/domain/ticket"
	vo "warrantydesk/internal/domain/ticket/valueobjects"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

// StatusFilterAll is the sentinel that disables status filtering.
const StatusFilterAll = "All"

type ListTicketsQuery struct {
	SearchText string
	Status     string
	SortOrder  string
}

type ListTicketsResult struct {
	Tickets      []dto.TicketListItemDTO
	Total        int64
	StatusCounts map[string]int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := buildTicketFilter(query.SearchText, query.Status, query.SortOrder)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewStorageError("failed to list tickets")
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, tk := range tickets {
		items = append(items, dto.ToTicketListItemDTO(tk))
	}

	var statusCounts map[string]int64
	counts, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		// The list itself is still usable without the summary row.
		uc.logger.Warnw("failed to count tickets by status", "error", err)
	} else {
		// Seed every status with zero so the summary always carries the
		// full set, not just the statuses that happen to have tickets.
		statusCounts = make(map[string]int64, len(vo.AllTicketStatuses()))
		for _, status := range vo.AllTicketStatuses() {
			statusCounts[status.String()] = 0
		}
		for status, count := range counts {
			statusCounts[status.String()] = count
		}
	}

	return &ListTicketsResult{
		Tickets:      items,
		Total:        total,
		StatusCounts: statusCounts,
	}, nil
}

// buildTicketFilter translates API-level filter strings into the repository
// filter. The "All" sentinel (or an empty status) passes every status.
func buildTicketFilter(searchText, status, sortOrder string) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		SearchText: strings.TrimSpace(searchText),
		SortOrder:  strings.TrimSpace(sortOrder),
	}

	status = strings.TrimSpace(status)
	if status != "" && !strings.EqualFold(status, StatusFilterAll) {
		parsed, err := vo.NewTicketStatus(status)
		if err != nil {
			return ticket.TicketFilter{}, errors.NewValidationError(err.Error())
		}
		filter.Status = &parsed
	}

	return filter, nil
}
