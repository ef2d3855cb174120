package ticket

import (
	"context"

	vo "warrantydesk/internal/domain/ticket/valueobjects"
)

// TicketRepository persists the ticket registry. FindByID matches the ticket
// ID case-insensitively and returns (nil, nil) when no ticket matches; List
// and FindByProduct return newest-first by default.
type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID string) error
	FindByID(ctx context.Context, ticketID string) (*Ticket, error)
	FindByProduct(ctx context.Context, productID string) ([]*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error)
}

// TicketFilter narrows and orders List results. SearchText matches a
// case-insensitive substring of the ticket ID, customer name, item name or
// product ID. A nil Status (or the "All" sentinel at the API layer) passes
// every status through. SortOrder "newest" sorts by creation time descending;
// any other value ascending.
type TicketFilter struct {
	SearchText string
	Status     *vo.TicketStatus
	SortOrder  string
}
