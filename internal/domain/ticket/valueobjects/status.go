package valueobjects

import "fmt"

// TicketStatus is the service lifecycle state of a ticket. Tickets start as
// Received and move through the repair flow; Closed is terminal.
type TicketStatus string

const (
	StatusReceived   TicketStatus = "Received"
	StatusInProgress TicketStatus = "In Progress"
	StatusRepaired   TicketStatus = "Repaired"
	StatusDelivered  TicketStatus = "Delivered"
	StatusClosed     TicketStatus = "Closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusReceived:   true,
	StatusInProgress: true,
	StatusRepaired:   true,
	StatusDelivered:  true,
	StatusClosed:     true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusReceived: {
		StatusInProgress,
		StatusClosed,
	},
	StatusInProgress: {
		StatusRepaired,
		StatusClosed,
	},
	StatusRepaired: {
		StatusDelivered,
		StatusInProgress,
		StatusClosed,
	},
	StatusDelivered: {
		StatusClosed,
	},
	StatusClosed: {},
}

// AllTicketStatuses lists every valid status, in lifecycle order. Used to
// seed the list endpoint's status summary so every status appears even at
// zero tickets.
func AllTicketStatuses() []TicketStatus {
	return []TicketStatus{
		StatusReceived,
		StatusInProgress,
		StatusRepaired,
		StatusDelivered,
		StatusClosed,
	}
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsReceived() bool {
	return ts == StatusReceived
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
