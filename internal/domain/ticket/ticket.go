package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "warrantydesk/internal/domain/ticket/valueobjects"
)

// ProductSnapshot is the product state frozen into a ticket at creation time.
// It does not follow later edits or deletion of the product: the snapshot is
// the ticket's source of truth for display and export.
type ProductSnapshot struct {
	ItemName       string
	Serial         string
	Model          string
	BillNo         string
	PurchaseDate   *time.Time
	WarrantyMonths *int
}

// TimelineEntry is one append-only status history record.
type TimelineEntry struct {
	At     time.Time       `json:"at"`
	Status vo.TicketStatus `json:"status"`
	Note   string          `json:"note"`
}

// Note is a free-form remark attached to a ticket after creation.
type Note struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// Ticket is a service request referencing one product. Many tickets may
// reference the same product; the ticket persists independently of the
// product's later deletion.
type Ticket struct {
	id           string
	productID    string
	custName     string
	custPhone    string
	snapshot     ProductSnapshot
	receivedDate time.Time
	priority     vo.Priority
	problem      string
	status       vo.TicketStatus
	timeline     []TimelineEntry
	notes        []Note
	createdAt    time.Time
	updatedAt    time.Time
}

// NewTicket creates a ticket in the Received state, seeding the timeline with
// a single entry. The received date defaults to the creation date.
func NewTicket(
	ticketID string,
	productID string,
	custName string,
	custPhone string,
	snapshot ProductSnapshot,
	priority vo.Priority,
	problem string,
	now time.Time,
) (*Ticket, error) {
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(productID) == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	custName = strings.TrimSpace(custName)
	if len(custName) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:           ticketID,
		productID:    productID,
		custName:     custName,
		custPhone:    strings.TrimSpace(custPhone),
		snapshot:     snapshot,
		receivedDate: now,
		priority:     priority,
		problem:      strings.TrimSpace(problem),
		status:       vo.StatusReceived,
		timeline: []TimelineEntry{
			{At: now, Status: vo.StatusReceived, Note: "Ticket created"},
		},
		notes:     []Note{},
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	ticketID string,
	productID string,
	custName string,
	custPhone string,
	snapshot ProductSnapshot,
	receivedDate time.Time,
	priority vo.Priority,
	problem string,
	status vo.TicketStatus,
	timeline []TimelineEntry,
	notes []Note,
	createdAt time.Time,
	updatedAt time.Time,
) (*Ticket, error) {
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(custName) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	if timeline == nil {
		timeline = []TimelineEntry{}
	}
	if notes == nil {
		notes = []Note{}
	}

	return &Ticket{
		id:           ticketID,
		productID:    productID,
		custName:     custName,
		custPhone:    custPhone,
		snapshot:     snapshot,
		receivedDate: receivedDate,
		priority:     priority,
		problem:      problem,
		status:       status,
		timeline:     timeline,
		notes:        notes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) ProductID() string {
	return t.productID
}

func (t *Ticket) CustName() string {
	return t.custName
}

func (t *Ticket) CustPhone() string {
	return t.custPhone
}

func (t *Ticket) Snapshot() ProductSnapshot {
	return t.snapshot
}

func (t *Ticket) ReceivedDate() time.Time {
	return t.receivedDate
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Problem() string {
	return t.problem
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Timeline() []TimelineEntry {
	timelineCopy := make([]TimelineEntry, len(t.timeline))
	copy(timelineCopy, t.timeline)
	return timelineCopy
}

func (t *Ticket) Notes() []Note {
	notesCopy := make([]Note, len(t.notes))
	copy(notesCopy, t.notes)
	return notesCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// UpdateDetails overwrites the editable ticket fields in place. Status,
// timeline and notes are untouched by this operation.
func (t *Ticket) UpdateDetails(
	productID string,
	custName string,
	custPhone string,
	snapshot ProductSnapshot,
	priority vo.Priority,
	problem string,
	now time.Time,
) error {
	if len(productID) == 0 {
		return fmt.Errorf("product ID is required")
	}
	custName = strings.TrimSpace(custName)
	if len(custName) == 0 {
		return fmt.Errorf("customer name is required")
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}

	t.productID = productID
	t.custName = custName
	t.custPhone = strings.TrimSpace(custPhone)
	t.snapshot = snapshot
	t.priority = priority
	t.problem = strings.TrimSpace(problem)
	t.updatedAt = now

	return nil
}

// ChangeStatus moves the ticket through its lifecycle and appends a timeline
// entry. Changing to the current status is a no-op.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus, note string, now time.Time) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.timeline = append(t.timeline, TimelineEntry{At: now, Status: newStatus, Note: note})
	t.updatedAt = now

	return nil
}

// AddNote appends a free-form note.
func (t *Ticket) AddNote(text string, now time.Time) error {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return fmt.Errorf("note text is required")
	}

	t.notes = append(t.notes, Note{At: now, Text: text})
	t.updatedAt = now

	return nil
}
