package dto

import (
	"time"

	"warrantydesk/internal/domain/ticket"
	"warrantydesk/internal/shared/biztime"
)

type TicketDTO struct {
	ID             string             `json:"id"`
	ProductID      string             `json:"product_id"`
	CustName       string             `json:"cust_name"`
	CustPhone      string             `json:"cust_phone"`
	ItemName       string             `json:"item_name"`
	Serial         string             `json:"serial"`
	Model          string             `json:"model"`
	BillNo         string             `json:"bill_no"`
	PurchaseDate   *string            `json:"purchase_date"`
	WarrantyMonths *int               `json:"warranty_months"`
	ReceivedDate   string             `json:"received_date"`
	Priority       string             `json:"priority"`
	Problem        string             `json:"problem"`
	Status         string             `json:"status"`
	Timeline       []TimelineEntryDTO `json:"timeline"`
	Notes          []NoteDTO          `json:"notes"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type TimelineEntryDTO struct {
	At     time.Time `json:"at"`
	Status string    `json:"status"`
	Note   string    `json:"note"`
}

type NoteDTO struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// TicketListItemDTO is the compact row shape for list views.
type TicketListItemDTO struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	CustName     string    `json:"cust_name"`
	ItemName     string    `json:"item_name"`
	Model        string    `json:"model"`
	ReceivedDate string    `json:"received_date"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	snapshot := t.Snapshot()

	timeline := make([]TimelineEntryDTO, 0, len(t.Timeline()))
	for _, entry := range t.Timeline() {
		timeline = append(timeline, TimelineEntryDTO{
			At:     entry.At,
			Status: entry.Status.String(),
			Note:   entry.Note,
		})
	}

	notes := make([]NoteDTO, 0, len(t.Notes()))
	for _, note := range t.Notes() {
		notes = append(notes, NoteDTO{At: note.At, Text: note.Text})
	}

	return &TicketDTO{
		ID:             t.ID(),
		ProductID:      t.ProductID(),
		CustName:       t.CustName(),
		CustPhone:      t.CustPhone(),
		ItemName:       snapshot.ItemName,
		Serial:         snapshot.Serial,
		Model:          snapshot.Model,
		BillNo:         snapshot.BillNo,
		PurchaseDate:   formatDatePtr(snapshot.PurchaseDate),
		WarrantyMonths: snapshot.WarrantyMonths,
		ReceivedDate:   biztime.FormatDate(t.ReceivedDate()),
		Priority:       t.Priority().String(),
		Problem:        t.Problem(),
		Status:         t.Status().String(),
		Timeline:       timeline,
		Notes:          notes,
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	snapshot := t.Snapshot()
	return TicketListItemDTO{
		ID:           t.ID(),
		ProductID:    t.ProductID(),
		CustName:     t.CustName(),
		ItemName:     snapshot.ItemName,
		Model:        snapshot.Model,
		ReceivedDate: biztime.FormatDate(t.ReceivedDate()),
		Priority:     t.Priority().String(),
		Status:       t.Status().String(),
		CreatedAt:    t.CreatedAt(),
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := biztime.FormatDate(*t)
	return &s
}
