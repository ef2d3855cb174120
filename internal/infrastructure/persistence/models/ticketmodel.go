package models

import (
	"time"

	"gorm.io/datatypes"
)

// TicketModel is the database persistence model for repair tickets. The
// product snapshot is flattened into columns; the timeline and notes are
// append-only JSON documents.
type TicketModel struct {
	ID             uint   `gorm:"primarykey"`
	TicketID       string `gorm:"uniqueIndex;not null;size:20"`
	ProductID      string `gorm:"not null;size:20;index"`
	CustName       string `gorm:"not null;size:255;index"`
	CustPhone      string `gorm:"size:50"`
	ItemName       string `gorm:"size:255;index"`
	Serial         string `gorm:"size:255"`
	Model          string `gorm:"size:255"`
	BillNo         string `gorm:"size:100"`
	PurchaseDate   *time.Time
	WarrantyMonths *int
	ReceivedDate   time.Time `gorm:"not null"`
	Priority       string    `gorm:"not null;size:20;default:Normal"`
	Problem        string    `gorm:"type:text"`
	Status         string    `gorm:"not null;size:20;index"`
	Timeline       datatypes.JSON
	Notes          datatypes.JSON
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return "tickets"
}
