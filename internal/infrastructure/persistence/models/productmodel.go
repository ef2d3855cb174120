package models

import (
	"time"
)

// ProductModel is the database persistence model for registered products.
// This is the anti-corruption layer between domain and database.
type ProductModel struct {
	ID             uint   `gorm:"primarykey"`
	ProductID      string `gorm:"uniqueIndex;not null;size:20"`
	ItemName       string `gorm:"not null;size:255;index"`
	Serial         string `gorm:"size:255;index"`
	Model          string `gorm:"size:255"`
	BillNo         string `gorm:"size:100"`
	PurchaseDate   *time.Time
	WarrantyMonths *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}
