package dto

import (
	"time"

	"warrantydesk/internal/domain/product"
	"warrantydesk/internal/shared/biztime"
)

type ProductDTO struct {
	ProductID      string    `json:"product_id"`
	ItemName       string    `json:"item_name"`
	Serial         string    `json:"serial"`
	Model          string    `json:"model"`
	BillNo         string    `json:"bill_no"`
	PurchaseDate   *string   `json:"purchase_date"`
	WarrantyMonths *int      `json:"warranty_months"`
	CreatedAt      time.Time `json:"created_at"`
}

// CoverageDTO reports the warranty window state. DaysLeft and EndDate are nil
// when the warranty status is unavailable.
type CoverageDTO struct {
	OnWarranty bool    `json:"on_warranty"`
	DaysLeft   *int    `json:"days_left"`
	EndDate    *string `json:"end_date"`
}

func ToProductDTO(p *product.Product) *ProductDTO {
	if p == nil {
		return nil
	}

	return &ProductDTO{
		ProductID:      p.ProductID(),
		ItemName:       p.ItemName(),
		Serial:         p.Serial(),
		Model:          p.Model(),
		BillNo:         p.BillNo(),
		PurchaseDate:   formatDatePtr(p.PurchaseDate()),
		WarrantyMonths: p.WarrantyMonths(),
		CreatedAt:      p.CreatedAt(),
	}
}

func ToCoverageDTO(c product.Coverage) CoverageDTO {
	return CoverageDTO{
		OnWarranty: c.OnWarranty,
		DaysLeft:   c.DaysLeft,
		EndDate:    formatDatePtr(c.EndDate),
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := biztime.FormatDate(*t)
	return &s
}
