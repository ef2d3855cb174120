package product

import (
	"fmt"
	"strings"
	"time"
)

// Product is a registered physical item with purchase and warranty metadata.
// The item name + serial pair is the public lookup key.
type Product struct {
	productID      string
	itemName       string
	serial         string
	model          string
	billNo         string
	purchaseDate   *time.Time
	warrantyMonths *int
	createdAt      time.Time
}

// NewProduct creates a product for registration. The item name is required;
// all other descriptive fields are optional. A nil purchase date or warranty
// duration leaves the warranty status undetermined rather than failing.
func NewProduct(
	productID string,
	itemName string,
	serial string,
	model string,
	billNo string,
	purchaseDate *time.Time,
	warrantyMonths *int,
	now time.Time,
) (*Product, error) {
	itemName = strings.TrimSpace(itemName)
	if len(itemName) == 0 {
		return nil, fmt.Errorf("item name is required")
	}
	if len(productID) == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if warrantyMonths != nil && *warrantyMonths < 0 {
		return nil, fmt.Errorf("warranty months cannot be negative")
	}

	return &Product{
		productID:      productID,
		itemName:       itemName,
		serial:         strings.TrimSpace(serial),
		model:          strings.TrimSpace(model),
		billNo:         strings.TrimSpace(billNo),
		purchaseDate:   purchaseDate,
		warrantyMonths: warrantyMonths,
		createdAt:      now,
	}, nil
}

// ReconstructProduct rebuilds a product from persistence.
func ReconstructProduct(
	productID string,
	itemName string,
	serial string,
	model string,
	billNo string,
	purchaseDate *time.Time,
	warrantyMonths *int,
	createdAt time.Time,
) (*Product, error) {
	if len(productID) == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if len(itemName) == 0 {
		return nil, fmt.Errorf("item name is required")
	}

	return &Product{
		productID:      productID,
		itemName:       itemName,
		serial:         serial,
		model:          model,
		billNo:         billNo,
		purchaseDate:   purchaseDate,
		warrantyMonths: warrantyMonths,
		createdAt:      createdAt,
	}, nil
}

func (p *Product) ProductID() string {
	return p.productID
}

func (p *Product) ItemName() string {
	return p.itemName
}

func (p *Product) Serial() string {
	return p.serial
}

func (p *Product) Model() string {
	return p.model
}

func (p *Product) BillNo() string {
	return p.billNo
}

func (p *Product) PurchaseDate() *time.Time {
	return p.purchaseDate
}

func (p *Product) WarrantyMonths() *int {
	return p.warrantyMonths
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// MatchesIdentity reports whether the given item name and serial match this
// product. The comparison is a case-insensitive exact match on both fields.
func (p *Product) MatchesIdentity(itemName, serial string) bool {
	return strings.EqualFold(p.itemName, strings.TrimSpace(itemName)) &&
		strings.EqualFold(p.serial, strings.TrimSpace(serial))
}

// Coverage computes the warranty coverage for this product at the given time.
func (p *Product) Coverage(now time.Time) Coverage {
	return ComputeCoverage(p.purchaseDate, p.warrantyMonths, now)
}
