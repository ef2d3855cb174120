package product

import "context"

// ProductRepository persists the product registry. Implementations return
// newest-first ordering for List. Lookups that match nothing return
// (nil, nil) rather than an error.
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, productID string) error
	FindByID(ctx context.Context, productID string) (*Product, error)
	FindByIdentity(ctx context.Context, itemName, serial string) (*Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*Product, int64, error)
}

// ProductFilter narrows List results.
type ProductFilter struct {
	SearchText string
}
