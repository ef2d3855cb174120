package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"warrantydesk/internal/domain/product"
	"warrantydesk/internal/infrastructure/persistence/mappers"
	"warrantydesk/internal/infrastructure/persistence/models"
	db "warrantydesk/internal/shared/db"
)

type ProductRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db:     db,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductRepository) Save(ctx context.Context, p *product.Product) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, productID string) (*product.Product, error) {
	var model models.ProductModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("product_id = ?", productID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ProductRepository) FindByIdentity(ctx context.Context, itemName, serial string) (*product.Product, error) {
	var model models.ProductModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("LOWER(item_name) = ? AND LOWER(serial) = ?",
			strings.ToLower(strings.TrimSpace(itemName)),
			strings.ToLower(strings.TrimSpace(serial))).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product by identity: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ProductRepository) List(ctx context.Context, filter product.ProductFilter) ([]*product.Product, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProductModel{})

	if search := strings.TrimSpace(filter.SearchText); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(product_id) LIKE ? OR LOWER(item_name) LIKE ? OR LOWER(serial) LIKE ? OR LOWER(model) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var productModels []*models.ProductModel
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	entities, err := r.mapper.ToEntities(productModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
