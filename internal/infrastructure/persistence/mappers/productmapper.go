package mappers

import (
	"warrantydesk/internal/domain/product"
	"warrantydesk/internal/infrastructure/persistence/models"
)

// ProductMapper handles the conversion between domain entities and
// persistence models.
type ProductMapper interface {
	ToEntity(model *models.ProductModel) (*product.Product, error)
	ToModel(entity *product.Product) (*models.ProductModel, error)
	ToEntities(models []*models.ProductModel) ([]*product.Product, error)
}

type productMapper struct{}

func NewProductMapper() ProductMapper {
	return &productMapper{}
}

func (m *productMapper) ToEntity(model *models.ProductModel) (*product.Product, error) {
	if model == nil {
		return nil, nil
	}

	return product.ReconstructProduct(
		model.ProductID,
		model.ItemName,
		model.Serial,
		model.Model,
		model.BillNo,
		model.PurchaseDate,
		model.WarrantyMonths,
		model.CreatedAt,
	)
}

func (m *productMapper) ToModel(entity *product.Product) (*models.ProductModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ProductModel{
		ProductID:      entity.ProductID(),
		ItemName:       entity.ItemName(),
		Serial:         entity.Serial(),
		Model:          entity.Model(),
		BillNo:         entity.BillNo(),
		PurchaseDate:   entity.PurchaseDate(),
		WarrantyMonths: entity.WarrantyMonths(),
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

func (m *productMapper) ToEntities(productModels []*models.ProductModel) ([]*product.Product, error) {
	entities := make([]*product.Product, 0, len(productModels))
	for _, model := range productModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
