package repositories

import (
	"context"

	"storeapi/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindByStoreID(ctx context.Context, storeID uint) ([]models.Product, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}
