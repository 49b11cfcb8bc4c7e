package repositories

import (
	"context"

	"storeapi/internal/models"
)

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	Create(ctx context.Context, store *models.Store) error
	FindAll(ctx context.Context) ([]models.Store, error)
	FindByID(ctx context.Context, id uint) (*models.Store, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Store, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Store, error)
	Delete(ctx context.Context, id uint) error
}
