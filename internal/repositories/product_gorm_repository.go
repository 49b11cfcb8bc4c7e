package repositories

import (
	"context"

	"storeapi/internal/apperrors"
	"storeapi/internal/models"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product and reloads it with its store summary.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit("Store").Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.NewNotFound("store not found")
		}
		return apperrors.NewInternal(err, "failed to create product")
	}

	if err := r.withStore(ctx).First(product, product.ID).Error; err != nil {
		return apperrors.NewInternal(err, "failed to reload product %d", product.ID)
	}
	return nil
}

// FindAll retrieves all products ordered by id, each with its store summary.
func (r *GORMProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.withStore(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, apperrors.NewInternal(err, "failed to list products")
	}
	return products, nil
}

// FindByID retrieves a single product with its store summary.
func (r *GORMProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.withStore(ctx).First(&product, id).Error; err != nil {
		return nil, notFoundOr(err, "product not found", "failed to get product %d", id)
	}
	return &product, nil
}

// FindByStoreID lists the products of a store. The store summary carries only
// id and name here. An unknown store yields an empty list.
func (r *GORMProductRepository) FindByStoreID(ctx context.Context, storeID uint) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.WithContext(ctx).
		Preload("Store", func(tx *gorm.DB) *gorm.DB { return tx.Select("id", "name") }).
		Where("store_id = ?", storeID).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, apperrors.NewInternal(err, "failed to list products of store %d", storeID)
	}
	return products, nil
}

// Update applies fields to the product and returns it with its store summary.
func (r *GORMProductRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Product, error) {
	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Product{ID: id}).Updates(fields)
		if res.Error != nil {
			return nil, apperrors.NewInternal(res.Error, "failed to update product %d", id)
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.NewNotFound("product not found")
		}
	}
	return r.FindByID(ctx, id)
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return apperrors.NewInternal(res.Error, "failed to delete product %d", id)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("product not found")
	}
	return nil
}

func (r *GORMProductRepository) withStore(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Store", storeSummary).
		Preload("Store.User", ownerName)
}
