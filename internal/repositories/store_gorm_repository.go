package repositories

import (
	"context"

	"storeapi/internal/apperrors"
	"storeapi/internal/models"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{
		db: db,
	}
}

// Create inserts a new store and reloads it with its owner summary. The
// unique index on user_id and the users foreign key are the final word on
// one-store-per-user and owner existence.
func (r *GORMStoreRepository) Create(ctx context.Context, store *models.Store) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit("User", "Products").Create(store).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return apperrors.NewConflict("user already owns a store")
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return apperrors.NewNotFound("user not found")
		}
		return apperrors.NewInternal(err, "failed to create store")
	}

	if err := db.Preload("User", userSummary).First(store, store.ID).Error; err != nil {
		return apperrors.NewInternal(err, "failed to reload store %d", store.ID)
	}
	return nil
}

// FindAll returns every store ordered by id with owner summary and products.
func (r *GORMStoreRepository) FindAll(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	err := r.withRelations(ctx).Order("id ASC").Find(&stores).Error
	if err != nil {
		return nil, apperrors.NewInternal(err, "failed to list stores")
	}
	return stores, nil
}

// FindByID returns a store with owner summary and products.
func (r *GORMStoreRepository) FindByID(ctx context.Context, id uint) (*models.Store, error) {
	var store models.Store
	if err := r.withRelations(ctx).First(&store, id).Error; err != nil {
		return nil, notFoundOr(err, "store not found", "failed to get store %d", id)
	}
	return &store, nil
}

// FindByUserID returns the store owned by userID.
func (r *GORMStoreRepository) FindByUserID(ctx context.Context, userID uint) (*models.Store, error) {
	var store models.Store
	if err := r.withRelations(ctx).First(&store, "user_id = ?", userID).Error; err != nil {
		return nil, notFoundOr(err, "store not found", "failed to get store of user %d", userID)
	}
	return &store, nil
}

// Update applies fields to the store and returns it with relations.
func (r *GORMStoreRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Store, error) {
	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Store{ID: id}).Updates(fields)
		if res.Error != nil {
			return nil, apperrors.NewInternal(res.Error, "failed to update store %d", id)
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.NewNotFound("store not found")
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes the store. The schema cascades to its products.
func (r *GORMStoreRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Store{}, id)
	if res.Error != nil {
		return apperrors.NewInternal(res.Error, "failed to delete store %d", id)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("store not found")
	}
	return nil
}

func (r *GORMStoreRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User", userSummary).
		Preload("Products", orderByID)
}
