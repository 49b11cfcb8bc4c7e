package repositories

import (
	"context"

	"storeapi/internal/apperrors"
	"storeapi/internal/models"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. A duplicate email is reported as a conflict even
// when a concurrent request slipped past the service's pre-check.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflict("email already registered")
		}
		return apperrors.NewInternal(err, "failed to create user")
	}
	return nil
}

// FindAll returns every user ordered by id, each with its store if any.
func (r *GORMUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Preload("Store").Order("id ASC").Find(&users).Error; err != nil {
		return nil, apperrors.NewInternal(err, "failed to list users")
	}
	return users, nil
}

// FindByID returns a user with its store and the store's products.
func (r *GORMUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Store.Products", orderByID).
		First(&user, id).Error
	if err != nil {
		return nil, notFoundOr(err, "user not found", "failed to get user %d", id)
	}
	return &user, nil
}

// FindByEmail returns the user registered with email. The match is case-sensitive.
func (r *GORMUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, notFoundOr(err, "user not found", "failed to get user by email")
	}
	return &user, nil
}

// Update applies fields to the user and returns the stored row.
func (r *GORMUserRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.User, error) {
	db := r.db.WithContext(ctx)
	if len(fields) > 0 {
		res := db.Model(&models.User{ID: id}).Updates(fields)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return nil, apperrors.NewConflict("email already registered")
			}
			return nil, apperrors.NewInternal(res.Error, "failed to update user %d", id)
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.NewNotFound("user not found")
		}
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, notFoundOr(err, "user not found", "failed to reload user %d", id)
	}
	return &user, nil
}

// Delete removes the user. The schema cascades to its store and products.
func (r *GORMUserRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return apperrors.NewInternal(res.Error, "failed to delete user %d", id)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("user not found")
	}
	return nil
}

// notFoundOr maps gorm.ErrRecordNotFound to a NotFound error carrying
// message, and anything else to Internal.
func notFoundOr(err error, message, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound("%s", message)
	}
	return apperrors.NewInternal(err, format, args...)
}
