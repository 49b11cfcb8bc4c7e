package services

import (
	"context"

	"storeapi/internal/apperrors"
	"storeapi/internal/models"
	"storeapi/internal/repositories"
	"storeapi/internal/validation"

	"github.com/juju/errors"
)

// StoreService handles business logic related to stores.
type StoreService struct {
	repo      repositories.StoreRepository
	users     repositories.UserRepository
	publisher EventPublisher
}

// NewStoreService creates a new StoreService. publisher may be nil.
func NewStoreService(repo repositories.StoreRepository, users repositories.UserRepository, publisher EventPublisher) *StoreService {
	return &StoreService{
		repo:      repo,
		users:     users,
		publisher: publisher,
	}
}

// Create opens a store for an existing user who has none yet. The checks
// here give precise errors; the repository still rejects a concurrent
// duplicate through the unique index.
func (s *StoreService) Create(ctx context.Context, in models.CreateStoreInput) (*models.Store, error) {
	if err := validation.StoreCreate(in); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	_, err := s.repo.FindByUserID(ctx, in.UserID)
	switch {
	case err == nil:
		return nil, apperrors.NewConflict("user already owns a store")
	case !errors.Is(err, apperrors.NotFound):
		return nil, err
	}

	store := &models.Store{Name: in.Name, UserID: in.UserID}
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	publish(s.publisher, EventStoreCreated, store)
	return store, nil
}

// FindAll lists every store with its owner and products.
func (s *StoreService) FindAll(ctx context.Context) ([]models.Store, error) {
	return s.repo.FindAll(ctx)
}

// FindByID returns a store with its owner and products.
func (s *StoreService) FindByID(ctx context.Context, id uint) (*models.Store, error) {
	return s.repo.FindByID(ctx, id)
}

// Update renames a store.
func (s *StoreService) Update(ctx context.Context, id uint, in models.UpdateStoreInput) (*models.Store, error) {
	if err := validation.StoreUpdate(in); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}

	store, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	publish(s.publisher, EventStoreUpdated, store)
	return store, nil
}

// Delete removes a store along with its products.
func (s *StoreService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(s.publisher, EventStoreDeleted, deletedEntity{ID: id})
	return nil
}
