package services

import (
	"context"

	"storeapi/internal/models"
	"storeapi/internal/repositories"
	"storeapi/internal/validation"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	stores    repositories.StoreRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, stores repositories.StoreRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		stores:    stores,
		publisher: publisher,
	}
}

// Create adds a product to an existing store.
func (s *ProductService) Create(ctx context.Context, in models.CreateProductInput) (*models.Product, error) {
	if err := validation.ProductCreate(in); err != nil {
		return nil, err
	}
	if _, err := s.stores.FindByID(ctx, in.StoreID); err != nil {
		return nil, err
	}

	product := &models.Product{Name: in.Name, Price: in.Price, StoreID: in.StoreID}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	publish(s.publisher, EventProductCreated, product)
	return product, nil
}

// FindAll lists every product with its store summary.
func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

// FindByID returns a single product with its store summary.
func (s *ProductService) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByStore lists the products of a store. An unknown store has none.
func (s *ProductService) FindByStore(ctx context.Context, storeID uint) ([]models.Product, error) {
	return s.repo.FindByStoreID(ctx, storeID)
}

// Update applies the supplied name and price to an existing product.
func (s *ProductService) Update(ctx context.Context, id uint, in models.UpdateProductInput) (*models.Product, error) {
	if err := validation.ProductUpdate(in); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}

	product, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	publish(s.publisher, EventProductUpdated, product)
	return product, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(s.publisher, EventProductDeleted, deletedEntity{ID: id})
	return nil
}
