package handlers

import (
	"time"

	"storeapi/internal/models"
)

// Response views. Relations are rendered only when the repository loaded
// them; a loaded but empty product list renders as [].

type userResponse struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Store     *storeResponse `json:"store,omitempty"`
}

type ownerSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type storeResponse struct {
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	UserID    uint               `json:"userId"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	User      *ownerSummary      `json:"user,omitempty"`
	Products  *[]productResponse `json:"products,omitempty"`
}

type storeSummary struct {
	ID   uint          `json:"id"`
	Name string        `json:"name"`
	User *ownerSummary `json:"user,omitempty"`
}

type productResponse struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Price     float64       `json:"price"`
	StoreID   uint          `json:"storeId"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Store     *storeSummary `json:"store,omitempty"`
}

func newUserResponse(u *models.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Store != nil {
		store := newStoreResponse(u.Store)
		resp.Store = &store
	}
	return resp
}

func newUserResponses(users []models.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	return out
}

func newOwnerSummary(u *models.User) *ownerSummary {
	if u == nil {
		return nil
	}
	return &ownerSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

func newStoreResponse(s *models.Store) storeResponse {
	resp := storeResponse{
		ID:        s.ID,
		Name:      s.Name,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		User:      newOwnerSummary(s.User),
	}
	if s.Products != nil {
		products := newProductResponses(s.Products)
		resp.Products = &products
	}
	return resp
}

func newStoreResponses(stores []models.Store) []storeResponse {
	out := make([]storeResponse, 0, len(stores))
	for i := range stores {
		out = append(out, newStoreResponse(&stores[i]))
	}
	return out
}

func newProductResponse(p *models.Product) productResponse {
	resp := productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		StoreID:   p.StoreID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Store != nil {
		resp.Store = &storeSummary{
			ID:   p.Store.ID,
			Name: p.Store.Name,
			User: newOwnerSummary(p.Store.User),
		}
	}
	return resp
}

func newProductResponses(products []models.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, newProductResponse(&products[i]))
	}
	return out
}
