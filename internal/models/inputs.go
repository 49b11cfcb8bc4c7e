package models

// Request payloads. Update inputs use pointers so an absent field (nil) can be
// told apart from a supplied one; only supplied fields are applied.
//
// Field order matters: validators report the first failing field in
// declaration order.

// CreateUserInput is the payload for creating a user.
type CreateUserInput struct {
	Email    string `json:"email" validate:"required,emailaddr"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2"`
}

// UpdateUserInput is the payload for a partial user update.
type UpdateUserInput struct {
	Email    *string `json:"email" validate:"omitnil,emailaddr"`
	Password *string `json:"password" validate:"omitnil,min=6"`
	Name     *string `json:"name" validate:"omitnil,min=2"`
}

// CreateStoreInput is the payload for creating a store.
type CreateStoreInput struct {
	Name   string `json:"name" validate:"required"`
	UserID uint   `json:"userId" validate:"required"`
}

// UpdateStoreInput is the payload for a partial store update.
type UpdateStoreInput struct {
	Name *string `json:"name" validate:"omitnil,min=1"`
}

// CreateProductInput is the payload for creating a product. A zero price is
// reported as missing.
type CreateProductInput struct {
	Name    string  `json:"name" validate:"required"`
	Price   float64 `json:"price" validate:"required,gt=0"`
	StoreID uint    `json:"storeId" validate:"required"`
}

// UpdateProductInput is the payload for a partial product update.
type UpdateProductInput struct {
	Name  *string  `json:"name" validate:"omitnil,min=1"`
	Price *float64 `json:"price" validate:"omitnil,gt=0"`
}
