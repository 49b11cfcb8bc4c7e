package validation_test

import (
	"testing"

	"storeapi/internal/apperrors"
	"storeapi/internal/models"
	"storeapi/internal/validation"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }

func assertInvalid(t *testing.T, err error, msg string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, errors.Is(err, apperrors.InvalidInput), "expected InvalidInput, got %v", err)
		assert.Equal(t, msg, apperrors.PublicMessage(err))
	}
}

func TestUserCreate(t *testing.T) {
	valid := models.CreateUserInput{Name: "Ana", Email: "ana@x.com", Password: "abcdef"}
	assert.NoError(t, validation.UserCreate(valid))

	tests := []struct {
		name string
		in   models.CreateUserInput
		msg  string
	}{
		{"missing name", models.CreateUserInput{Email: "ana@x.com", Password: "abcdef"}, "name, email and password are required"},
		{"missing email", models.CreateUserInput{Name: "Ana", Password: "abcdef"}, "name, email and password are required"},
		{"missing password", models.CreateUserInput{Name: "Ana", Email: "ana@x.com"}, "name, email and password are required"},
		{"missing field beats bad format", models.CreateUserInput{Name: "A", Email: "bad"}, "name, email and password are required"},
		{"email without at", models.CreateUserInput{Name: "Ana", Email: "ana.x.com", Password: "abcdef"}, "invalid email format"},
		{"email without tld", models.CreateUserInput{Name: "Ana", Email: "ana@x", Password: "abcdef"}, "invalid email format"},
		{"email with space", models.CreateUserInput{Name: "Ana", Email: "an a@x.com", Password: "abcdef"}, "invalid email format"},
		{"email with two ats", models.CreateUserInput{Name: "Ana", Email: "ana@@x.com", Password: "abcdef"}, "invalid email format"},
		{"short password", models.CreateUserInput{Name: "Ana", Email: "ana@x.com", Password: "abcde"}, "password must be at least 6 characters"},
		{"short name", models.CreateUserInput{Name: "A", Email: "ana@x.com", Password: "abcdef"}, "name must be at least 2 characters"},
		{"email checked before password", models.CreateUserInput{Name: "A", Email: "nope", Password: "abc"}, "invalid email format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertInvalid(t, validation.UserCreate(tt.in), tt.msg)
		})
	}
}

func TestUserUpdate(t *testing.T) {
	assert.NoError(t, validation.UserUpdate(models.UpdateUserInput{}))
	assert.NoError(t, validation.UserUpdate(models.UpdateUserInput{Name: strPtr("Bo")}))
	assert.NoError(t, validation.UserUpdate(models.UpdateUserInput{Email: strPtr("bo@y.org"), Password: strPtr("secret")}))

	assertInvalid(t, validation.UserUpdate(models.UpdateUserInput{Email: strPtr("bo@y")}), "invalid email format")
	assertInvalid(t, validation.UserUpdate(models.UpdateUserInput{Password: strPtr("123")}), "password must be at least 6 characters")
	assertInvalid(t, validation.UserUpdate(models.UpdateUserInput{Name: strPtr("B")}), "name must be at least 2 characters")
	assertInvalid(t, validation.UserUpdate(models.UpdateUserInput{Name: strPtr("")}), "name must be at least 2 characters")
}

func TestStoreRules(t *testing.T) {
	assert.NoError(t, validation.StoreCreate(models.CreateStoreInput{Name: "Loja A", UserID: 1}))
	assertInvalid(t, validation.StoreCreate(models.CreateStoreInput{UserID: 1}), "store name and userId are required")
	assertInvalid(t, validation.StoreCreate(models.CreateStoreInput{Name: "Loja A"}), "store name and userId are required")

	assert.NoError(t, validation.StoreUpdate(models.UpdateStoreInput{}))
	assert.NoError(t, validation.StoreUpdate(models.UpdateStoreInput{Name: strPtr("Loja B")}))
	assertInvalid(t, validation.StoreUpdate(models.UpdateStoreInput{Name: strPtr("")}), "store name must not be empty")
}

func TestProductRules(t *testing.T) {
	assert.NoError(t, validation.ProductCreate(models.CreateProductInput{Name: "Caneta", Price: 2.5, StoreID: 1}))

	assertInvalid(t, validation.ProductCreate(models.CreateProductInput{Price: 2.5, StoreID: 1}), "name, price and storeId are required")
	assertInvalid(t, validation.ProductCreate(models.CreateProductInput{Name: "Caneta", StoreID: 1}), "name, price and storeId are required")
	assertInvalid(t, validation.ProductCreate(models.CreateProductInput{Name: "Caneta", Price: 2.5}), "name, price and storeId are required")
	assertInvalid(t, validation.ProductCreate(models.CreateProductInput{Name: "Caneta", Price: -1, StoreID: 1}), "price must be greater than zero")

	assert.NoError(t, validation.ProductUpdate(models.UpdateProductInput{}))
	assert.NoError(t, validation.ProductUpdate(models.UpdateProductInput{Price: floatPtr(0.01)}))
	assertInvalid(t, validation.ProductUpdate(models.UpdateProductInput{Price: floatPtr(0)}), "price must be greater than zero")
	assertInvalid(t, validation.ProductUpdate(models.UpdateProductInput{Price: floatPtr(-3)}), "price must be greater than zero")
	assertInvalid(t, validation.ProductUpdate(models.UpdateProductInput{Name: strPtr("")}), "product name must not be empty")
}
