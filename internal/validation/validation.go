// Package validation checks request payloads before any repository call.
// Every function is pure: it inspects its input and returns nil or an
// InvalidInput error naming the first problem found.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"storeapi/internal/apperrors"
	"storeapi/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
)

// emailPattern accepts localpart@domain.tld where no part holds spaces or '@'.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match the payload.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("emailaddr", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

var userMessages = map[string]string{
	"email.emailaddr": "invalid email format",
	"password.min":    "password must be at least 6 characters",
	"name.min":        "name must be at least 2 characters",
}

var storeMessages = map[string]string{
	"name.min": "store name must not be empty",
}

var productMessages = map[string]string{
	"price.gt": "price must be greater than zero",
	"name.min": "product name must not be empty",
}

// UserCreate validates a user creation payload.
func UserCreate(in models.CreateUserInput) error {
	return check(in, "name, email and password are required", userMessages)
}

// UserUpdate validates a partial user update. Absent fields are skipped.
func UserUpdate(in models.UpdateUserInput) error {
	return check(in, "", userMessages)
}

// StoreCreate validates a store creation payload.
func StoreCreate(in models.CreateStoreInput) error {
	return check(in, "store name and userId are required", storeMessages)
}

// StoreUpdate validates a partial store update.
func StoreUpdate(in models.UpdateStoreInput) error {
	return check(in, "", storeMessages)
}

// ProductCreate validates a product creation payload.
func ProductCreate(in models.CreateProductInput) error {
	return check(in, "name, price and storeId are required", productMessages)
}

// ProductUpdate validates a partial product update.
func ProductUpdate(in models.UpdateProductInput) error {
	return check(in, "", productMessages)
}

// check runs the struct rules on input. A missing required field wins over
// any other failure; otherwise the first failing field is reported.
func check(input interface{}, requiredMessage string, messages map[string]string) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewInternal(err, "failed to validate %T", input)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return apperrors.NewInvalidInput("%s", requiredMessage)
		}
	}

	first := fieldErrs[0]
	if msg, ok := messages[first.Field()+"."+first.Tag()]; ok {
		return apperrors.NewInvalidInput("%s", msg)
	}
	return apperrors.NewInvalidInput("%s is invalid", first.Field())
}
