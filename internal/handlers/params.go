package handlers

import (
	"storeapi/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot name a stored entity, so it is reported as not found.
func parseID(c *fiber.Ctx, entity string) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.NewNotFound("%s not found", entity)
	}
	return uint(id), nil
}

// parseBody decodes the JSON request body into out.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewInvalidInput("invalid JSON body")
	}
	return nil
}
