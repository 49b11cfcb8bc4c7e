package middleware

import (
	"fmt"
	"log"

	"storeapi/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/juju/errors"
)

// ErrorHandler renders every error returned by a handler as {"error": msg}.
// Internal failures are logged with their cause and hidden from the caller.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	status := apperrors.StatusCode(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("[%s] %s %s failed: %v", requestID(c), c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": apperrors.PublicMessage(err),
	})
}

// NotFound answers requests that matched no route. Register it last.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": fmt.Sprintf("route %s %s not found", c.Method(), c.Path()),
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return "-"
}
