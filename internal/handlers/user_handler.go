package handlers

import (
	"storeapi/internal/models"
	"storeapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/usuarios")
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleCreateUser registers a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var in models.CreateUserInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	user, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(newUserResponse(user))
}

// HandleGetUsers lists all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(newUserResponses(users))
}

// HandleGetUserByID returns a single user with its store and products.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}

	user, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(newUserResponse(user))
}

// HandleUpdateUser applies a partial update to a user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	var in models.UpdateUserInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	user, err := h.service.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(newUserResponse(user))
}

// HandleDeleteUser removes a user.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
