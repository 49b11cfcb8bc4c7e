package handlers

import (
	"storeapi/internal/models"
	"storeapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StoreHandler handles HTTP requests for stores.
type StoreHandler struct {
	service *services.StoreService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService) *StoreHandler {
	return &StoreHandler{
		service: service,
	}
}

// RegisterRoutes registers the store routes with the Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	storeRoutes := router.Group("/stores")
	storeRoutes.Post("/", h.HandleCreateStore)
	storeRoutes.Get("/", h.HandleGetStores)
	storeRoutes.Get("/:id", h.HandleGetStoreByID)
	storeRoutes.Put("/:id", h.HandleUpdateStore)
	storeRoutes.Delete("/:id", h.HandleDeleteStore)
}

// HandleCreateStore opens a store for a user.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var in models.CreateStoreInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	store, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(newStoreResponse(store))
}

// HandleGetStores lists all stores.
func (h *StoreHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(newStoreResponses(stores))
}

// HandleGetStoreByID returns a single store.
func (h *StoreHandler) HandleGetStoreByID(c *fiber.Ctx) error {
	id, err := parseID(c, "store")
	if err != nil {
		return err
	}

	store, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(newStoreResponse(store))
}

// HandleUpdateStore renames a store.
func (h *StoreHandler) HandleUpdateStore(c *fiber.Ctx) error {
	id, err := parseID(c, "store")
	if err != nil {
		return err
	}
	var in models.UpdateStoreInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	store, err := h.service.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(newStoreResponse(store))
}

// HandleDeleteStore removes a store.
func (h *StoreHandler) HandleDeleteStore(c *fiber.Ctx) error {
	id, err := parseID(c, "store")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
