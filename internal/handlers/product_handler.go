package handlers

import (
	"storeapi/internal/models"
	"storeapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes, including the per-store
// listing, with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)

	router.Get("/stores/:id/products", h.HandleGetStoreProducts)
}

// HandleCreateProduct adds a product to a store.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in models.CreateProductInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	product, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(newProductResponse(product))
}

// HandleGetProducts lists all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(newProductResponses(products))
}

// HandleGetProductByID returns a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c, "product")
	if err != nil {
		return err
	}

	product, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(newProductResponse(product))
}

// HandleGetStoreProducts lists the products of one store. A store id that
// names nothing yields an empty list.
func (h *ProductHandler) HandleGetStoreProducts(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("id")
	if err != nil || storeID <= 0 {
		return c.JSON([]productResponse{})
	}

	products, err := h.service.FindByStore(c.UserContext(), uint(storeID))
	if err != nil {
		return err
	}
	return c.JSON(newProductResponses(products))
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "product")
	if err != nil {
		return err
	}
	var in models.UpdateProductInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	product, err := h.service.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(newProductResponse(product))
}

// HandleDeleteProduct removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "product")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
