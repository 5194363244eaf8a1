package handlers

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Samvel1-1/Electronics/internal/domain"
	"github.com/Samvel1-1/Electronics/internal/service"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
	uploadsDir     string
}

func NewCatalogHandler(catalogService *service.CatalogService, uploadsDir string) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		uploadsDir:     uploadsDir,
	}
}

// GetProducts handles GET /products as a bare array.
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		return failError(c, err)
	}
	return c.JSON(products)
}

// CreateProduct handles POST /products. The body is multipart: name, price,
// category and either an uploaded image file or an img field with a URL.
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	p := domain.Product{
		Name:     c.FormValue("name"),
		Price:    c.FormValue("price"),
		Img:      c.FormValue("img"),
		Category: c.FormValue("category"),
	}

	if file, err := c.FormFile("image"); err == nil {
		name := filepath.Base(file.Filename)
		if !validImageName(name) {
			return fail(c, fiber.StatusBadRequest, "only jpg/png images are allowed")
		}
		stored := uuid.New().String() + "_" + name
		if err := c.SaveFile(file, filepath.Join(h.uploadsDir, stored)); err != nil {
			return fail(c, fiber.StatusInternalServerError, "cannot save image")
		}
		p.Img = "/uploads/" + stored
	}

	created, err := h.catalogService.CreateProduct(p)
	if err != nil {
		return failError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "product": created})
}

// UpdateProduct handles PUT /products/:index, addressed by array position.
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid product index")
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := h.catalogService.UpdateProduct(index, domain.Product{
		Name:     req.Name,
		Price:    req.Price,
		Img:      req.Img,
		Category: req.Category,
	})
	if err != nil {
		return failError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "product": updated})
}

// DeleteProduct handles DELETE /products/:index.
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid product index")
	}

	deleted, err := h.catalogService.DeleteProduct(index)
	if err != nil {
		return failError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "product": deleted})
}

// DeleteProductsBulk handles DELETE /products/bulk.
func (h *CatalogHandler) DeleteProductsBulk(c *fiber.Ctx) error {
	var req bulkIndicesRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.catalogService.DeleteProducts(req.Indices); err != nil {
		return failError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetCategories handles GET /categories; an unreadable collection yields the
// fixed default set rather than an error.
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.catalogService.ListCategories())
}

// CreateCategory handles POST /categories.
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	created, err := h.catalogService.CreateCategory(domain.Category{Name: req.Name, Icon: req.Icon})
	if err != nil {
		return failError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "category": created})
}

// UpdateCategory handles PUT /categories/:name (rename and/or re-icon).
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.catalogService.UpdateCategory(c.Params("name"), req.Name, req.Icon); err != nil {
		return failError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteCategory handles DELETE /categories/:name.
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteCategory(c.Params("name")); err != nil {
		return failError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteCategoriesBulk handles DELETE /categories/bulk.
func (h *CatalogHandler) DeleteCategoriesBulk(c *fiber.Ctx) error {
	var req bulkNamesRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.catalogService.DeleteCategories(req.Names); err != nil {
		return failError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func validImageName(name string) bool {
	n := strings.ToLower(name)
	return strings.HasSuffix(n, ".jpg") || strings.HasSuffix(n, ".jpeg") || strings.HasSuffix(n, ".png")
}
