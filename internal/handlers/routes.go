package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires the HTTP surface. Bulk routes are registered ahead of
// their :param twins so "bulk" is not taken for an index or a name.
func RegisterRoutes(app *fiber.App, orderHandler *OrderHandler, catalogHandler *CatalogHandler) {
	app.Get("/products", catalogHandler.GetProducts)
	app.Post("/products", catalogHandler.CreateProduct)
	app.Delete("/products/bulk", catalogHandler.DeleteProductsBulk)
	app.Put("/products/:index", catalogHandler.UpdateProduct)
	app.Delete("/products/:index", catalogHandler.DeleteProduct)

	app.Get("/categories", catalogHandler.GetCategories)
	app.Post("/categories", catalogHandler.CreateCategory)
	app.Delete("/categories/bulk", catalogHandler.DeleteCategoriesBulk)
	app.Put("/categories/:name", catalogHandler.UpdateCategory)
	app.Delete("/categories/:name", catalogHandler.DeleteCategory)

	app.Post("/purchase", orderHandler.Purchase)
	app.Get("/orders", orderHandler.GetOrders)
	app.Post("/cancel-order", orderHandler.CancelOrder)

	app.Get("/admin/orders", orderHandler.GetAllOrders)
	app.Post("/admin/cancel-order", orderHandler.AdminCancelOrder)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})
}
