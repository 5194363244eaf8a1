package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Samvel1-1/Electronics/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Purchase handles POST /purchase. The order write happens regardless of the
// response; only a failed confirmation email turns the response into an
// error.
func (h *OrderHandler) Purchase(c *fiber.Ctx) error {
	var req purchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	order, err := h.orderService.Purchase(req.Email, req.ProductName, mapCart(req.Cart), req.PriceFormatted)
	if err != nil {
		return failError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Order %s placed, confirmation sent to %s", order.ID, order.Email),
	})
}

// GetOrders handles GET /orders?email= and returns the owner's orders,
// newest first, as a bare array.
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListByOwner(c.Query("email"))
	if err != nil {
		return failError(c, err)
	}
	return c.JSON(orders)
}

// CancelOrder handles POST /cancel-order, the owner-initiated cancellation.
func (h *OrderHandler) CancelOrder(c *fiber.Ctx) error {
	var req cancelRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	order, err := h.orderService.Cancel(req.OrderID, req.Email)
	if err != nil {
		return failError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Order %s cancelled", order.ID),
	})
}

// GetAllOrders handles GET /admin/orders: every order, newest first.
func (h *OrderHandler) GetAllOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListAll()
	if err != nil {
		return failError(c, err)
	}
	return c.JSON(orders)
}

// AdminCancelOrder handles POST /admin/cancel-order: no ownership check.
func (h *OrderHandler) AdminCancelOrder(c *fiber.Ctx) error {
	var req cancelRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	order, err := h.orderService.AdminCancel(req.OrderID)
	if err != nil {
		return failError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Order %s cancelled by administrator", order.ID),
	})
}
