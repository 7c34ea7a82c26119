package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/services"
	"stonevault-backend/internal/session"
	"stonevault-backend/internal/validation"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List handles GET /orders, returning the user's own orders without line items.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	ident := session.FromCtx(c)
	orders, err := h.orders.ListByUser(ident.UserID)
	if err != nil {
		slog.Error("order list failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch orders",
		})
	}
	return c.JSON(orders)
}

// Get handles GET /orders/:id. Ownership is enforced in the query, so
// another user's order reads as not-found.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	ident := session.FromCtx(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid order ID",
		})
	}

	order, err := h.orders.GetByID(uint(id), &ident.UserID)
	if err != nil {
		return h.orderError(c, err, "Failed to fetch order")
	}
	return c.JSON(order)
}

// Create handles POST /orders (checkout). The payload carries the cart
// snapshot with client-computed prices; the cart is emptied in the same
// transaction.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	ident := session.FromCtx(c)

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Validation failed", Details: validation.Details(err),
		})
	}

	order, err := h.orders.Create(ident.UserID, &req)
	if err != nil {
		return h.orderError(c, err, "Failed to create order")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// ListAll handles GET /admin/orders, returning every order with the
// purchaser attached.
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	orders, err := h.orders.ListAll()
	if err != nil {
		slog.Error("admin order list failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch orders",
		})
	}
	return c.JSON(orders)
}

// GetAny handles GET /admin/orders/:id without an ownership constraint.
func (h *OrderHandler) GetAny(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid order ID",
		})
	}

	order, err := h.orders.GetByID(uint(id), nil)
	if err != nil {
		return h.orderError(c, err, "Failed to fetch order")
	}
	return c.JSON(order)
}

// UpdateStatus handles PUT /admin/orders/:id.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid order ID",
		})
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Validation failed", Details: validation.Details(err),
		})
	}

	order, err := h.orders.UpdateStatus(uint(id), req.Status)
	if err != nil {
		return h.orderError(c, err, "Failed to update order")
	}
	return c.JSON(order)
}

func (h *OrderHandler) orderError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Order not found",
		})
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrIllegalTransition),
		errors.Is(err, services.ErrNegativeAmount),
		errors.Is(err, services.ErrInconsistentTotals):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		slog.Error("order operation failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: fallback,
		})
	}
}
