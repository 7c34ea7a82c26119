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

type CartHandler struct {
	cart *services.CartService
}

func NewCartHandler(cart *services.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	ident := session.FromCtx(c)
	items, err := h.cart.Get(ident.UserID)
	if err != nil {
		slog.Error("cart fetch failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch cart",
		})
	}
	return c.JSON(items)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	ident := session.FromCtx(c)

	var req dto.AddCartItemRequest
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

	item, err := h.cart.Add(ident.UserID, req.StoneID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrStoneNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Stone not found",
			})
		}
		slog.Error("cart add failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to add to cart",
		})
	}
	return c.JSON(item)
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	ident := session.FromCtx(c)

	stoneID, err := c.ParamsInt("stoneId")
	if err != nil || stoneID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid stone ID",
		})
	}

	var req dto.UpdateCartItemRequest
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

	item, err := h.cart.Update(ident.UserID, uint(stoneID), req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Cart item not found",
			})
		}
		slog.Error("cart update failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update cart",
		})
	}
	return c.JSON(item)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	ident := session.FromCtx(c)

	stoneID, err := c.ParamsInt("stoneId")
	if err != nil || stoneID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid stone ID",
		})
	}

	if err := h.cart.Remove(ident.UserID, uint(stoneID)); err != nil {
		slog.Error("cart remove failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove from cart",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Removed from cart"})
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	ident := session.FromCtx(c)
	if err := h.cart.Clear(ident.UserID); err != nil {
		slog.Error("cart clear failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to clear cart",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Cart cleared"})
}
