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

type WishlistHandler struct {
	wishlist *services.WishlistService
}

func NewWishlistHandler(wishlist *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

func (h *WishlistHandler) Get(c *fiber.Ctx) error {
	ident := session.FromCtx(c)
	items, err := h.wishlist.Get(ident.UserID)
	if err != nil {
		slog.Error("wishlist fetch failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch wishlist",
		})
	}
	return c.JSON(items)
}

func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	ident := session.FromCtx(c)

	var req dto.AddWishlistItemRequest
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

	item, err := h.wishlist.Add(ident.UserID, req.StoneID)
	if err != nil {
		if errors.Is(err, services.ErrStoneNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Stone not found",
			})
		}
		slog.Error("wishlist add failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to add to wishlist",
		})
	}
	return c.JSON(item)
}

func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	ident := session.FromCtx(c)

	stoneID, err := c.ParamsInt("stoneId")
	if err != nil || stoneID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid stone ID",
		})
	}

	if err := h.wishlist.Remove(ident.UserID, uint(stoneID)); err != nil {
		slog.Error("wishlist remove failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove from wishlist",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Removed from wishlist"})
}
