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

type AddressHandler struct {
	addresses *services.AddressService
}

func NewAddressHandler(addresses *services.AddressService) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

func (h *AddressHandler) List(c *fiber.Ctx) error {
	ident := session.FromCtx(c)
	addrs, err := h.addresses.List(ident.UserID)
	if err != nil {
		slog.Error("address list failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch addresses",
		})
	}
	return c.JSON(addrs)
}

func (h *AddressHandler) Create(c *fiber.Ctx) error {
	ident := session.FromCtx(c)

	var req dto.AddressRequest
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

	addr, err := h.addresses.Create(ident.UserID, &req)
	if err != nil {
		slog.Error("address create failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create address",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(addr)
}

func (h *AddressHandler) Update(c *fiber.Ctx) error {
	ident := session.FromCtx(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid address ID",
		})
	}

	var req dto.AddressRequest
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

	addr, err := h.addresses.Update(uint(id), ident.UserID, &req)
	if err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Address not found",
			})
		}
		slog.Error("address update failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update address",
		})
	}
	return c.JSON(addr)
}

func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	ident := session.FromCtx(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid address ID",
		})
	}

	if err := h.addresses.Delete(uint(id), ident.UserID); err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Address not found",
			})
		}
		slog.Error("address delete failed", "error", err, "user_id", ident.UserID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete address",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Address deleted"})
}
