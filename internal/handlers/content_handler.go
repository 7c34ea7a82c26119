package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/services"
	"stonevault-backend/internal/validation"
)

type ContentHandler struct {
	content *services.ContentService
}

func NewContentHandler(content *services.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) FAQs(c *fiber.Ctx) error {
	faqs, err := h.content.FAQs()
	if err != nil {
		slog.Error("faq list failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch FAQs",
		})
	}
	return c.JSON(faqs)
}

func (h *ContentHandler) ContentBlocks(c *fiber.Ctx) error {
	blocks, err := h.content.ContentBlocks()
	if err != nil {
		slog.Error("content block list failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch content",
		})
	}
	return c.JSON(blocks)
}

func (h *ContentHandler) Contact(c *fiber.Ctx) error {
	var req dto.ContactRequest
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

	if _, err := h.content.SaveContactMessage(&req); err != nil {
		slog.Error("contact message save failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to send message",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Message sent successfully"})
}
