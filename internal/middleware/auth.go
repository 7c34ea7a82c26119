package middleware

import (
	"github.com/gofiber/fiber/v2"

	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/session"
)

// RequireAuth rejects requests without an established session.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if session.FromCtx(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		return c.Next()
	}
}
