package middleware

import (
	"github.com/gofiber/fiber/v2"

	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/session"
)

// RequireAdmin rejects requests whose session identity is not an admin.
// Anonymous requests get 401, authenticated non-admins 403.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident := session.FromCtx(c)
		if ident == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if !ident.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
