package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"stonevault-backend/internal/config"
	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/models"
	"stonevault-backend/internal/services"
	"stonevault-backend/internal/session"
	"stonevault-backend/internal/validation"
)

type AuthHandler struct {
	authService *services.AuthService
	store       *session.Store
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, store *session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, store: store, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
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

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("registration failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Registration failed",
		})
	}

	if err := h.openSession(c, user); err != nil {
		slog.Error("session creation failed", "error", err, "user_id", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Registration failed",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(userResponse(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
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

	user, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Login failed",
		})
	}

	if err := h.openSession(c, user); err != nil {
		slog.Error("session creation failed", "error", err, "user_id", user.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Login failed",
		})
	}
	return c.JSON(userResponse(user))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies(session.CookieName); sid != "" {
		if err := h.store.Destroy(sid); err != nil {
			slog.Error("session destroy failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Logout failed",
			})
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}

// Me returns the session identity, or 401 when no session exists.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ident := session.FromCtx(c)
	if ident == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authenticated",
		})
	}
	return c.JSON(dto.UserResponse{
		ID:    ident.UserID,
		Email: ident.Email,
		Name:  ident.Name,
		Role:  ident.Role,
	})
}

func (h *AuthHandler) openSession(c *fiber.Ctx, user *models.User) error {
	sid, err := h.store.Create(&session.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	})
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sid,
		Expires:  time.Now().Add(h.store.TTL()),
		HTTPOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: "Lax",
		Path:     "/",
	})
	return nil
}

func userResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}
