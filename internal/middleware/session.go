package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"stonevault-backend/internal/session"
)

// LoadSession resolves the session cookie to an identity when present.
// It never rejects a request; the Require* middleware do that.
func LoadSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(session.CookieName)
		if sid != "" {
			ident, err := store.Get(sid)
			if err == nil {
				session.Attach(c, ident)
			} else if !errors.Is(err, session.ErrNotFound) {
				return err
			}
		}
		return c.Next()
	}
}
