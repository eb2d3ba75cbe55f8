package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "familiar/internal/log"
	"familiar/internal/services"
)

// ResolvePrincipal finds the authenticated user id for a request. Two
// resolution strategies produce the same principal: a bearer token in the
// Authorization header, falling back to the bound 'sid' session cookie.
func ResolvePrincipal(c *fiber.Ctx, auth *services.AuthService) (string, bool) {
	if h := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		raw := strings.TrimPrefix(h, "Bearer ")
		uid, err := auth.VerifyToken(raw)
		if err == nil && uid != "" {
			return uid, true
		}
		applog.Security(c, "auth.token.invalid", nil)
	}
	if sid := c.Cookies("sid"); sid != "" {
		if u, err := auth.CurrentUser(sid); err == nil && u != nil {
			return u.ID, true
		}
	}
	return "", false
}

// RequireUser rejects unauthenticated requests and stores the principal's
// user id in Locals for downstream handlers.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := ResolvePrincipal(c, auth)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
		}
		c.Locals("userID", uid)
		return c.Next()
	}
}

func principal(c *fiber.Ctx) string {
	uid, _ := c.Locals("userID").(string)
	return uid
}
