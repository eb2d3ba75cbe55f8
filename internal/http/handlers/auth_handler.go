package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "familiar/internal/log"
	"familiar/internal/services"
	"familiar/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // set true behind HTTPS
		})
	}
	return sid
}

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username, email, and password are required"})
	}
	username, ok := validate.Username(req.Username)
	if !ok {
		applog.Security(c, "auth.register.fail", map[string]any{"reason": "bad_username"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username must be 3-20 letters, digits or underscores"})
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		applog.Security(c, "auth.register.fail", map[string]any{"reason": "bad_email"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email"})
	}
	if !validate.Password(req.Password) {
		applog.Security(c, "auth.register.fail", map[string]any{"reason": "bad_password"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password must be 8-64 characters"})
	}

	sid := ensureSID(c)
	u, tok, err := h.Auth.Register(sid, username, email, req.Password)
	if err != nil {
		return fail(c, "auth.register", err)
	}
	applog.Audit(c, "auth.register", map[string]any{"username": username})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": tok, "user": u})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username and password are required"})
	}
	username, ok := validate.Username(req.Username)
	if !ok || !validate.Password(req.Password) {
		applog.Security(c, "auth.login.fail", map[string]any{"username": req.Username, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	sid := ensureSID(c)
	u, tok, err := h.Auth.Login(sid, username, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"username": username})
		return fail(c, "auth.login", err)
	}
	applog.Audit(c, "auth.login.success", map[string]any{"username": username})
	return c.JSON(fiber.Map{"token": tok, "user": u})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"ok": true})
}

// Me returns the authenticated user's profile and gears balance.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, err := h.Auth.UserByID(principal(c))
	if err != nil {
		return fail(c, "user.me", err)
	}
	return c.JSON(fiber.Map{"user": u})
}
