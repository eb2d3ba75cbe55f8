package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"familiar/internal/domain"
	applog "familiar/internal/log"
)

// fail maps business errors to status codes; anything unrecognized is a
// store failure and surfaces as a 500 without leaking internals.
func fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoPet):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No pet found. Please adopt one first."})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	case errors.Is(err, domain.ErrEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found in inventory"})
	case errors.Is(err, domain.ErrAlreadyHasPet):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already have a pet"})
	case errors.Is(err, domain.ErrInvalidSpecies):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid species ID"})
	case errors.Is(err, domain.ErrInsufficientGears):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": "Insufficient gears"})
	case errors.Is(err, domain.ErrUserExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username or email already exists"})
	case errors.Is(err, domain.ErrBadCreds):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
