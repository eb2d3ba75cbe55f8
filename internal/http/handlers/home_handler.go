package handlers

import (
	"github.com/gofiber/fiber/v2"

	"familiar/internal/services"
)

type HomeHandler struct {
	Pets *services.PetService
	Shop *services.ShopService
}

// Home renders the landing page with the adoptable species and shop catalog.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	species, err := h.Pets.ListSpecies()
	if err != nil {
		return fail(c, "home.species", err)
	}
	items, err := h.Shop.Items()
	if err != nil {
		return fail(c, "home.items", err)
	}
	return c.Render("home", fiber.Map{"Species": species, "Items": items})
}
