package handlers

import (
	"github.com/gofiber/fiber/v2"

	"familiar/internal/domain"
	applog "familiar/internal/log"
	"familiar/internal/services"
	"familiar/internal/validate"
)

type PetHandler struct {
	Pets *services.PetService
}

func (h *PetHandler) Get(c *fiber.Ctx) error {
	pet, err := h.Pets.Get(principal(c))
	if err != nil {
		return fail(c, "pet.get", err)
	}
	return c.JSON(fiber.Map{"pet": pet})
}

func (h *PetHandler) Adopt(c *fiber.Ctx) error {
	var req struct {
		Name      string `json:"name"`
		SpeciesID string `json:"speciesId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Pet name and species ID are required"})
	}
	name, ok := validate.PetName(req.Name)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Pet name must be 1-20 characters"})
	}
	speciesID, ok := validate.ID(req.SpeciesID)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "speciesId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Pet name and species ID are required"})
	}

	pet, err := h.Pets.Adopt(principal(c), name, speciesID)
	if err != nil {
		return fail(c, "pet.adopt", err)
	}
	applog.Audit(c, "pet.adopt", map[string]any{"pet_id": pet.ID, "species_id": speciesID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"pet": pet})
}

func (h *PetHandler) Feed(c *fiber.Ctx) error     { return h.care(c, domain.ActionFeed) }
func (h *PetHandler) Maintain(c *fiber.Ctx) error { return h.care(c, domain.ActionMaintain) }
func (h *PetHandler) Play(c *fiber.Ctx) error     { return h.care(c, domain.ActionPlay) }

func (h *PetHandler) care(c *fiber.Ctx, action string) error {
	res, err := h.Pets.Care(principal(c), action)
	if err != nil {
		return fail(c, "pet.care."+action, err)
	}
	applog.Info(c, "pet.care."+action, map[string]any{"stat": res.Stat, "value": res.Value})
	return c.JSON(res)
}

func (h *PetHandler) Species(c *fiber.Ctx) error {
	species, err := h.Pets.ListSpecies()
	if err != nil {
		return fail(c, "species.list", err)
	}
	return c.JSON(fiber.Map{"species": species})
}
