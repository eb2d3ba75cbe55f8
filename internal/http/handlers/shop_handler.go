package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "familiar/internal/log"
	"familiar/internal/services"
	"familiar/internal/validate"
)

type ShopHandler struct {
	Shop *services.ShopService
}

func (h *ShopHandler) Items(c *fiber.Ctx) error {
	items, err := h.Shop.Items()
	if err != nil {
		return fail(c, "shop.items", err)
	}
	return c.JSON(fiber.Map{"items": items})
}

func (h *ShopHandler) Purchase(c *fiber.Ctx) error {
	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item ID is required"})
	}
	itemID, ok := validate.ID(req.ItemID)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "itemId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item ID is required"})
	}

	remaining, err := h.Shop.Purchase(principal(c), itemID)
	if err != nil {
		return fail(c, "shop.purchase", err)
	}
	applog.Audit(c, "shop.purchase", map[string]any{"item_id": itemID, "remaining_gears": remaining})
	return c.JSON(fiber.Map{"remainingGears": remaining})
}

func (h *ShopHandler) Inventory(c *fiber.Ctx) error {
	rows, err := h.Shop.Inventory(principal(c))
	if err != nil {
		return fail(c, "inventory.list", err)
	}
	return c.JSON(fiber.Map{"inventory": rows})
}

func (h *ShopHandler) Equip(c *fiber.Ctx) error {
	var req struct {
		InventoryID string `json:"inventoryId"`
		Equipped    *bool  `json:"equipped"`
	}
	if err := c.BodyParser(&req); err != nil || req.Equipped == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Inventory ID and equipped status are required"})
	}
	inventoryID, ok := validate.ID(req.InventoryID)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "inventoryId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Inventory ID and equipped status are required"})
	}

	if err := h.Shop.Equip(principal(c), inventoryID, *req.Equipped); err != nil {
		return fail(c, "inventory.equip", err)
	}
	applog.Audit(c, "inventory.equip", map[string]any{"inventory_id": inventoryID, "equipped": *req.Equipped})
	return c.JSON(fiber.Map{"equipped": *req.Equipped})
}
