package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shopmonitor/models"
)

func (h *Handler) GetInventory(c *fiber.Ctx) error {
	items, err := h.store.ListInventory(c.UserContext())
	if err != nil {
		return h.dbError(c, "Inventory fetch error", err)
	}
	return c.JSON(items)
}

// AddInventory inserts the posted item as is. Missing fields become NULL
// and the schema constraints decide whether the row is accepted.
func (h *Handler) AddInventory(c *fiber.Ctx) error {
	var in models.NewInventoryItem
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input: " + err.Error(),
		})
	}

	id, err := h.store.CreateInventoryItem(c.UserContext(), in)
	if err != nil {
		return h.dbError(c, "Inventory add error", err)
	}

	h.log.Info("Inventory item added", zap.Int64("id", id))
	return c.JSON(fiber.Map{"id": id})
}
