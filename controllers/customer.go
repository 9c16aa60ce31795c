package controllers

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.store.ListCustomers(c.UserContext())
	if err != nil {
		return h.dbError(c, "Customers fetch error", err)
	}
	return c.JSON(customers)
}
