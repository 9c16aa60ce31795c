package controllers

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetInvoices(c *fiber.Ctx) error {
	invoices, err := h.store.ListInvoices(c.UserContext())
	if err != nil {
		return h.dbError(c, "Invoices fetch error", err)
	}
	return c.JSON(invoices)
}
