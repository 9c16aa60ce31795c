package controllers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"shopmonitor/dashboard"
)

func (h *Handler) GetSales(c *fiber.Ctx) error {
	sales, err := h.store.ListSales(c.UserContext())
	if err != nil {
		return h.dbError(c, "Sales fetch error", err)
	}
	return c.JSON(sales)
}

// ExportSales answers the sales CSV as a file download.
func (h *Handler) ExportSales(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := dashboard.ExportSales(c.UserContext(), h.store, &buf); err != nil {
		return h.dbError(c, "Sales export error", err)
	}

	c.Attachment(dashboard.ExportFilename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}
