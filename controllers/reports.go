package controllers

import (
	"github.com/gofiber/fiber/v2"

	"shopmonitor/dashboard"
)

func (h *Handler) DashboardReport(c *fiber.Ctx) error {
	summary, err := dashboard.LoadSummary(c.UserContext(), h.store)
	if err != nil {
		return h.dbError(c, "Dashboard report error", err)
	}
	return c.JSON(fiber.Map{
		"total_sales":     summary.TotalSales,
		"total_inventory": summary.TotalInventory,
		"total_customers": summary.TotalCustomers,
		"low_stock":       summary.LowStock,
		"stock_alert":     summary.StockAlert(),
		"recent_sales":    summary.RecentSales,
	})
}

func (h *Handler) InventoryReport(c *fiber.Ctx) error {
	rows, err := dashboard.LoadInventory(c.UserContext(), h.store, c.Query("search"), c.Query("category"))
	if err != nil {
		return h.dbError(c, "Inventory report error", err)
	}
	return c.JSON(rows)
}

func (h *Handler) SalesReport(c *fiber.Ctx) error {
	report, err := dashboard.LoadSales(c.UserContext(), h.store, c.Query("search"))
	if err != nil {
		return h.dbError(c, "Sales report error", err)
	}
	return c.JSON(report)
}

func (h *Handler) SalesTrendReport(c *fiber.Ctx) error {
	trend, err := dashboard.LoadTrend(c.UserContext(), h.store)
	if err != nil {
		return h.dbError(c, "Sales trend error", err)
	}
	return c.JSON(trend)
}
