package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shopmonitor/dashboard"
	"shopmonitor/views"
)

const (
	chartWidth  = 720
	chartHeight = 320
)

func (h *Handler) DashboardHome(c *fiber.Ctx) error {
	return c.Redirect("/dashboard/dashboard", fiber.StatusFound)
}

// DashboardSection renders one page of the dashboard. Each page fetches
// only the tables it shows.
func (h *Handler) DashboardSection(c *fiber.Ctx) error {
	section := c.Params("section")
	if _, ok := dashboard.Nav(section); !ok {
		return fiber.NewError(fiber.StatusNotFound, "Unknown section: "+section)
	}

	ctx := c.UserContext()
	var content any
	switch section {
	case "dashboard":
		summary, err := dashboard.LoadSummary(ctx, h.store)
		if err != nil {
			return h.dbError(c, "Dashboard fetch error", err)
		}
		content = summary
	case "inventory":
		page, err := h.inventoryPage(c)
		if err != nil {
			return h.dbError(c, "Inventory fetch error", err)
		}
		page.ShowForm = c.Query("add") != ""
		content = page
	case "sales":
		search := c.Query("search")
		report, err := dashboard.LoadSales(ctx, h.store, search)
		if err != nil {
			return h.dbError(c, "Sales fetch error", err)
		}
		content = views.SalesPage{Report: report, Search: search}
	case "customers":
		customers, err := h.store.ListCustomers(ctx)
		if err != nil {
			return h.dbError(c, "Customers fetch error", err)
		}
		content = views.CustomersPage{Customers: customers}
	case "employees":
		employees, err := h.store.ListEmployees(ctx)
		if err != nil {
			return h.dbError(c, "Employees fetch error", err)
		}
		content = views.EmployeesPage{Employees: employees}
	case "invoices":
		invoices, err := h.store.ListInvoices(ctx)
		if err != nil {
			return h.dbError(c, "Invoices fetch error", err)
		}
		content = views.InvoicesPage{Invoices: invoices}
	case "analytics":
		trend, err := dashboard.LoadTrend(ctx, h.store)
		if err != nil {
			return h.dbError(c, "Sales fetch error", err)
		}
		content = views.AnalyticsPage{Width: chartWidth, Height: chartHeight, Bars: trend.Bars(chartWidth, chartHeight)}
	}

	return c.Render(section, views.NewPage(h.appName, section, content))
}

// AddProduct handles the add-product form. Nothing is submitted until
// name, quantity and price are filled in.
func (h *Handler) AddProduct(c *fiber.Ctx) error {
	var form dashboard.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input: " + err.Error()})
	}

	if err := form.Validate(); err != nil {
		return h.renderProductForm(c, form, dashboard.FieldErrors(err))
	}
	item, err := form.Item()
	if err != nil {
		return h.renderProductForm(c, form, map[string]string{"form": err.Error()})
	}

	id, err := h.store.CreateInventoryItem(c.UserContext(), item)
	if err != nil {
		return h.dbError(c, "Inventory add error", err)
	}
	h.log.Info("Inventory item added", zap.Int64("id", id), zap.String("via", "dashboard"))

	return c.Redirect("/dashboard/inventory", fiber.StatusSeeOther)
}

func (h *Handler) renderProductForm(c *fiber.Ctx, form dashboard.ProductForm, errs map[string]string) error {
	page, err := h.inventoryPage(c)
	if err != nil {
		return h.dbError(c, "Inventory fetch error", err)
	}
	page.ShowForm = true
	page.Form = form
	page.Errors = errs

	c.Status(fiber.StatusBadRequest)
	return c.Render("inventory", views.NewPage(h.appName, "inventory", page))
}

func (h *Handler) inventoryPage(c *fiber.Ctx) (views.InventoryPage, error) {
	items, err := h.store.ListInventory(c.UserContext())
	if err != nil {
		return views.InventoryPage{}, err
	}
	search, category := c.Query("search"), c.Query("category")
	return views.InventoryPage{
		Rows:       dashboard.FilterInventory(items, search, category),
		Search:     search,
		Category:   category,
		Categories: dashboard.Categories(items),
	}, nil
}
