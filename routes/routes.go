package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopmonitor/controllers"
	"shopmonitor/middleware"
	"shopmonitor/utils"
)

// Options controls the optional parts of the route table.
type Options struct {
	// RequireToken guards the dashboard pages and every /api route except
	// login with the JWT middleware.
	RequireToken bool
	Tokens       *utils.TokenIssuer
	Metrics      *middleware.Metrics
	MetricsPath  string
}

func RegisterRoutes(app *fiber.App, h *controllers.Handler, opts Options) {
	app.Get("/healthz", h.Healthz)
	if opts.Metrics != nil {
		app.Get(opts.MetricsPath, opts.Metrics.Endpoint())
	}

	api := app.Group("/api")
	if opts.RequireToken {
		api.Use(middleware.JWTMiddleware(opts.Tokens, "/api/login"))
	}

	// Login
	api.Post("/login", h.Login)

	//inventory
	api.Get("/inventory", h.GetInventory)
	api.Post("/inventory", h.AddInventory)

	//sales
	api.Get("/sales", h.GetSales)
	api.Get("/sales/export", h.ExportSales)

	api.Get("/customers", h.GetCustomers)
	api.Get("/employees", h.GetEmployees)
	api.Get("/invoices", h.GetInvoices)

	//reports
	reports := api.Group("/reports")
	reports.Get("/dashboard", h.DashboardReport)
	reports.Get("/inventory", h.InventoryReport)
	reports.Get("/sales", h.SalesReport)
	reports.Get("/sales-trend", h.SalesTrendReport)

	// dashboard pages
	app.Get("/", h.DashboardHome)
	dash := app.Group("/dashboard")
	if opts.RequireToken {
		dash.Use(middleware.JWTMiddleware(opts.Tokens))
	}
	dash.Get("/", h.DashboardHome)
	dash.Get("/:section", h.DashboardSection)
	dash.Post("/inventory", h.AddProduct)
}
