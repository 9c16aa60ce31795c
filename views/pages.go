package views

import (
	"shopmonitor/dashboard"
	"shopmonitor/models"
)

// Page is the data every page template receives.
type Page struct {
	AppName string
	Section string
	Title   string
	Nav     []dashboard.NavLink
	Content any
}

func NewPage(appName, section string, content any) Page {
	nav, _ := dashboard.Nav(section)
	title := section
	for _, link := range nav {
		if link.Active {
			title = link.Title
		}
	}
	return Page{AppName: appName, Section: section, Title: title, Nav: nav, Content: content}
}

type InventoryPage struct {
	Rows       []dashboard.InventoryRow
	Search     string
	Category   string
	Categories []string
	Form       dashboard.ProductForm
	Errors     map[string]string
	ShowForm   bool
}

type SalesPage struct {
	Report dashboard.SalesReport
	Search string
}

type AnalyticsPage struct {
	Width  float64
	Height float64
	Bars   []dashboard.Bar
}

type CustomersPage struct {
	Customers []models.Customer
}

type EmployeesPage struct {
	Employees []models.Employee
}

type InvoicesPage struct {
	Invoices []models.Invoice
}
