package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopmonitor/dashboard"
	"shopmonitor/models"
)

func loadedEngine(t *testing.T) *Engine {
	t.Helper()
	e := New()
	require.NoError(t, e.Load())
	return e
}

func render(t *testing.T, e *Engine, section string, content any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, e.Render(&buf, section, NewPage("Shop Monitor", section, content)))
	return buf.String()
}

func TestEngine_LoadsEverySection(t *testing.T) {
	e := loadedEngine(t)
	for _, s := range dashboard.Sections {
		assert.True(t, e.Has(s.ID), "missing page %s", s.ID)
	}
	assert.False(t, e.Has("layout"))
}

func TestEngine_UnknownPage(t *testing.T) {
	e := loadedEngine(t)
	err := e.Render(&bytes.Buffer{}, "reports", nil)
	assert.Error(t, err)
}

func TestRender_DashboardMarksOneActiveLink(t *testing.T) {
	e := loadedEngine(t)
	summary := dashboard.BuildSummary(nil, []models.InventoryItem{{ID: 1, Name: "Milk", Quantity: 2}}, nil)

	html := render(t, e, "dashboard", summary)

	assert.Equal(t, 1, strings.Count(html, "nav-link active"))
	assert.Contains(t, html, `href="/dashboard/dashboard" class="nav-link active"`)
	assert.Contains(t, html, "Low Stock Alert! Milk")
	assert.Contains(t, html, "$0.00")
}

func TestRender_DashboardHidesAlert(t *testing.T) {
	e := loadedEngine(t)
	html := render(t, e, "dashboard", dashboard.BuildSummary(nil, nil, nil))
	assert.NotContains(t, html, "stock-alert")
}

func TestRender_InventoryFallbacks(t *testing.T) {
	e := loadedEngine(t)
	rows := dashboard.FilterInventory([]models.InventoryItem{{ID: 1, Name: "Bread", Quantity: 0, Price: 2.5}}, "", "")

	html := render(t, e, "inventory", InventoryPage{Rows: rows})

	assert.Contains(t, html, "N/A")
	assert.Contains(t, html, "$2.50")
	assert.Contains(t, html, `<span class="status-out-of-stock">Out of Stock</span>`)
	assert.NotContains(t, html, "add-product-modal")
}

func TestRender_InventoryFormErrors(t *testing.T) {
	e := loadedEngine(t)
	html := render(t, e, "inventory", InventoryPage{
		ShowForm: true,
		Form:     dashboard.ProductForm{Name: "Tea"},
		Errors:   map[string]string{"price": "price is required"},
	})

	assert.Contains(t, html, "add-product-modal")
	assert.Contains(t, html, "price is required")
	assert.Contains(t, html, `value="Tea"`)
}

func TestRender_SalesEscapesCustomerNames(t *testing.T) {
	e := loadedEngine(t)
	report := dashboard.BuildSalesReport(
		[]models.Sale{{ID: 3, CustomerID: 1, Total: 4, SaleDate: "2024-01-01"}},
		[]models.Customer{{ID: 1, Name: "<b>Eve</b>"}},
		"",
	)

	html := render(t, e, "sales", SalesPage{Report: report})

	assert.Contains(t, html, "ORD-003")
	assert.Contains(t, html, "&lt;b&gt;Eve&lt;/b&gt;")
	assert.Contains(t, html, "status-pending")
	assert.Contains(t, html, "0%")
}

func TestRender_Invoices(t *testing.T) {
	e := loadedEngine(t)
	d := 2.5
	html := render(t, e, "invoices", InvoicesPage{Invoices: []models.Invoice{
		{ID: 1, CustomerID: 4, Total: 10, Discount: &d, InvoiceDate: "2024-01-02"},
		{ID: 2, CustomerID: 5, Total: 3, InvoiceDate: "2024-01-03"},
	}})

	assert.Contains(t, html, "$2.5<")
	assert.Contains(t, html, "$0<")
	assert.Contains(t, html, "$10.00")
}

func TestRender_AnalyticsChart(t *testing.T) {
	e := loadedEngine(t)
	trend := dashboard.SalesTrend([]models.Sale{{ID: 1, Total: 10, SaleDate: "2024-01-01"}})

	html := render(t, e, "analytics", AnalyticsPage{Width: 600, Height: 300, Bars: trend.Bars(600, 300)})
	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, "2024-01-01: $10.00")

	html = render(t, e, "analytics", AnalyticsPage{Width: 600, Height: 300})
	assert.Contains(t, html, "No sales recorded yet.")
}
