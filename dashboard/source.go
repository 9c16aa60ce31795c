// Package dashboard computes the figures shown by the shop dashboard from
// already loaded rows: totals, low stock alerts, filtered tables, sales
// metrics, the CSV export and the sales trend series.
//
// Every Load function fetches the tables it needs from a Source and
// recomputes from scratch. Nothing is cached between calls.
package dashboard

import (
	"context"

	"shopmonitor/models"
)

// Source provides the full contents of each table. condb.Store reads the
// database directly; apiclient.Client reads the REST API.
type Source interface {
	ListInventory(ctx context.Context) ([]models.InventoryItem, error)
	ListSales(ctx context.Context) ([]models.Sale, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
}

// LoadSummary fetches sales, inventory and customers and builds the
// dashboard summary.
func LoadSummary(ctx context.Context, src Source) (Summary, error) {
	sales, err := src.ListSales(ctx)
	if err != nil {
		return Summary{}, err
	}
	inventory, err := src.ListInventory(ctx)
	if err != nil {
		return Summary{}, err
	}
	customers, err := src.ListCustomers(ctx)
	if err != nil {
		return Summary{}, err
	}
	return BuildSummary(sales, inventory, customers), nil
}

// LoadInventory fetches inventory and applies the search and category filters.
func LoadInventory(ctx context.Context, src Source, search, category string) ([]InventoryRow, error) {
	items, err := src.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	return FilterInventory(items, search, category), nil
}

// LoadSales fetches sales and customers and builds the filtered sales report.
func LoadSales(ctx context.Context, src Source, search string) (SalesReport, error) {
	sales, err := src.ListSales(ctx)
	if err != nil {
		return SalesReport{}, err
	}
	customers, err := src.ListCustomers(ctx)
	if err != nil {
		return SalesReport{}, err
	}
	return BuildSalesReport(sales, customers, search), nil
}

// LoadTrend fetches sales and returns the chart series in database order.
func LoadTrend(ctx context.Context, src Source) (Trend, error) {
	sales, err := src.ListSales(ctx)
	if err != nil {
		return Trend{}, err
	}
	return SalesTrend(sales), nil
}
