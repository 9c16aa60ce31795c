package dashboard

import (
	"sort"
	"strings"
	"time"

	"shopmonitor/models"
)

const recentSalesLimit = 5

// UnknownName stands in for a product or customer id with no matching row.
const UnknownName = "Unknown"

type RecentSale struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
	Amount      string  `json:"amount"`
	SaleDate    string  `json:"sale_date"`
}

// Summary holds the figures of the dashboard section.
type Summary struct {
	TotalSales     string                 `json:"total_sales"`
	TotalInventory int                    `json:"total_inventory"`
	TotalCustomers int                    `json:"total_customers"`
	LowStock       []models.InventoryItem `json:"low_stock"`
	RecentSales    []RecentSale           `json:"recent_sales"`
}

// ShowStockAlert reports whether at least one item is low on stock.
func (s Summary) ShowStockAlert() bool {
	return len(s.LowStock) > 0
}

// StockAlert is the alert text, empty when nothing is low on stock.
func (s Summary) StockAlert() string {
	if !s.ShowStockAlert() {
		return ""
	}
	names := make([]string, len(s.LowStock))
	for i, item := range s.LowStock {
		names[i] = item.Name
	}
	return "Low Stock Alert! " + strings.Join(names, ", ")
}

func BuildSummary(sales []models.Sale, inventory []models.InventoryItem, customers []models.Customer) Summary {
	units := 0
	for _, item := range inventory {
		units += item.Quantity
	}

	return Summary{
		TotalSales:     sumTotals(sales).StringFixed(2),
		TotalInventory: units,
		TotalCustomers: len(customers),
		LowStock:       LowStockItems(inventory),
		RecentSales:    RecentSales(sales, inventory, recentSalesLimit),
	}
}

// LowStockItems returns the items with 0 < quantity < 5, in input order.
func LowStockItems(inventory []models.InventoryItem) []models.InventoryItem {
	low := []models.InventoryItem{}
	for _, item := range inventory {
		if IsLowStock(item.Quantity) {
			low = append(low, item)
		}
	}
	return low
}

// RecentSales returns the n most recent sales by sale_date, newest first.
// Sales whose date cannot be parsed sort after all dated ones. The input
// slice is not reordered.
func RecentSales(sales []models.Sale, inventory []models.InventoryItem, n int) []RecentSale {
	type dated struct {
		sale models.Sale
		at   time.Time
		ok   bool
	}
	sorted := make([]dated, len(sales))
	for i, s := range sales {
		at, ok := parseSaleDate(s.SaleDate)
		sorted[i] = dated{sale: s, at: at, ok: ok}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.at.After(b.at)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	names := productNames(inventory)
	recent := make([]RecentSale, len(sorted))
	for i, d := range sorted {
		name, ok := names[d.sale.ProductID]
		if !ok {
			name = UnknownName
		}
		recent[i] = RecentSale{
			ProductName: name,
			Quantity:    d.sale.Quantity,
			Total:       d.sale.Total,
			Amount:      Dollars(d.sale.Total),
			SaleDate:    d.sale.SaleDate,
		}
	}
	return recent
}

var saleDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseSaleDate(value string) (time.Time, bool) {
	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// productNames maps id to name. The first row wins on duplicate ids.
func productNames(inventory []models.InventoryItem) map[int64]string {
	names := make(map[int64]string, len(inventory))
	for _, item := range inventory {
		if _, seen := names[item.ID]; !seen {
			names[item.ID] = item.Name
		}
	}
	return names
}
