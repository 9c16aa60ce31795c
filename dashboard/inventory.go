package dashboard

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shopmonitor/models"
)

const (
	StatusOutOfStock = "Out of Stock"
	StatusLowStock   = "Low Stock"
	StatusInStock    = "In Stock"

	lowStockThreshold = 5
)

// IsLowStock reports 0 < quantity < 5.
func IsLowStock(quantity int) bool {
	return quantity > 0 && quantity < lowStockThreshold
}

// StockStatus labels a quantity: Out of Stock at 0, Low Stock below 5,
// otherwise In Stock.
func StockStatus(quantity int) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case IsLowStock(quantity):
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// StockStatusClass is the CSS class used to colour the label.
func StockStatusClass(quantity int) string {
	switch StockStatus(quantity) {
	case StatusOutOfStock:
		return "status-out-of-stock"
	case StatusLowStock:
		return "status-low-stock"
	default:
		return "status-in-stock"
	}
}

// InventoryRow is an inventory item with its stock label.
type InventoryRow struct {
	models.InventoryItem
	Status      string `json:"status"`
	StatusClass string `json:"-"`
}

// FilterInventory keeps items whose name contains search and whose category
// equals category, both case-insensitively. An empty filter matches all.
func FilterInventory(items []models.InventoryItem, search, category string) []InventoryRow {
	lower := cases.Lower(language.Und)
	search = lower.String(search)
	category = lower.String(category)

	rows := []InventoryRow{}
	for _, item := range items {
		if !strings.Contains(lower.String(item.Name), search) {
			continue
		}
		if category != "" {
			itemCategory := ""
			if item.Category != nil {
				itemCategory = *item.Category
			}
			if lower.String(itemCategory) != category {
				continue
			}
		}
		rows = append(rows, InventoryRow{
			InventoryItem: item,
			Status:        StockStatus(item.Quantity),
			StatusClass:   StockStatusClass(item.Quantity),
		})
	}
	return rows
}

// Categories returns the distinct non-empty categories in first-seen order.
func Categories(items []models.InventoryItem) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, item := range items {
		if item.Category == nil || *item.Category == "" || seen[*item.Category] {
			continue
		}
		seen[*item.Category] = true
		out = append(out, *item.Category)
	}
	return out
}
