package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shopmonitor/models"
)

// OrderID renders a sale id as ORD- followed by at least three digits.
// A negative id keeps its sign after the prefix.
func OrderID(id int64) string {
	if id < 0 {
		return fmt.Sprintf("ORD--%03d", -id)
	}
	return fmt.Sprintf("ORD-%03d", id)
}

// SaleStatusClass is the CSS class used to colour a sale status.
func SaleStatusClass(status string) string {
	switch status {
	case models.SaleStatusCompleted:
		return "status-completed"
	case models.SaleStatusRefunded:
		return "status-refunded"
	default:
		return "status-pending"
	}
}

// SaleRow is a sale joined with its customer, as listed on the sales page.
type SaleRow struct {
	ID          int64   `json:"id"`
	OrderID     string  `json:"order_id"`
	Customer    string  `json:"customer"`
	SaleDate    string  `json:"sale_date"`
	Total       float64 `json:"total"`
	Amount      string  `json:"amount"`
	Items       int     `json:"items"`
	Status      string  `json:"status"`
	StatusClass string  `json:"-"`
}

type SalesMetrics struct {
	TotalSales     string `json:"total_sales"`
	TotalOrders    int    `json:"total_orders"`
	AverageOrder   string `json:"average_order"`
	CompletionRate string `json:"completion_rate"`
}

type SalesReport struct {
	Metrics SalesMetrics `json:"metrics"`
	Sales   []SaleRow    `json:"sales"`
}

// BuildSalesReport filters sales by search and computes the metrics over
// the filtered set.
func BuildSalesReport(sales []models.Sale, customers []models.Customer, search string) SalesReport {
	filtered := FilterSales(sales, customers, search)
	return SalesReport{
		Metrics: ComputeSalesMetrics(filtered),
		Sales:   JoinSales(filtered, customers),
	}
}

// FilterSales keeps sales whose customer name or order id contains search,
// case-insensitively. Sales with no matching customer are named Unknown.
func FilterSales(sales []models.Sale, customers []models.Customer, search string) []models.Sale {
	lower := cases.Lower(language.Und)
	search = lower.String(search)
	names := customerNames(customers)

	filtered := []models.Sale{}
	for _, s := range sales {
		if strings.Contains(lower.String(customerName(names, s.CustomerID)), search) ||
			strings.Contains(lower.String(OrderID(s.ID)), search) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// ComputeSalesMetrics returns the total, order count, average order and the
// rounded percentage of Completed sales. Empty input gives 0.00 and 0.
func ComputeSalesMetrics(sales []models.Sale) SalesMetrics {
	total := sumTotals(sales).Round(2)
	orders := len(sales)

	m := SalesMetrics{
		TotalSales:     total.StringFixed(2),
		TotalOrders:    orders,
		AverageOrder:   "0.00",
		CompletionRate: "0",
	}
	if orders == 0 {
		return m
	}

	completed := 0
	for _, s := range sales {
		if s.Status != nil && *s.Status == models.SaleStatusCompleted {
			completed++
		}
	}
	m.AverageOrder = total.Div(decimal.NewFromInt(int64(orders))).StringFixed(2)
	m.CompletionRate = strconv.Itoa(int(math.Round(float64(completed) / float64(orders) * 100)))
	return m
}

// JoinSales attaches customer names and display labels to each sale.
func JoinSales(sales []models.Sale, customers []models.Customer) []SaleRow {
	names := customerNames(customers)
	rows := make([]SaleRow, len(sales))
	for i, s := range sales {
		status := s.StatusOrDefault()
		rows[i] = SaleRow{
			ID:          s.ID,
			OrderID:     OrderID(s.ID),
			Customer:    customerName(names, s.CustomerID),
			SaleDate:    s.SaleDate,
			Total:       s.Total,
			Amount:      Dollars(s.Total),
			Items:       s.Quantity,
			Status:      status,
			StatusClass: SaleStatusClass(status),
		}
	}
	return rows
}

func customerNames(customers []models.Customer) map[int64]string {
	names := make(map[int64]string, len(customers))
	for _, c := range customers {
		if _, seen := names[c.ID]; !seen {
			names[c.ID] = c.Name
		}
	}
	return names
}

func customerName(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return UnknownName
}
