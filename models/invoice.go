package models

type Invoice struct {
	ID          int64    `db:"id" json:"id"`
	CustomerID  int64    `db:"customer_id" json:"customer_id"`
	Total       float64  `db:"total" json:"total"`
	Discount    *float64 `db:"discount" json:"discount"`
	InvoiceDate string   `db:"invoice_date" json:"invoice_date"`
}

// DiscountOrZero returns the discount, 0 when none was recorded.
func (i Invoice) DiscountOrZero() float64 {
	if i.Discount == nil {
		return 0
	}
	return *i.Discount
}
