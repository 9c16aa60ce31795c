package models

const (
	SaleStatusPending   = "Pending"
	SaleStatusCompleted = "Completed"
	SaleStatusRefunded  = "Refunded"
)

// Sale is a row of the sales table.
type Sale struct {
	ID         int64   `db:"id" json:"id"`
	ProductID  int64   `db:"product_id" json:"product_id"`
	CustomerID int64   `db:"customer_id" json:"customer_id"`
	Quantity   int     `db:"quantity" json:"quantity"`
	Total      float64 `db:"total" json:"total"`
	SaleDate   string  `db:"sale_date" json:"sale_date"`
	Status     *string `db:"status" json:"status"`
}

// StatusOrDefault returns the stored status, Pending when the column is empty.
func (s Sale) StatusOrDefault() string {
	if s.Status == nil || *s.Status == "" {
		return SaleStatusPending
	}
	return *s.Status
}
