package models

// InventoryItem is a row of the inventory table.
type InventoryItem struct {
	ID             int64   `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	Category       *string `db:"category" json:"category"`
	Quantity       int     `db:"quantity" json:"quantity"`
	Price          float64 `db:"price" json:"price"`
	ExpirationDate *string `db:"expiration_date" json:"expiration_date"`
}

// NewInventoryItem is the body accepted by POST /api/inventory.
// Fields are pointers so that absent values reach the database as NULL
// and the schema, not the handler, decides what is acceptable.
type NewInventoryItem struct {
	Name           *string  `json:"name"`
	Category       *string  `json:"category"`
	Quantity       *int     `json:"quantity"`
	Price          *float64 `json:"price"`
	ExpirationDate *string  `json:"expiration_date"`
}
