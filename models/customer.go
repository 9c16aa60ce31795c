package models

type Customer struct {
	ID              int64   `db:"id" json:"id"`
	Name            string  `db:"name" json:"name"`
	Email           *string `db:"email" json:"email"`
	Phone           *string `db:"phone" json:"phone"`
	PurchaseHistory *string `db:"purchase_history" json:"purchase_history"`
}
