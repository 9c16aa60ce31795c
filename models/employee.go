package models

type Employee struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Role        string  `db:"role" json:"role"`
	Performance *string `db:"performance" json:"performance"`
}
