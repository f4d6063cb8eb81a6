package models

// Sale is a derived row joining a product with one of its sales.
// Total is never persisted nor computed; it stays nil.
type Sale struct {
	ProductName string   `db:"product_name" json:"product_name"`
	Price       *float64 `db:"price" json:"price"`
	Quantity    *float64 `db:"quantity" json:"quantity"`
	Total       *float64 `db:"-" json:"total"`
}
