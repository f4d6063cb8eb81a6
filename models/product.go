package models

// Product maps to the `product` table. Description and price are nullable in the store.
type Product struct {
	ProductID   int64    `db:"product_id" json:"product_id"`
	ProductName string   `db:"product_name" json:"product_name"`
	Description *string  `db:"description" json:"description"`
	Price       *float64 `db:"price" json:"price"`
}
