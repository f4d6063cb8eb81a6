package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"storefrontGraphQL/models"
)

type SaleRepository struct {
	db *sqlx.DB
}

func NewSaleRepository(db *sqlx.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// Create records a sale of quantity units of a product and returns the sale ID.
func (r *SaleRepository) Create(ctx context.Context, productID int64, quantity float64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO sales (product_id, quantity) VALUES (?, ?)`, productID, quantity)
	if err != nil {
		return 0, errors.Wrap(err, "insert sale")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "sale id")
	}
	return id, nil
}

// ListWithProduct returns one row per sale joined with its product's name and price.
// Total is left nil.
func (r *SaleRepository) ListWithProduct(ctx context.Context) ([]models.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out := make([]models.Sale, 0)
	err := r.db.SelectContext(ctx, &out, `
SELECT p.product_name, p.price, s.quantity
FROM product AS p
JOIN sales AS s ON s.product_id = p.product_id
ORDER BY s.sale_id`)
	if err != nil {
		return nil, errors.Wrap(err, "list sales")
	}
	return out, nil
}
