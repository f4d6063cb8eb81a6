package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"storefrontGraphQL/models"
)

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a product and returns it with its generated ID.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO product (product_name, description, price) VALUES (?, ?, ?)`,
		p.ProductName, p.Description, p.Price)
	if err != nil {
		return nil, errors.Wrap(err, "insert product")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "product id")
	}
	out := *p
	out.ProductID = id
	return &out, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out := make([]models.Product, 0)
	err := r.db.SelectContext(ctx, &out,
		`SELECT product_id, product_name, description, price FROM product ORDER BY product_id`)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return out, nil
}
