package repository

import (
	"context"

	"storefrontGraphQL/models"
)

// AccountRepositoryI defines operations on Account entities.
type AccountRepositoryI interface {
	Create(ctx context.Context, a *models.Account) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	ListContacts(ctx context.Context) ([]models.AccountContact, error)
}

// ProductRepositoryI defines operations on Product entities.
type ProductRepositoryI interface {
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
}

// SaleRepositoryI defines operations on sales joined with their products.
type SaleRepositoryI interface {
	Create(ctx context.Context, productID int64, quantity float64) (int64, error)
	ListWithProduct(ctx context.Context) ([]models.Sale, error)
}

// TaskStore holds tasks. Create assigns the next sequential ID, starting at 0.
type TaskStore interface {
	Create(ctx context.Context, t models.Task) (*models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
}

var (
	_ AccountRepositoryI = (*AccountRepository)(nil)
	_ ProductRepositoryI = (*ProductRepository)(nil)
	_ SaleRepositoryI    = (*SaleRepository)(nil)
	_ TaskStore          = (*MemoryTaskStore)(nil)
	_ TaskStore          = (*TaskRepository)(nil)
)
