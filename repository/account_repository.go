package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"storefrontGraphQL/models"
)

const accountColumns = `user_id, username, password, email, created_on, last_login`

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account and returns the stored row.
// user_id is generated by the database; created_on and last_login default to now.
func (r *AccountRepository) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	if a == nil {
		return nil, errors.New("create account: nil account")
	}
	now := time.Now().UTC()
	createdOn, lastLogin := now, now
	if a.CreatedOn != nil {
		createdOn = a.CreatedOn.UTC()
	}
	if a.LastLogin != nil {
		lastLogin = a.LastLogin.UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (username, password, email, created_on, last_login) VALUES (?, ?, ?, ?, ?)`,
		a.Username, a.Password, a.Email, createdOn, lastLogin)
	if err != nil {
		return nil, errors.Wrap(err, "insert account")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "account id")
	}
	stored, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errors.Errorf("account %d missing after insert", id)
	}
	return stored, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var a models.Account
	err := r.db.GetContext(ctx, &a, `SELECT `+accountColumns+` FROM accounts WHERE user_id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get account %d", id)
	}
	return &a, nil
}

// List returns every account ordered by user_id.
func (r *AccountRepository) List(ctx context.Context) ([]models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out := make([]models.Account, 0)
	if err := r.db.SelectContext(ctx, &out, `SELECT `+accountColumns+` FROM accounts ORDER BY user_id`); err != nil {
		return nil, errors.Wrap(err, "list accounts")
	}
	return out, nil
}

// ListContacts returns the username and email of every account.
func (r *AccountRepository) ListContacts(ctx context.Context) ([]models.AccountContact, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out := make([]models.AccountContact, 0)
	if err := r.db.SelectContext(ctx, &out, `SELECT username, email FROM accounts ORDER BY user_id`); err != nil {
		return nil, errors.Wrap(err, "list account contacts")
	}
	return out, nil
}
