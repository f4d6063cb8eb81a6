package models

import "time"

// Account represents a registered user account.
// It maps to the `accounts` table.
type Account struct {
	UserID    int64      `db:"user_id" json:"user_id"`
	Username  string     `db:"username" json:"username"`
	Password  string     `db:"password" json:"password"`
	Email     string     `db:"email" json:"email"`
	CreatedOn *time.Time `db:"created_on" json:"created_on"`
	LastLogin *time.Time `db:"last_login" json:"last_login"`
}

// AccountContact is the public projection of an account served by the REST listing.
type AccountContact struct {
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`
}
