package repository

import (
	"context"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"storefrontGraphQL/models"
)

const taskCreateAttempts = 5

// TaskRepository persists tasks in the `tasks` table.
type TaskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create stores t under the next sequential ID. The ID is read and written in one
// transaction that holds the write lock (FOR UPDATE on mysql, BEGIN IMMEDIATE on
// sqlite); a writer that still collides on the primary key starts over.
func (r *TaskRepository) Create(ctx context.Context, t models.Task) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var err error
	for attempt := 0; attempt < taskCreateAttempts; attempt++ {
		var id int64
		id, err = r.insertNext(ctx, t)
		if err == nil {
			t.ID = id
			return &t, nil
		}
		if !isWriteConflict(err) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "insert task")
		case <-time.After(time.Duration(attempt+1) * 10 * time.Millisecond):
		}
	}
	return nil, errors.Wrapf(err, "insert task after %d attempts", taskCreateAttempts)
}

func (r *TaskRepository) insertNext(ctx context.Context, t models.Task) (int64, error) {
	nextID := `SELECT COALESCE(MAX(id) + 1, 0) FROM tasks`
	if r.db.DriverName() == "mysql" {
		nextID += ` FOR UPDATE`
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin task insert")
	}
	var id int64
	if err := tx.GetContext(ctx, &id, nextID); err != nil {
		_ = tx.Rollback()
		return 0, errors.Wrap(err, "next task id")
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description, number) VALUES (?, ?, ?, ?)`,
		id, t.Title, t.Description, t.Number); err != nil {
		_ = tx.Rollback()
		return 0, errors.Wrap(err, "insert task")
	}
	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit task insert")
	}
	return id, nil
}

// isWriteConflict reports whether err came from a concurrent writer rather than a
// broken store: a duplicate primary key, a deadlock or a busy database.
func isWriteConflict(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		// ER_DUP_ENTRY, ER_LOCK_DEADLOCK
		return me.Number == 1062 || me.Number == 1213
	}
	return false
}

// List returns all tasks in ID (insertion) order.
func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out := make([]models.Task, 0)
	if err := r.db.SelectContext(ctx, &out, `SELECT id, title, description, number FROM tasks ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "list tasks")
	}
	return out, nil
}
