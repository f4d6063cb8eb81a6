package models

// Task is a lightweight to-do record. IDs are assigned sequentially from 0.
type Task struct {
	ID          int64  `db:"id" json:"_id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Number      *int32 `db:"number" json:"number"`
}
