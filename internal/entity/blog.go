package entity

import "time"

type Blog struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Details   string    `db:"details"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}
