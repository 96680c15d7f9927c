package model

import "time"

// BaseModel holds the columns shared by every table. Records are insert-only,
// so there is no updated_at.
type BaseModel struct {
	ID        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
