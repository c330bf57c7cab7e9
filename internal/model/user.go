package model

import "time"

// User lives in the auth database, keyed to an organization by ID only.
// There is no foreign key across the two stores.
type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
