package model

import "time"

// Organization is a tenant of the platform. Rows are owned by the product
// backend; this service only reads them.
type Organization struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Domain      string    `json:"domain" db:"domain"`
	Industry    string    `json:"industry" db:"industry"`
	CompanySize string    `json:"company_size" db:"company_size"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
