package model

import "time"

// PurchaseOrder records one purchase attempt against the inbox vendor. The
// row is written before the vendor is called so a retried request can be
// traced back to the charge that already happened.
type PurchaseOrder struct {
	ID              string    `json:"id" db:"id"`
	OrgID           string    `json:"org_id" db:"org_id"`
	Tag             string    `json:"tag" db:"tag"`
	Status          string    `json:"status" db:"status"`
	Error           *string   `json:"error,omitempty" db:"error"`
	AccountsCreated int       `json:"accounts_created" db:"accounts_created"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
