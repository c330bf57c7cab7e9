package model

import "time"

type EmailAccount struct {
	ID                 string    `json:"id" db:"id"`
	OrgID              string    `json:"org_id" db:"org_id"`
	Email              string    `json:"email" db:"email"`
	SenderName         string    `json:"sender_name" db:"sender_name"`
	DailyLimit         int       `json:"daily_limit" db:"daily_limit"`
	Status             string    `json:"status" db:"status"`
	SmartleadAccountID *string   `json:"smartlead_account_id" db:"smartlead_account_id"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
