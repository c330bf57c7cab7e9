package model

// Email account lifecycle statuses.
const (
	StatusWarming = "warming"
	StatusActive  = "active"
)

// Purchase order statuses.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderFailed    = "failed"
)
