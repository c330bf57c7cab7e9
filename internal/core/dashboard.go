package core

import (
	"context"
	"fmt"
)

// DashboardStats holds aggregate counts from the customers database for the
// admin landing page.
type DashboardStats struct {
	Organizations    int           `json:"organizations"`
	EmailAccounts    int           `json:"email_accounts"`
	AccountsWarming  int           `json:"accounts_warming"`
	AccountsActive   int           `json:"accounts_active"`
	OrdersCompleted  int           `json:"orders_completed"`
	OrdersFailed     int           `json:"orders_failed"`
	AccountsByStatus []StatusCount `json:"accounts_by_status"`
}

// StatusCount holds a count grouped by status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DashboardService struct {
	db DB
}

func NewDashboardService(db DB) *DashboardService {
	return &DashboardService{db: db}
}

// Stats returns aggregate counts using a single query with CTEs, plus a
// per-status breakdown of email accounts.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	const countsQuery = `
		WITH org_count AS (
			SELECT count(*) AS c FROM organizations
		), account_count AS (
			SELECT count(*) AS c FROM email_accounts
		), account_warming AS (
			SELECT count(*) AS c FROM email_accounts WHERE status = 'warming'
		), account_active AS (
			SELECT count(*) AS c FROM email_accounts WHERE status = 'active'
		), order_completed AS (
			SELECT count(*) AS c FROM purchase_orders WHERE status = 'completed'
		), order_failed AS (
			SELECT count(*) AS c FROM purchase_orders WHERE status = 'failed'
		)
		SELECT
			(SELECT c FROM org_count),
			(SELECT c FROM account_count),
			(SELECT c FROM account_warming),
			(SELECT c FROM account_active),
			(SELECT c FROM order_completed),
			(SELECT c FROM order_failed)`

	stats := &DashboardStats{}
	err := s.db.QueryRow(ctx, countsQuery).Scan(
		&stats.Organizations,
		&stats.EmailAccounts,
		&stats.AccountsWarming,
		&stats.AccountsActive,
		&stats.OrdersCompleted,
		&stats.OrdersFailed,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT status, count(*) FROM email_accounts GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("accounts by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		stats.AccountsByStatus = append(stats.AccountsByStatus, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}

	return stats, nil
}
