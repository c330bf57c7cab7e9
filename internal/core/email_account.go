package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/nordlys/outreach-admin/internal/model"
)

type EmailAccountService struct {
	db DB
}

func NewEmailAccountService(db DB) *EmailAccountService {
	return &EmailAccountService{db: db}
}

const emailAccountColumns = `id, org_id, email, sender_name, daily_limit, status, smartlead_account_id, created_at`

func scanEmailAccount(row interface{ Scan(dest ...any) error }) (model.EmailAccount, error) {
	var a model.EmailAccount
	err := row.Scan(&a.ID, &a.OrgID, &a.Email, &a.SenderName, &a.DailyLimit, &a.Status, &a.SmartleadAccountID, &a.CreatedAt)
	if err != nil {
		return a, err
	}
	return a, nil
}

// BulkInsert writes all accounts in one multi-row INSERT. An all-or-nothing
// statement keeps the post-purchase bookkeeping a single failure unit.
func (s *EmailAccountService) BulkInsert(ctx context.Context, accounts []model.EmailAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO email_accounts (id, org_id, email, sender_name, daily_limit, status, created_at) VALUES `)

	args := make([]any, 0, len(accounts)*7)
	for i, a := range accounts {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 7
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args, a.ID, a.OrgID, a.Email, a.SenderName, a.DailyLimit, a.Status, a.CreatedAt)
	}

	if _, err := s.db.Exec(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("insert email accounts: %w", err)
	}
	return nil
}

func (s *EmailAccountService) ListByOrg(ctx context.Context, orgID string, limit int, cursor string) ([]model.EmailAccount, bool, error) {
	query := `SELECT ` + emailAccountColumns + ` FROM email_accounts WHERE org_id = $1`
	args := []any{orgID}
	argIdx := 2

	if cursor != "" {
		query += fmt.Sprintf(` AND id > $%d`, argIdx)
		args = append(args, cursor)
		argIdx++
	}

	query += ` ORDER BY id`
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, limit+1)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list email accounts for org %s: %w", orgID, err)
	}
	defer rows.Close()

	// An org with no accounts must serialize as [], not null.
	accounts := []model.EmailAccount{}
	for rows.Next() {
		a, err := scanEmailAccount(rows)
		if err != nil {
			return nil, false, fmt.Errorf("scan email account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate email accounts: %w", err)
	}

	hasMore := len(accounts) > limit
	if hasMore {
		accounts = accounts[:limit]
	}
	return accounts, hasMore, nil
}
