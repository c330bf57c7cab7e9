package core

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nordlys/outreach-admin/internal/scaledmail"
)

// DB defines the database operations used by the services.
// *pgxpool.Pool satisfies this interface.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Vendor is the inbox-provisioning API surface the services depend on.
// *scaledmail.Client satisfies this interface.
type Vendor interface {
	ListPreWarmInboxes(ctx context.Context) (*scaledmail.PreWarmInboxes, error)
	PurchaseInboxes(ctx context.Context, order scaledmail.PurchaseOrder) (json.RawMessage, error)
	MailboxesForDomain(ctx context.Context, domainID string) (json.RawMessage, error)
}
