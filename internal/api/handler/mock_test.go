package handler

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nordlys/outreach-admin/internal/scaledmail"
)

// stubVendor implements core.Vendor with canned responses.
type stubVendor struct {
	inventory    *scaledmail.PreWarmInboxes
	inventoryErr error

	purchaseBody json.RawMessage
	purchaseErr  error
	purchased    []scaledmail.PurchaseOrder

	mailboxesBody json.RawMessage
	mailboxesErr  error
}

func (v *stubVendor) ListPreWarmInboxes(ctx context.Context) (*scaledmail.PreWarmInboxes, error) {
	return v.inventory, v.inventoryErr
}

func (v *stubVendor) PurchaseInboxes(ctx context.Context, order scaledmail.PurchaseOrder) (json.RawMessage, error) {
	v.purchased = append(v.purchased, order)
	return v.purchaseBody, v.purchaseErr
}

func (v *stubVendor) MailboxesForDomain(ctx context.Context, domainID string) (json.RawMessage, error) {
	return v.mailboxesBody, v.mailboxesErr
}

// stubDB implements core.DB, recording executed statements. Exec fails for
// any statement containing failOn. With queryEmpty set, Query yields a
// result set with no rows instead of an error.
type stubDB struct {
	execs      []string
	failOn     string
	queryEmpty bool
}

func (d *stubDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	d.execs = append(d.execs, sql)
	if d.failOn != "" && strings.Contains(sql, d.failOn) {
		return pgconn.CommandTag{}, errors.New("deadlock detected")
	}
	return pgconn.CommandTag{}, nil
}

func (d *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if d.queryEmpty {
		return emptyRows{}, nil
	}
	return nil, errors.New("not implemented")
}

func (d *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return stubRow{}
}

type stubRow struct{}

func (stubRow) Scan(dest ...any) error { return errors.New("not implemented") }

// emptyRows is a pgx.Rows with zero rows.
type emptyRows struct{}

func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return nil }
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) Close()                                       {}
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func (d *stubDB) execContaining(substr string) bool {
	for _, sql := range d.execs {
		if strings.Contains(sql, substr) {
			return true
		}
	}
	return false
}
