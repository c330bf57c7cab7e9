package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nordlys/outreach-admin/internal/model"
	"github.com/nordlys/outreach-admin/internal/platform"
	"github.com/nordlys/outreach-admin/internal/scaledmail"
)

// Validation failures happen before any network call and have no side
// effects.
var (
	ErrEmptySelection = errors.New("at least one domain is required")
	ErrMissingOrgID   = errors.New("organization id is required")
)

// DomainSelection is one inventory item picked for purchase, carrying the
// vendor's mailbox descriptors so local accounts can be derived on success.
type DomainSelection struct {
	ID        string
	Domain    string
	Redirect  string
	Mailboxes []scaledmail.Mailbox
}

type PurchaseInput struct {
	OrgID   string
	Tag     string
	Domains []DomainSelection
}

// PurchaseResult distinguishes full success from partial success. A
// non-empty BookkeepingErr means the vendor charge went through but the
// local insert did not; the caller must reconcile the accounts manually.
type PurchaseResult struct {
	OrderID         string
	VendorResponse  json.RawMessage
	AccountsCreated int
	BookkeepingErr  string
}

type ProvisioningService struct {
	db         DB
	vendor     Vendor
	accounts   *EmailAccountService
	dailyLimit int
}

func NewProvisioningService(db DB, vendor Vendor, accounts *EmailAccountService, dailyLimit int) *ProvisioningService {
	return &ProvisioningService{db: db, vendor: vendor, accounts: accounts, dailyLimit: dailyLimit}
}

// Inventory returns the vendor's current pre-warm inventory verbatim.
func (s *ProvisioningService) Inventory(ctx context.Context) (*scaledmail.PreWarmInboxes, error) {
	return s.vendor.ListPreWarmInboxes(ctx)
}

// DomainMailboxes returns the vendor's mailbox detail for one domain.
func (s *ProvisioningService) DomainMailboxes(ctx context.Context, domainID string) (json.RawMessage, error) {
	return s.vendor.MailboxesForDomain(ctx, domainID)
}

// Purchase buys the selected domains and, on vendor success, persists one
// email account per mailbox descriptor. The vendor call has financial
// effect, so a purchase order row is written first: if the request is ever
// retried, the charge can be traced even when local bookkeeping failed.
//
// A failed insert after a successful vendor call is reported as partial
// success, never as failure. The money is already spent.
func (s *ProvisioningService) Purchase(ctx context.Context, input PurchaseInput) (*PurchaseResult, error) {
	if input.OrgID == "" {
		return nil, ErrMissingOrgID
	}
	if len(input.Domains) == 0 {
		return nil, ErrEmptySelection
	}

	tag := input.Tag
	if tag == "" {
		tag = fmt.Sprintf("org-%s", input.OrgID)
	}

	orderID := platform.NewID()
	vendorTag := fmt.Sprintf("%s-%.8s", tag, orderID)
	now := time.Now()

	if _, err := s.db.Exec(ctx,
		`INSERT INTO purchase_orders (id, org_id, tag, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		orderID, input.OrgID, vendorTag, model.OrderPending, now, now,
	); err != nil {
		return nil, fmt.Errorf("insert purchase order: %w", err)
	}

	order := scaledmail.PurchaseOrder{Tag: vendorTag}
	for _, d := range input.Domains {
		order.Domains = append(order.Domains, scaledmail.DomainOrder{
			ID:       d.ID,
			Domain:   d.Domain,
			Redirect: d.Redirect,
		})
	}

	vendorResp, err := s.vendor.PurchaseInboxes(ctx, order)
	if err != nil {
		msg := err.Error()
		_, _ = s.db.Exec(ctx,
			`UPDATE purchase_orders SET status = $1, error = $2, updated_at = now() WHERE id = $3`,
			model.OrderFailed, msg, orderID)
		return nil, err
	}

	accounts := deriveEmailAccounts(input.OrgID, input.Domains, s.dailyLimit)

	result := &PurchaseResult{OrderID: orderID, VendorResponse: vendorResp}

	if err := s.accounts.BulkInsert(ctx, accounts); err != nil {
		result.BookkeepingErr = err.Error()
		_, _ = s.db.Exec(ctx,
			`UPDATE purchase_orders SET status = $1, error = $2, updated_at = now() WHERE id = $3`,
			model.OrderCompleted, result.BookkeepingErr, orderID)
		return result, nil
	}

	result.AccountsCreated = len(accounts)
	_, _ = s.db.Exec(ctx,
		`UPDATE purchase_orders SET status = $1, accounts_created = $2, updated_at = now() WHERE id = $3`,
		model.OrderCompleted, result.AccountsCreated, orderID)

	return result, nil
}

// deriveEmailAccounts projects the purchased selection into local rows: one
// account per mailbox descriptor, addressed alias@domain, starting warming.
func deriveEmailAccounts(orgID string, domains []DomainSelection, dailyLimit int) []model.EmailAccount {
	now := time.Now()
	var accounts []model.EmailAccount
	for _, d := range domains {
		for _, m := range d.Mailboxes {
			accounts = append(accounts, model.EmailAccount{
				ID:         platform.NewID(),
				OrgID:      orgID,
				Email:      fmt.Sprintf("%s@%s", m.Alias, d.Domain),
				SenderName: fmt.Sprintf("%s %s", m.FirstName, m.LastName),
				DailyLimit: dailyLimit,
				Status:     model.StatusWarming,
				CreatedAt:  now,
			})
		}
	}
	return accounts
}
