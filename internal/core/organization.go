package core

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nordlys/outreach-admin/internal/model"
)

type OrganizationService struct {
	customers DB
	auth      DB
}

func NewOrganizationService(customers, auth DB) *OrganizationService {
	return &OrganizationService{customers: customers, auth: auth}
}

func (s *OrganizationService) List(ctx context.Context) ([]model.Organization, error) {
	rows, err := s.customers.Query(ctx,
		`SELECT id, name, slug, domain, industry, company_size, created_at
		 FROM organizations ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	// An empty database must serialize as [], not null.
	orgs := []model.Organization{}
	for rows.Next() {
		var o model.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Slug, &o.Domain, &o.Industry, &o.CompanySize, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		orgs = append(orgs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate organizations: %w", err)
	}
	return orgs, nil
}

// Overview is the aggregate admin view of one organization. Sub-query
// failures land in Errors keyed by field name; the rest of the payload is
// still returned.
type Overview struct {
	Organization  model.Organization  `json:"organization"`
	Users         []model.User        `json:"users"`
	EmailAccounts []model.EmailAccount `json:"emailAccounts"`
	LeadCount     int                 `json:"leadCount"`
	CampaignCount int                 `json:"campaignCount"`
	Errors        map[string]string   `json:"errors"`
}

// Overview fetches the organization row plus four independent sub-queries.
// The organization itself must exist; everything else is best effort so a
// single failing lookup cannot blank out the whole admin view. Users come
// from the auth store, the rest from the customers store.
func (s *OrganizationService) Overview(ctx context.Context, orgID string) (*Overview, error) {
	var org model.Organization
	err := s.customers.QueryRow(ctx,
		`SELECT id, name, slug, domain, industry, company_size, created_at
		 FROM organizations WHERE id = $1`, orgID,
	).Scan(&org.ID, &org.Name, &org.Slug, &org.Domain, &org.Industry, &org.CompanySize, &org.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get organization %s: %w", orgID, err)
	}

	ov := &Overview{
		Organization:  org,
		Users:         []model.User{},
		EmailAccounts: []model.EmailAccount{},
		Errors:        map[string]string{},
	}

	var (
		usersErr, accountsErr, leadsErr, campaignsErr error
		g                                             errgroup.Group
	)

	g.Go(func() error {
		ov.Users, usersErr = s.usersByOrg(ctx, orgID)
		return nil
	})
	g.Go(func() error {
		ov.EmailAccounts, accountsErr = s.emailAccountsByOrg(ctx, orgID)
		return nil
	})
	g.Go(func() error {
		ov.LeadCount, leadsErr = s.countByOrg(ctx, "org_leads", orgID)
		return nil
	})
	g.Go(func() error {
		ov.CampaignCount, campaignsErr = s.countByOrg(ctx, "campaigns", orgID)
		return nil
	})
	g.Wait()

	if usersErr != nil {
		ov.Errors["users"] = usersErr.Error()
		ov.Users = []model.User{}
	}
	if accountsErr != nil {
		ov.Errors["emailAccounts"] = accountsErr.Error()
		ov.EmailAccounts = []model.EmailAccount{}
	}
	if leadsErr != nil {
		ov.Errors["leads"] = leadsErr.Error()
	}
	if campaignsErr != nil {
		ov.Errors["campaigns"] = campaignsErr.Error()
	}

	return ov, nil
}

func (s *OrganizationService) usersByOrg(ctx context.Context, orgID string) ([]model.User, error) {
	rows, err := s.auth.Query(ctx,
		`SELECT id, name, email, created_at FROM users WHERE organization_id = $1 ORDER BY created_at`, orgID)
	if err != nil {
		return nil, fmt.Errorf("list users for org %s: %w", orgID, err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (s *OrganizationService) emailAccountsByOrg(ctx context.Context, orgID string) ([]model.EmailAccount, error) {
	rows, err := s.customers.Query(ctx,
		`SELECT id, org_id, email, sender_name, daily_limit, status, smartlead_account_id, created_at
		 FROM email_accounts WHERE org_id = $1 ORDER BY created_at`, orgID)
	if err != nil {
		return nil, fmt.Errorf("list email accounts for org %s: %w", orgID, err)
	}
	defer rows.Close()

	accounts := []model.EmailAccount{}
	for rows.Next() {
		var a model.EmailAccount
		if err := rows.Scan(&a.ID, &a.OrgID, &a.Email, &a.SenderName, &a.DailyLimit, &a.Status, &a.SmartleadAccountID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan email account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate email accounts: %w", err)
	}
	return accounts, nil
}

func (s *OrganizationService) countByOrg(ctx context.Context, table, orgID string) (int, error) {
	var count int
	err := s.customers.QueryRow(ctx,
		fmt.Sprintf(`SELECT count(*) FROM %s WHERE org_id = $1`, table), orgID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count %s for org %s: %w", table, orgID, err)
	}
	return count, nil
}
