package core

type Services struct {
	Organization *OrganizationService
	EmailAccount *EmailAccountService
	Provisioning *ProvisioningService
	Dashboard    *DashboardService
	APIKey       *APIKeyService
}

// NewServices wires the services over the two data stores and the vendor
// client. customers holds product data, auth holds identity data; they are
// independent stores and no query ever joins them.
func NewServices(customers, auth DB, vendor Vendor, defaultDailyLimit int) *Services {
	emailAccounts := NewEmailAccountService(customers)
	return &Services{
		Organization: NewOrganizationService(customers, auth),
		EmailAccount: emailAccounts,
		Provisioning: NewProvisioningService(customers, vendor, emailAccounts, defaultDailyLimit),
		Dashboard:    NewDashboardService(customers),
		APIKey:       NewAPIKeyService(customers),
	}
}
