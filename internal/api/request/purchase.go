package request

// PurchaseMailbox mirrors the vendor's mailbox descriptor as the admin UI
// forwards it from the inventory listing.
type PurchaseMailbox struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Alias     string `json:"alias"`
}

type PurchaseDomain struct {
	ID        string            `json:"id" validate:"required"`
	Domain    string            `json:"domain" validate:"required"`
	Redirect  string            `json:"redirect"`
	Mailboxes []PurchaseMailbox `json:"emailMailbox" validate:"omitempty,dive"`
}

type PurchasePreWarmInboxes struct {
	OrgID   string           `json:"orgId" validate:"required"`
	Tag     string           `json:"tag"`
	Domains []PurchaseDomain `json:"domains" validate:"required,min=1,dive"`
}
